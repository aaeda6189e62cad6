package document

import (
	"rrhh-admin/internal/filter"
)

// ScreenQuery carries the state the client held before the interaction,
// plus the dimension it just changed. On first load both Changed and
// Value are empty and the state fields are whatever the client persisted.
type ScreenQuery struct {
	Branch     string `form:"branch"`
	Department string `form:"department"`
	Role       string `form:"role"`
	Employee   string `form:"employee"`
	DocType    string `form:"doc_type"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	Search     string `form:"search"`

	Changed string `form:"changed"`
	Value   string `form:"value"`

	CtxKind string `form:"ctx"`
	CtxID   string `form:"ctx_id"`
	CtxName string `form:"ctx_name"`
}

type CreateDocumentRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	FileName   string `json:"file_name" binding:"required"`
	DocType    string `json:"doc_type" binding:"required,oneof=cv id contract certificate other"`
}

type DocumentResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	FileName     string `json:"file_name"`
	DocType      string `json:"doc_type"`
	UploadedAt   string `json:"uploaded_at,omitempty"`
}

type ScreenOptions struct {
	Branches    []filter.Option `json:"branches"`
	Departments []filter.Option `json:"departments"`
	Roles       []filter.Option `json:"roles"`
	Employees   []filter.Option `json:"employees"`
	DocTypes    []filter.Option `json:"doc_types"`
}

// ScreenContext echoes the navigation context the screen was entered
// with, so the client knows which selector to render as locked.
type ScreenContext struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Locked string `json:"locked"`
}

type ScreenResponse struct {
	Filters filter.State       `json:"filters"`
	Options ScreenOptions      `json:"options"`
	Rows    []DocumentResponse `json:"rows"`
	Context *ScreenContext     `json:"context,omitempty"`
}

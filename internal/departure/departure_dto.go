package departure

import (
	"rrhh-admin/internal/filter"
)

// ScreenQuery carries the state the client held before the interaction,
// plus the dimension it just changed.
type ScreenQuery struct {
	Branch     string `form:"branch"`
	Department string `form:"department"`
	Role       string `form:"role"`
	Employee   string `form:"employee"`
	Status     string `form:"status"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	Search     string `form:"search"`

	Changed string `form:"changed"`
	Value   string `form:"value"`

	CtxKind string `form:"ctx"`
	CtxID   string `form:"ctx_id"`
	CtxName string `form:"ctx_name"`
}

type CreateDepartureRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	ExitTime   string `json:"exit_time" binding:"required"`
	ReturnTime string `json:"return_time"`
	Reason     string `json:"reason" binding:"required,min=5,max=500"`
}

type DecideDepartureRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
	Reason string `json:"reason" binding:"max=500"`
}

type DepartureResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	ExitTime     string `json:"exit_time"`
	ReturnTime   string `json:"return_time,omitempty"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
}

type ScreenOptions struct {
	Branches    []filter.Option `json:"branches"`
	Departments []filter.Option `json:"departments"`
	Roles       []filter.Option `json:"roles"`
	Employees   []filter.Option `json:"employees"`
	Statuses    []filter.Option `json:"statuses"`
}

type ScreenContext struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Locked string `json:"locked"`
}

type ScreenResponse struct {
	Filters filter.State        `json:"filters"`
	Options ScreenOptions       `json:"options"`
	Rows    []DepartureResponse `json:"rows"`
	Context *ScreenContext      `json:"context,omitempty"`
}

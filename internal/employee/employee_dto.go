package employee

import (
	"rrhh-admin/internal/filter"
)

// ScreenQuery carries the state the client held before the interaction,
// plus the dimension it just changed. The employees screen has no
// employee dimension: the rows are the employees.
type ScreenQuery struct {
	Branch     string `form:"branch"`
	Department string `form:"department"`
	Role       string `form:"role"`
	Status     string `form:"status"`
	Search     string `form:"search"`

	Changed string `form:"changed"`
	Value   string `form:"value"`

	CtxKind string `form:"ctx"`
	CtxID   string `form:"ctx_id"`
	CtxName string `form:"ctx_name"`
}

// OptionsQuery narrows the cascading employee option list other screens
// and pickers embed.
type OptionsQuery struct {
	Branch     string `form:"branch"`
	Department string `form:"department"`
	Role       string `form:"role"`
}

type CreateEmployeeRequest struct {
	FirstName    string `json:"first_name" binding:"required,min=2,max=100"`
	LastName     string `json:"last_name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	DepartmentID string `json:"department_id" binding:"required"`
	RoleID       string `json:"role_id" binding:"required"`
	ScheduleID   string `json:"schedule_id"`
	Status       string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateEmployeeRequest struct {
	FirstName    string `json:"first_name" binding:"required,min=2,max=100"`
	LastName     string `json:"last_name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	DepartmentID string `json:"department_id" binding:"required"`
	RoleID       string `json:"role_id" binding:"required"`
	ScheduleID   string `json:"schedule_id"`
	Status       string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Status         string `json:"status"`
	BranchID       string `json:"branch_id,omitempty"`
	DepartmentID   string `json:"department_id,omitempty"`
	DepartmentName string `json:"department_name,omitempty"`
	RoleID         string `json:"role_id,omitempty"`
	RoleName       string `json:"role_name,omitempty"`
}

type ScreenOptions struct {
	Branches    []filter.Option `json:"branches"`
	Departments []filter.Option `json:"departments"`
	Roles       []filter.Option `json:"roles"`
	Statuses    []filter.Option `json:"statuses"`
}

type ScreenContext struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Locked string `json:"locked"`
}

type ScreenResponse struct {
	Filters filter.State       `json:"filters"`
	Options ScreenOptions      `json:"options"`
	Rows    []EmployeeResponse `json:"rows"`
	Context *ScreenContext     `json:"context,omitempty"`
}

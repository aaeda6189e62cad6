package hrapi

import (
	"context"
	"net/http"
	"net/url"

	"rrhh-admin/internal/domain"
)

// Collection reads. The upstream may answer with a bare array or an
// envelope; doJSON handles both.

func (c *Client) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	var out []domain.Company
	err := c.doJSON(ctx, http.MethodGet, "/companies", nil, nil, &out)
	return out, err
}

func (c *Client) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	var out []domain.Branch
	err := c.doJSON(ctx, http.MethodGet, "/branches", nil, nil, &out)
	return out, err
}

func (c *Client) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	var out []domain.Department
	err := c.doJSON(ctx, http.MethodGet, "/departments", nil, nil, &out)
	return out, err
}

func (c *Client) ListRoles(ctx context.Context) ([]domain.Role, error) {
	var out []domain.Role
	err := c.doJSON(ctx, http.MethodGet, "/roles", nil, nil, &out)
	return out, err
}

func (c *Client) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	err := c.doJSON(ctx, http.MethodGet, "/employees", nil, nil, &out)
	return out, err
}

func (c *Client) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	var out []domain.Document
	err := c.doJSON(ctx, http.MethodGet, "/documents", nil, nil, &out)
	return out, err
}

func (c *Client) ListDepartures(ctx context.Context) ([]domain.DepartureRequest, error) {
	var out []domain.DepartureRequest
	err := c.doJSON(ctx, http.MethodGet, "/departures", nil, nil, &out)
	return out, err
}

func (c *Client) ListSchedules(ctx context.Context) ([]domain.Schedule, error) {
	var out []domain.Schedule
	err := c.doJSON(ctx, http.MethodGet, "/schedules", nil, nil, &out)
	return out, err
}

// Mutations are passthrough: the feature layer validates, this layer
// forwards. Payloads stay as the feature's request DTOs.

func (c *Client) CreateCompany(ctx context.Context, payload any) (domain.Company, error) {
	var out domain.Company
	err := c.doJSON(ctx, http.MethodPost, "/companies", nil, payload, &out)
	return out, err
}

func (c *Client) UpdateCompany(ctx context.Context, id string, payload any) (domain.Company, error) {
	var out domain.Company
	err := c.doJSON(ctx, http.MethodPut, "/companies/"+url.PathEscape(id), nil, payload, &out)
	return out, err
}

func (c *Client) DeleteCompany(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/companies/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) CreateBranch(ctx context.Context, payload any) (domain.Branch, error) {
	var out domain.Branch
	err := c.doJSON(ctx, http.MethodPost, "/branches", nil, payload, &out)
	return out, err
}

func (c *Client) UpdateBranch(ctx context.Context, id string, payload any) (domain.Branch, error) {
	var out domain.Branch
	err := c.doJSON(ctx, http.MethodPut, "/branches/"+url.PathEscape(id), nil, payload, &out)
	return out, err
}

func (c *Client) DeleteBranch(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/branches/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) CreateDepartment(ctx context.Context, payload any) (domain.Department, error) {
	var out domain.Department
	err := c.doJSON(ctx, http.MethodPost, "/departments", nil, payload, &out)
	return out, err
}

func (c *Client) UpdateDepartment(ctx context.Context, id string, payload any) (domain.Department, error) {
	var out domain.Department
	err := c.doJSON(ctx, http.MethodPut, "/departments/"+url.PathEscape(id), nil, payload, &out)
	return out, err
}

func (c *Client) DeleteDepartment(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/departments/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) CreateRole(ctx context.Context, payload any) (domain.Role, error) {
	var out domain.Role
	err := c.doJSON(ctx, http.MethodPost, "/roles", nil, payload, &out)
	return out, err
}

func (c *Client) UpdateRole(ctx context.Context, id string, payload any) (domain.Role, error) {
	var out domain.Role
	err := c.doJSON(ctx, http.MethodPut, "/roles/"+url.PathEscape(id), nil, payload, &out)
	return out, err
}

func (c *Client) DeleteRole(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/roles/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) CreateEmployee(ctx context.Context, payload any) (domain.Employee, error) {
	var out domain.Employee
	err := c.doJSON(ctx, http.MethodPost, "/employees", nil, payload, &out)
	return out, err
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, payload any) (domain.Employee, error) {
	var out domain.Employee
	err := c.doJSON(ctx, http.MethodPut, "/employees/"+url.PathEscape(id), nil, payload, &out)
	return out, err
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/employees/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) CreateSchedule(ctx context.Context, payload any) (domain.Schedule, error) {
	var out domain.Schedule
	err := c.doJSON(ctx, http.MethodPost, "/schedules", nil, payload, &out)
	return out, err
}

func (c *Client) UpdateSchedule(ctx context.Context, id string, payload any) (domain.Schedule, error) {
	var out domain.Schedule
	err := c.doJSON(ctx, http.MethodPut, "/schedules/"+url.PathEscape(id), nil, payload, &out)
	return out, err
}

func (c *Client) DeleteSchedule(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/schedules/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) CreateDocument(ctx context.Context, payload any) (domain.Document, error) {
	var out domain.Document
	err := c.doJSON(ctx, http.MethodPost, "/documents", nil, payload, &out)
	return out, err
}

func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/documents/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) CreateDeparture(ctx context.Context, payload any) (domain.DepartureRequest, error) {
	var out domain.DepartureRequest
	err := c.doJSON(ctx, http.MethodPost, "/departures", nil, payload, &out)
	return out, err
}

func (c *Client) DecideDeparture(ctx context.Context, id string, payload any) (domain.DepartureRequest, error) {
	var out domain.DepartureRequest
	err := c.doJSON(ctx, http.MethodPatch, "/departures/"+url.PathEscape(id)+"/decision", nil, payload, &out)
	return out, err
}

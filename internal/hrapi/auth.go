package hrapi

import (
	"context"
	"net/http"

	"rrhh-admin/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Session is the token pair the upstream issues on login/refresh.
type Session struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         Profile `json:"user"`
}

// Profile is the authenticated user as the upstream reports it.
type Profile struct {
	ID         domain.ID `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       string    `json:"role"`
	EmployeeID domain.ID `json:"employee_id"`
	CompanyID  domain.ID `json:"company_id"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (Session, error) {
	var out Session
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, req, &out)
	return out, err
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	var out Session
	err := c.doJSON(ctx, http.MethodPost, "/auth/refresh", nil, RefreshRequest{RefreshToken: refreshToken}, &out)
	return out, err
}

func (c *Client) Me(ctx context.Context) (Profile, error) {
	var out Profile
	err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, &out)
	return out, err
}

package auth

import (
	"context"
	"errors"
	"strings"

	autherrors "rrhh-admin/internal/auth/errors"
	"rrhh-admin/internal/hrapi"
	"rrhh-admin/internal/shared/apperror"

	"go.uber.org/zap"
)

// API is the slice of the HR client this feature talks through. The
// upstream owns credentials and token issuance; this service only
// relays them.
type API interface {
	Login(ctx context.Context, req hrapi.LoginRequest) (hrapi.Session, error)
	Refresh(ctx context.Context, refreshToken string) (hrapi.Session, error)
	Me(ctx context.Context) (hrapi.Profile, error)
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (SessionResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (SessionResponse, error)
	Me(ctx context.Context) (ProfileResponse, error)
}

type service struct {
	api    API
	logger *zap.Logger
}

func NewService(api API, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{api: api, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (SessionResponse, error) {
	session, err := s.api.Login(ctx, hrapi.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		if isUnauthorized(err) {
			return SessionResponse{}, autherrors.ErrInvalidCredentials
		}
		return SessionResponse{}, err
	}

	s.logger.Info("user logged in", zap.String("user_id", session.User.ID.String()))
	return mapSession(session), nil
}

func (s *service) Refresh(ctx context.Context, req RefreshRequest) (SessionResponse, error) {
	session, err := s.api.Refresh(ctx, req.RefreshToken)
	if err != nil {
		if isUnauthorized(err) {
			return SessionResponse{}, autherrors.ErrInvalidToken
		}
		return SessionResponse{}, err
	}
	return mapSession(session), nil
}

func (s *service) Me(ctx context.Context) (ProfileResponse, error) {
	profile, err := s.api.Me(ctx)
	if err != nil {
		return ProfileResponse{}, err
	}
	return mapProfile(profile), nil
}

// isUnauthorized reports whether the upstream rejected the credentials,
// as opposed to being unreachable or broken.
func isUnauthorized(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == apperror.CodeUnauthorized
}

func mapSession(s hrapi.Session) SessionResponse {
	return SessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		User:         mapProfile(s.User),
	}
}

func mapProfile(p hrapi.Profile) ProfileResponse {
	return ProfileResponse{
		ID:         p.ID.String(),
		Email:      p.Email,
		FullName:   strings.TrimSpace(p.FirstName + " " + p.LastName),
		Role:       p.Role,
		EmployeeID: p.EmployeeID.String(),
		CompanyID:  p.CompanyID.String(),
	}
}

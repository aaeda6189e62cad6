package schedule

import (
	"context"

	"rrhh-admin/internal/catalog"
	"rrhh-admin/internal/domain"
	"rrhh-admin/internal/shared/apperror"

	"go.uber.org/zap"
)

// API is the slice of the HR client this feature mutates through.
type API interface {
	CreateSchedule(ctx context.Context, payload any) (domain.Schedule, error)
	UpdateSchedule(ctx context.Context, id string, payload any) (domain.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error
}

type Service interface {
	GetAll(ctx context.Context) ([]ScheduleResponse, error)
	GetByID(ctx context.Context, id string) (ScheduleResponse, error)
	Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)
	Update(ctx context.Context, id string, req UpdateScheduleRequest) (ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api     API
	catalog catalog.Service
	logger  *zap.Logger
}

func NewService(api API, catalogService catalog.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{api: api, catalog: catalogService, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]ScheduleResponse, error) {
	schedules, err := s.catalog.Schedules(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ScheduleResponse, 0, len(schedules))
	for _, sch := range schedules {
		out = append(out, mapSchedule(sch))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ScheduleResponse, error) {
	schedules, err := s.catalog.Schedules(ctx)
	if err != nil {
		return ScheduleResponse{}, err
	}

	for _, sch := range schedules {
		if sch.ID.String() == id {
			return mapSchedule(sch), nil
		}
	}
	return ScheduleResponse{}, apperror.ErrNotFound
}

func (s *service) Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error) {
	created, err := s.api.CreateSchedule(ctx, req)
	if err != nil {
		return ScheduleResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntitySchedule)
	s.logger.Info("schedule created", zap.String("schedule_id", created.ID.String()))
	return mapSchedule(created), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateScheduleRequest) (ScheduleResponse, error) {
	updated, err := s.api.UpdateSchedule(ctx, id, req)
	if err != nil {
		return ScheduleResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntitySchedule)
	s.logger.Info("schedule updated", zap.String("schedule_id", id))
	return mapSchedule(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteSchedule(ctx, id); err != nil {
		return err
	}

	s.catalog.Invalidate(ctx, catalog.EntitySchedule)
	s.logger.Info("schedule deleted", zap.String("schedule_id", id))
	return nil
}

func mapSchedule(sch domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:               sch.ID.String(),
		Name:             sch.Name,
		EntryTime:        sch.EntryTime,
		ExitTime:         sch.ExitTime,
		ToleranceMinutes: sch.ToleranceMinutes,
	}
}

// Package catalog serves every collection read in the service through
// the query cache: master data under long TTLs, record lists under
// short ones. Screens treat whatever this package returns as an
// immutable snapshot for the duration of one render.
package catalog

import (
	"context"
	"time"

	"rrhh-admin/internal/domain"
	"rrhh-admin/internal/querycache"

	"go.uber.org/zap"
)

// Cache keys, one per collection snapshot.
const (
	KeyCompanies   = "catalog:companies"
	KeyBranches    = "catalog:branches"
	KeyDepartments = "catalog:departments"
	KeyRoles       = "catalog:roles"
	KeyEmployees   = "catalog:employees"
	KeySchedules   = "catalog:schedules"
	KeyDocuments   = "records:documents"
	KeyDepartures  = "records:departures"
)

// Entity names accepted by Invalidate. The Kafka consumer receives
// these on the catalog change topic; mutations use them directly.
const (
	EntityCompany    = "company"
	EntityBranch     = "branch"
	EntityDepartment = "department"
	EntityRole       = "role"
	EntityEmployee   = "employee"
	EntitySchedule   = "schedule"
	EntityDocument   = "document"
	EntityDeparture  = "departure"
)

// invalidationKeys is the dependency closure per entity: a change to an
// entity drops every snapshot that embeds it. Employee snapshots embed
// department and role references, record snapshots embed employees.
var invalidationKeys = map[string][]string{
	EntityCompany:    {KeyCompanies},
	EntityBranch:     {KeyBranches, KeyDepartments, KeyEmployees},
	EntityDepartment: {KeyDepartments, KeyEmployees},
	EntityRole:       {KeyRoles, KeyEmployees},
	EntityEmployee:   {KeyEmployees, KeyDocuments, KeyDepartures},
	EntitySchedule:   {KeySchedules},
	EntityDocument:   {KeyDocuments},
	EntityDeparture:  {KeyDepartures},
}

// Upstream is the slice of the HR API client this package reads through.
type Upstream interface {
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	ListBranches(ctx context.Context) ([]domain.Branch, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListSchedules(ctx context.Context) ([]domain.Schedule, error)
	ListDocuments(ctx context.Context) ([]domain.Document, error)
	ListDepartures(ctx context.Context) ([]domain.DepartureRequest, error)
}

//go:generate mockgen -source=catalog_service.go -destination=mock/catalog_service_mock.go -package=mock
type Service interface {
	Companies(ctx context.Context) ([]domain.Company, error)
	Branches(ctx context.Context) ([]domain.Branch, error)
	Departments(ctx context.Context) ([]domain.Department, error)
	Roles(ctx context.Context) ([]domain.Role, error)
	Employees(ctx context.Context) ([]domain.Employee, error)
	Schedules(ctx context.Context) ([]domain.Schedule, error)
	Documents(ctx context.Context) ([]domain.Document, error)
	Departures(ctx context.Context) ([]domain.DepartureRequest, error)
	Invalidate(ctx context.Context, entities ...string)
}

type service struct {
	upstream   Upstream
	cache      *querycache.Cache
	catalogTTL time.Duration
	recordsTTL time.Duration
	logger     *zap.Logger
}

func NewService(upstream Upstream, cache *querycache.Cache, catalogTTL, recordsTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("catalog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.service")
	}

	if catalogTTL <= 0 {
		catalogTTL = 30 * time.Minute
	}
	if recordsTTL <= 0 {
		recordsTTL = 2 * time.Minute
	}

	return &service{
		upstream:   upstream,
		cache:      cache,
		catalogTTL: catalogTTL,
		recordsTTL: recordsTTL,
		logger:     l,
	}
}

func (s *service) Companies(ctx context.Context) ([]domain.Company, error) {
	var out []domain.Company
	err := s.cache.Fetch(ctx, KeyCompanies, s.catalogTTL, &out, func(ctx context.Context) (any, error) {
		return s.upstream.ListCompanies(ctx)
	})
	return out, err
}

func (s *service) Branches(ctx context.Context) ([]domain.Branch, error) {
	var out []domain.Branch
	err := s.cache.Fetch(ctx, KeyBranches, s.catalogTTL, &out, func(ctx context.Context) (any, error) {
		return s.upstream.ListBranches(ctx)
	})
	return out, err
}

func (s *service) Departments(ctx context.Context) ([]domain.Department, error) {
	var out []domain.Department
	err := s.cache.Fetch(ctx, KeyDepartments, s.catalogTTL, &out, func(ctx context.Context) (any, error) {
		return s.upstream.ListDepartments(ctx)
	})
	return out, err
}

func (s *service) Roles(ctx context.Context) ([]domain.Role, error) {
	var out []domain.Role
	err := s.cache.Fetch(ctx, KeyRoles, s.catalogTTL, &out, func(ctx context.Context) (any, error) {
		return s.upstream.ListRoles(ctx)
	})
	return out, err
}

func (s *service) Employees(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	err := s.cache.Fetch(ctx, KeyEmployees, s.catalogTTL, &out, func(ctx context.Context) (any, error) {
		return s.upstream.ListEmployees(ctx)
	})
	return out, err
}

func (s *service) Schedules(ctx context.Context) ([]domain.Schedule, error) {
	var out []domain.Schedule
	err := s.cache.Fetch(ctx, KeySchedules, s.catalogTTL, &out, func(ctx context.Context) (any, error) {
		return s.upstream.ListSchedules(ctx)
	})
	return out, err
}

func (s *service) Documents(ctx context.Context) ([]domain.Document, error) {
	var out []domain.Document
	err := s.cache.Fetch(ctx, KeyDocuments, s.recordsTTL, &out, func(ctx context.Context) (any, error) {
		return s.upstream.ListDocuments(ctx)
	})
	return out, err
}

func (s *service) Departures(ctx context.Context) ([]domain.DepartureRequest, error) {
	var out []domain.DepartureRequest
	err := s.cache.Fetch(ctx, KeyDepartures, s.recordsTTL, &out, func(ctx context.Context) (any, error) {
		return s.upstream.ListDepartures(ctx)
	})
	return out, err
}

func (s *service) Invalidate(ctx context.Context, entities ...string) {
	var keys []string
	for _, entity := range entities {
		ks, ok := invalidationKeys[entity]
		if !ok {
			s.logger.Warn("unknown entity for invalidation", zap.String("entity", entity))
			continue
		}
		keys = append(keys, ks...)
	}

	s.cache.Invalidate(ctx, dedupe(keys)...)
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := keys[:0]
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

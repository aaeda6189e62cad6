package document

import (
	"context"

	"rrhh-admin/internal/catalog"
	"rrhh-admin/internal/domain"
	"rrhh-admin/internal/filter"

	"go.uber.org/zap"
)

// DocTypes is the fixed vocabulary of the document type selector.
var DocTypes = []filter.Option{
	{Label: "Currículum", Value: "cv"},
	{Label: "Documento de identidad", Value: "id"},
	{Label: "Contrato", Value: "contract"},
	{Label: "Certificado", Value: "certificate"},
	{Label: "Otro", Value: "other"},
}

// API is the slice of the HR client this feature mutates through.
type API interface {
	CreateDocument(ctx context.Context, payload any) (domain.Document, error)
	DeleteDocument(ctx context.Context, id string) error
}

type Service interface {
	Screen(ctx context.Context, query ScreenQuery) (ScreenResponse, error)
	Create(ctx context.Context, req CreateDocumentRequest) (DocumentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api     API
	catalog catalog.Service
	logger  *zap.Logger
}

func NewService(api API, catalogService catalog.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{api: api, catalog: catalogService, logger: l}
}

// Screen derives one render of the documents list. The query carries the
// state the client held before the interaction plus the dimension it
// changed; the response carries the state after cascades and
// reconciliation, the recomputed option sets and the filtered rows in
// upstream order.
func (s *service) Screen(ctx context.Context, query ScreenQuery) (ScreenResponse, error) {
	nav := filter.NavContext{Kind: query.CtxKind, ID: query.CtxID, Name: query.CtxName}

	st := nav.Apply(stateFromQuery(query))
	if query.Changed != "" {
		st = nav.Apply(st.Change(query.Changed, query.Value))
	}

	branches, err := s.catalog.Branches(ctx)
	if err != nil {
		return ScreenResponse{}, err
	}
	departments, err := s.catalog.Departments(ctx)
	if err != nil {
		return ScreenResponse{}, err
	}
	roles, err := s.catalog.Roles(ctx)
	if err != nil {
		return ScreenResponse{}, err
	}
	employees, err := s.catalog.Employees(ctx)
	if err != nil {
		return ScreenResponse{}, err
	}
	documents, err := s.catalog.Documents(ctx)
	if err != nil {
		return ScreenResponse{}, err
	}

	deptIdx := domain.IndexDepartments(departments)
	empIdx := domain.IndexEmployees(employees)

	st = st.Reconcile(
		filter.DepartmentOptions(departments, st.Branch),
		filter.EmployeeOptions(employees, deptIdx, st),
	)

	rows := make([]DocumentResponse, 0, len(documents))
	for _, doc := range documents {
		if st.Matches(documentRecord(doc, deptIdx, empIdx)) {
			rows = append(rows, mapDocument(doc, empIdx))
		}
	}

	return ScreenResponse{
		Filters: st,
		Options: ScreenOptions{
			Branches:    filter.BranchOptions(branches),
			Departments: filter.DepartmentOptions(departments, st.Branch),
			Roles:       filter.RoleOptions(roles),
			Employees:   filter.EmployeeOptions(employees, deptIdx, st),
			DocTypes:    filter.WithAllOption(filter.LabelTodos, DocTypes),
		},
		Rows:    rows,
		Context: screenContext(nav),
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateDocumentRequest) (DocumentResponse, error) {
	doc, err := s.api.CreateDocument(ctx, req)
	if err != nil {
		return DocumentResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntityDocument)
	s.logger.Info("document created",
		zap.String("document_id", doc.ID.String()),
		zap.String("employee_id", doc.OwnerID()),
	)
	return mapDocument(doc, nil), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteDocument(ctx, id); err != nil {
		return err
	}

	s.catalog.Invalidate(ctx, catalog.EntityDocument)
	s.logger.Info("document deleted", zap.String("document_id", id))
	return nil
}

func stateFromQuery(q ScreenQuery) filter.State {
	return filter.State{
		Branch:     q.Branch,
		Department: q.Department,
		Role:       q.Role,
		Employee:   q.Employee,
		DocType:    q.DocType,
		DateFrom:   q.DateFrom,
		DateTo:     q.DateTo,
		Search:     q.Search,
	}.Normalized()
}

func screenContext(nav filter.NavContext) *ScreenContext {
	if !nav.Active() {
		return nil
	}
	return &ScreenContext{Kind: nav.Kind, ID: nav.ID, Name: nav.Name, Locked: nav.Locked()}
}

// documentRecord projects a document onto the filter dimensions. An
// unresolvable owner leaves the chain values empty, so the record fails
// any constrained chain dimension.
func documentRecord(doc domain.Document, departments map[string]domain.Department, employees map[string]domain.Employee) filter.Record {
	rec := filter.Record{
		Employee:     doc.OwnerID(),
		DocType:      doc.DocType,
		SearchFields: []string{doc.FileName},
	}
	if t, ok := domain.ParseDate(doc.UploadedAt); ok {
		rec.Date, rec.HasDate = t, true
	}
	if emp, ok := domain.ResolveEmployee(doc.Employee, doc.OwnerID(), employees); ok {
		rec.Branch = emp.BranchID(departments)
		rec.Department = emp.DepartmentID()
		rec.Role = emp.RoleID()
		rec.SearchFields = append(rec.SearchFields, emp.FullName(), emp.Email)
	}
	return rec
}

func mapDocument(doc domain.Document, employees map[string]domain.Employee) DocumentResponse {
	out := DocumentResponse{
		ID:         doc.ID.String(),
		EmployeeID: doc.OwnerID(),
		FileName:   doc.FileName,
		DocType:    doc.DocType,
		UploadedAt: doc.UploadedAt,
	}
	if emp, ok := domain.ResolveEmployee(doc.Employee, doc.OwnerID(), employees); ok {
		out.EmployeeName = emp.FullName()
	}
	return out
}

package app

import (
	"rrhh-admin/internal/auth"
	"rrhh-admin/internal/branch"
	"rrhh-admin/internal/catalog"
	"rrhh-admin/internal/company"
	"rrhh-admin/internal/config"
	"rrhh-admin/internal/department"
	"rrhh-admin/internal/departure"
	"rrhh-admin/internal/document"
	"rrhh-admin/internal/employee"
	"rrhh-admin/internal/hrapi"
	"rrhh-admin/internal/middleware"
	"rrhh-admin/internal/rbac"
	"rrhh-admin/internal/role"
	"rrhh-admin/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	client *hrapi.Client,
	catalogService catalog.Service,
	rdb *redis.Client,
) error {
	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(client)
	branchService := branch.NewService(client, catalogService)
	companyService := company.NewService(client, catalogService)
	departmentService := department.NewService(client, catalogService)
	departureService := departure.NewService(client, catalogService)
	documentService := document.NewService(client, catalogService)
	employeeService := employee.NewService(client, catalogService)
	roleService := role.NewService(client, catalogService)
	scheduleService := schedule.NewService(client, catalogService)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	branchHandler := branch.NewHandler(branchService)
	companyHandler := company.NewHandler(companyService)
	departmentHandler := department.NewHandler(departmentService)
	departureHandler := departure.NewHandler(departureService)
	documentHandler := document.NewHandler(documentService)
	employeeHandler := employee.NewHandler(employeeService)
	roleHandler := role.NewHandler(roleService)
	scheduleHandler := schedule.NewHandler(scheduleService)

	authMW := middleware.AuthMiddleware(cfg.JWTSecret)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		branch.RegisterRoutes(api, branchHandler, authMW, rbacService)
		company.RegisterRoutes(api, companyHandler, authMW, rbacService)
		department.RegisterRoutes(api, departmentHandler, authMW, rbacService)
		departure.RegisterRoutes(api, departureHandler, authMW, rbacService, rdb)
		document.RegisterRoutes(api, documentHandler, authMW, rbacService, rdb)
		employee.RegisterRoutes(api, employeeHandler, authMW, rbacService)
		role.RegisterRoutes(api, roleHandler, authMW, rbacService)
		schedule.RegisterRoutes(api, scheduleHandler, authMW, rbacService)
	}

	return nil
}

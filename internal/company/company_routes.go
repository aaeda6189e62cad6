package company

import (
	"rrhh-admin/internal/middleware"
	"rrhh-admin/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService rbac.Service,
) {
	companies := r.Group("/companies")
	companies.Use(auth)
	{
		companies.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceCompanies, rbac.ActionRead), handler.GetAll)
		companies.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceCompanies, rbac.ActionRead), handler.GetById)
		companies.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceCompanies, rbac.ActionWrite), handler.Create)
		companies.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceCompanies, rbac.ActionWrite), handler.Update)
		companies.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceCompanies, rbac.ActionDelete), handler.Delete)
	}
}

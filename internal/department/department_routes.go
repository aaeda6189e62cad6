package department

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
	departments := r.Group("/departments")
	departments.Use(auth)
	{
		departments.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartments, rbac.ActionRead), handler.GetAll)
		departments.GET("/options", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartments, rbac.ActionRead), handler.GetOptions)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartments, rbac.ActionRead), handler.GetById)
		departments.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartments, rbac.ActionWrite), handler.Create)
		departments.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartments, rbac.ActionWrite), handler.Update)
		departments.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartments, rbac.ActionDelete), handler.Delete)
	}
}

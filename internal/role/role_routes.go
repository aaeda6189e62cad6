package role

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
	roles := r.Group("/roles")
	roles.Use(auth)
	{
		roles.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceRoles, rbac.ActionRead), handler.GetAll)
		roles.GET("/options", middleware.RBACAuthorize(rbacService, rbac.ResourceRoles, rbac.ActionRead), handler.GetOptions)
		roles.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceRoles, rbac.ActionRead), handler.GetById)
		roles.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceRoles, rbac.ActionWrite), handler.Create)
		roles.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceRoles, rbac.ActionWrite), handler.Update)
		roles.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceRoles, rbac.ActionDelete), handler.Delete)
	}
}

package branch

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
	branches := r.Group("/branches")
	branches.Use(auth)
	{
		branches.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceBranches, rbac.ActionRead), handler.GetAll)
		branches.GET("/options", middleware.RBACAuthorize(rbacService, rbac.ResourceBranches, rbac.ActionRead), handler.GetOptions)
		branches.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceBranches, rbac.ActionRead), handler.GetById)
		branches.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceBranches, rbac.ActionWrite), handler.Create)
		branches.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceBranches, rbac.ActionWrite), handler.Update)
		branches.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceBranches, rbac.ActionDelete), handler.Delete)
	}
}

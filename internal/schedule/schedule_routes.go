package schedule

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
	schedules := r.Group("/schedules")
	schedules.Use(auth)
	{
		schedules.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceSchedules, rbac.ActionRead), handler.GetAll)
		schedules.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceSchedules, rbac.ActionRead), handler.GetById)
		schedules.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceSchedules, rbac.ActionWrite), handler.Create)
		schedules.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceSchedules, rbac.ActionWrite), handler.Update)
		schedules.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceSchedules, rbac.ActionDelete), handler.Delete)
	}
}

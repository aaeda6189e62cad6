package departure

import (
	"rrhh-admin/internal/middleware"
	"rrhh-admin/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	departures := r.Group("/departures")
	departures.Use(auth)
	{
		departures.GET("/screen", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartures, rbac.ActionRead), handler.Screen)
		if redisClient != nil {
			departures.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, rbac.ResourceDepartures, rbac.ActionWrite),
				handler.Create,
			)
		} else {
			departures.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartures, rbac.ActionWrite), handler.Create)
		}
		departures.PATCH("/:id/decision", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartures, rbac.ActionDecide), handler.Decide)
	}
}

package document

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

	documents := r.Group("/documents")
	documents.Use(auth)
	{
		documents.GET("/screen", middleware.RBACAuthorize(rbacService, rbac.ResourceDocuments, rbac.ActionRead), handler.Screen)
		if redisClient != nil {
			documents.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, rbac.ResourceDocuments, rbac.ActionWrite),
				handler.Create,
			)
		} else {
			documents.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceDocuments, rbac.ActionWrite), handler.Create)
		}
		documents.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDocuments, rbac.ActionDelete), handler.Delete)
	}
}

package middleware

import (
	"rrhh-admin/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger builds the request-scoped logger carrying request_id
// and stores it in the request context so downstream layers log through
// contextutil.GetLogger without knowing about gin. Runs after RequestID,
// which fills the gin key it reads; AuthMiddleware adds the user once
// the token is validated.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")

		reqLogger := logger.With(zap.String("request_id", rid))

		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

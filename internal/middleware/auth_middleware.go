package middleware

import (
	"fmt"
	"strings"

	autherrors "rrhh-admin/internal/auth/errors"
	"rrhh-admin/internal/shared/apperror"
	"rrhh-admin/internal/shared/contextutil"
	"rrhh-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthMiddleware validates the upstream-issued HS256 token locally so
// garbage never reaches the HR API, then propagates the raw token and
// the caller identity through the request context. This service issues
// no tokens; the same token authenticates us upstream.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWithAuthError(c, autherrors.ErrTokenNotFound)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			abortWithAuthError(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWithAuthError(c, autherrors.ErrInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			userID, _ = claims["sub"].(string)
		}
		if userID == "" {
			abortWithAuthError(c, autherrors.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)
		employeeID, _ := claims["employee_id"].(string)

		c.Set("user_id", userID)
		c.Set("role", role)
		c.Set("employee_id", employeeID)

		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		ctx = contextutil.WithAuthToken(ctx, tokenString)

		// Re-store the request-scoped logger so logs past this point
		// carry the caller identity.
		scoped := contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", userID))
		ctx = contextutil.WithLogger(ctx, scoped)

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWithAuthError(c *gin.Context, errObj *apperror.AppError) {
	response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
	c.Abort()
}

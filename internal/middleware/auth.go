// Middleware: required Authorization: Bearer <token> header, token validation and role check.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cargomatters/backend/internal/response"
	"github.com/cargomatters/backend/internal/security"
)

const HeaderAuthorization = "Authorization"
const BearerPrefix = "Bearer "

// TokenParser verifies a bearer token and returns its claims. In production
// this is *security.JWTManager.
type TokenParser interface {
	Parse(token string) (*security.Claims, error)
}

// AuthMiddleware requires Authorization: Bearer <token>, validates it and,
// when requiredType is non-empty, rejects subjects of any other type.
func AuthMiddleware(parser TokenParser, requiredType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderAuthorization)
		if raw == "" {
			response.AbortWithError(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}
		if !strings.HasPrefix(raw, BearerPrefix) {
			response.AbortWithError(c, http.StatusUnauthorized, "invalid Authorization; expected Bearer <token>")
			return
		}
		token := strings.TrimPrefix(raw, BearerPrefix)
		if token == "" {
			response.AbortWithError(c, http.StatusUnauthorized, "missing Bearer token")
			return
		}
		claims, err := parser.Parse(token)
		if err != nil {
			response.AbortWithError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if requiredType != "" && claims.Type != requiredType {
			response.AbortWithError(c, http.StatusUnauthorized, "insufficient permissions")
			return
		}
		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, ContextKeyUserType, claims.Type)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CronSecretMiddleware guards job endpoints with a static bearer secret.
func CronSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(HeaderAuthorization) != BearerPrefix+secret {
			response.AbortWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		c.Next()
	}
}

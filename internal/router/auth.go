// Company auth routes: register, login, current profile.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cargomatters/backend/internal/handlers"
	"github.com/cargomatters/backend/internal/middleware"
	"github.com/cargomatters/backend/internal/security"
)

// RegisterAuth mounts /auth: public register and login, /me behind a
// company bearer token.
func RegisterAuth(auth *gin.RouterGroup, deps Dependencies) {
	auth.POST("/register", handlers.Register(deps.Service))
	auth.POST("/login", handlers.Login(deps.Service, deps.JWT))

	me := auth.Group("")
	me.Use(middleware.AuthMiddleware(deps.JWT, security.TypeCompany))
	me.GET("/me", handlers.Me(deps.Service))
}

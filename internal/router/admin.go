// Admin routes: login is public, everything else requires an admin bearer
// token.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cargomatters/backend/internal/handlers"
	"github.com/cargomatters/backend/internal/middleware"
	"github.com/cargomatters/backend/internal/security"
)

// RegisterAdmin mounts /admin/login, /admin/stats and the /transporters
// review API.
func RegisterAdmin(v1 *gin.RouterGroup, deps Dependencies) {
	v1.POST("/admin/login", handlers.AdminLogin(deps.Admins, deps.JWT))

	adminAuth := middleware.AuthMiddleware(deps.JWT, security.TypeAdmin)

	admin := v1.Group("/admin")
	admin.Use(adminAuth)
	admin.GET("/stats", handlers.AdminStats(deps.Service))

	tr := v1.Group("/transporters")
	tr.Use(adminAuth)
	tr.GET("", handlers.ListTransporters(deps.Service))
	tr.GET("/export", handlers.ExportTransporters(deps.Service))
	tr.GET("/:id", handlers.GetTransporter(deps.Service))
	tr.PUT("/:id/status", handlers.SetTransporterStatus(deps.Service))
	tr.POST("/:id/notes", handlers.AddTransporterNote(deps.Service))
}

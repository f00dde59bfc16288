// Company self-service routes: profile and fleet. All behind a company
// bearer token.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cargomatters/backend/internal/handlers"
	"github.com/cargomatters/backend/internal/middleware"
	"github.com/cargomatters/backend/internal/security"
)

// RegisterCompany mounts /company and /company/vehicles.
func RegisterCompany(company *gin.RouterGroup, deps Dependencies) {
	company.Use(middleware.AuthMiddleware(deps.JWT, security.TypeCompany))

	company.GET("", handlers.GetCompany(deps.Service))
	company.PUT("", handlers.UpdateCompany(deps.Service))

	company.GET("/vehicles", handlers.ListVehicles(deps.Service))
	company.POST("/vehicles", handlers.AddVehicle(deps.Service))
	company.PUT("/vehicles/:id", handlers.UpdateVehicle(deps.Service))
	company.DELETE("/vehicles/:id", handlers.DeleteVehicle(deps.Service))
}

// Router: Gin engine assembly with recovery, security headers, CORS and the
// /api/v1 middleware chain.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cargomatters/backend/internal/admins"
	"github.com/cargomatters/backend/internal/middleware"
	"github.com/cargomatters/backend/internal/security"
	"github.com/cargomatters/backend/internal/transporters"
)

// Dependencies carries everything the route tree needs.
type Dependencies struct {
	Service      *transporters.Service
	Admins       *admins.Repo
	JWT          *security.JWTManager
	Redis        *redis.Client
	Logger       *zap.Logger
	RateLimitRPS int
	CronSecret   string
}

// New builds the Gin engine: recovery and security headers globally, then
// /api/v1 with request logging and (when Redis is up) rate limiting.
func New(deps Dependencies) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RecoveryMiddleware(deps.Logger))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.RequestLoggerMiddleware(deps.Logger))
		if deps.Redis != nil && deps.RateLimitRPS > 0 {
			v1.Use(middleware.RateLimitMiddleware(deps.Redis, deps.RateLimitRPS))
		}

		RegisterSystem(v1)
		RegisterAuth(v1.Group("/auth"), deps)
		RegisterCompany(v1.Group("/company"), deps)
		RegisterAdmin(v1, deps)
		RegisterJobs(v1.Group("/jobs"), deps)
	}

	return r
}

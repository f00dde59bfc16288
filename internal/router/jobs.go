// Job routes, guarded by the configured cron bearer secret.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cargomatters/backend/internal/handlers"
	"github.com/cargomatters/backend/internal/middleware"
)

// RegisterJobs mounts /jobs/send-reminders.
func RegisterJobs(jobs *gin.RouterGroup, deps Dependencies) {
	jobs.Use(middleware.CronSecretMiddleware(deps.CronSecret))
	jobs.POST("/send-reminders", handlers.SendReminders(deps.Service))
}

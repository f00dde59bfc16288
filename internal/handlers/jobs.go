// Externally triggered batch jobs.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cargomatters/backend/internal/response"
	"github.com/cargomatters/backend/internal/transporters"
)

// SendReminders runs one reminder sweep over zero-vehicle companies.
func SendReminders(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.SendReminders(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "Reminder job completed", res)
	}
}

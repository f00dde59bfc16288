package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cargomatters/backend/internal/response"
)

// Health returns 200 in the unified envelope.
func Health(c *gin.Context) {
	response.Success(c, http.StatusOK, "ok", nil)
}

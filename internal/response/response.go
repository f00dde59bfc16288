// Package response provides the unified API response envelope: success flag, message, data.
package response

import (
	"github.com/gin-gonic/gin"
)

// Body is the unified response structure for all API responses.
type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful response with status code, message and optional data.
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	if message == "" {
		message = "success"
	}
	c.JSON(statusCode, Body{Success: true, Message: message, Data: data})
}

// Error sends an error response with status code and message; data is omitted.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Body{Success: false, Message: message})
}

// AbortWithError aborts the chain and sends the unified error response (for middleware).
func AbortWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Body{Success: false, Message: message})
}

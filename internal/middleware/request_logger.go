// Middleware: per-request log line with method, path, status and duration.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLoggerMiddleware logs every request after handling: method, path, status, duration.
func RequestLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		if path == "" {
			path = "/"
		}
		c.Next()
		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start).Round(time.Millisecond)),
		}
		// handlers attach internal errors via c.Error; log them here, never
		// in the response body
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
			logger.Error("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}

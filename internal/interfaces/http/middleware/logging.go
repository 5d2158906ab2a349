// Package middleware holds the gin middleware shared across routes.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/prometheus"
)

// RequestLogging logs every request and records its metrics.  The metrics
// path label uses the route pattern, not the raw URL, to keep cardinality
// bounded.
func RequestLogging(logger logging.Logger, metrics *prometheus.Metrics) gin.HandlerFunc {
	logger = logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()

		metrics.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(status), elapsed.Seconds())

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", status),
			logging.Duration("elapsed", elapsed),
			logging.String("client", c.ClientIP()),
		}
		if status >= 500 {
			logger.Error("request failed", fields...)
			return
		}
		if status >= 400 {
			logger.Warn("request rejected", fields...)
			return
		}
		logger.Info("request served", fields...)
	}
}

// Recovery converts panics into 500 responses with a logged stack.
func Recovery(logger logging.Logger) gin.HandlerFunc {
	logger = logger.Named("http.recovery")
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("handler panic", logging.Any("panic", recovered))
		c.AbortWithStatusJSON(500, gin.H{"code": "COMMON_001", "message": "internal error"})
	})
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reward-gateway/internal/core/ports"
)

// HealthCheck returns a handler that pings every registered dependency.
// Any failing dependency degrades the response to 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		status := "ok"
		httpStatus := http.StatusOK
		deps := make(map[string]string, len(checkers))

		for _, checker := range checkers {
			if err := checker.Ping(ctx); err != nil {
				deps[checker.Name()] = "unreachable"
				status = "degraded"
				httpStatus = http.StatusServiceUnavailable
			} else {
				deps[checker.Name()] = "ok"
			}
		}

		c.JSON(httpStatus, gin.H{
			"status":       status,
			"dependencies": deps,
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}

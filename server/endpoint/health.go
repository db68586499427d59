package endpoint

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/golinq/observability"
	"github.com/kbukum/golinq/version"
)

// HealthChecker returns the health of one component.
type HealthChecker func(ctx context.Context) observability.Health

// Health reports service health aggregated over checkers. A component that
// is down answers 503.
func Health(serviceName string, checkers ...HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := observability.NewServiceHealth(serviceName, version.Short())
		for _, check := range checkers {
			health.AddComponent(check(c.Request.Context()))
		}

		status := http.StatusOK
		if health.Status == observability.HealthStatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}

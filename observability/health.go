package observability

import (
	"context"
	"fmt"

	"github.com/kbukum/golinq/linq"
	"github.com/kbukum/golinq/logger"
)

// HealthStatus represents the health state of a component or service.
type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "up"
	HealthStatusDown     HealthStatus = "down"
	HealthStatusDegraded HealthStatus = "degraded"
)

// Health describes the health of an individual component.
type Health struct {
	Name    string            `json:"name"`
	Status  HealthStatus      `json:"status"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// ServiceHealth describes the overall health of a service and its components.
type ServiceHealth struct {
	Service    string       `json:"service"`
	Status     HealthStatus `json:"status"`
	Version    string       `json:"version,omitempty"`
	Components []Health     `json:"components,omitempty"`
}

// NewServiceHealth creates a ServiceHealth with status up.
func NewServiceHealth(service, version string) *ServiceHealth {
	return &ServiceHealth{
		Service: service,
		Status:  HealthStatusUp,
		Version: version,
	}
}

// AddComponent adds a component health result and degrades overall status if needed.
func (sh *ServiceHealth) AddComponent(ch Health) {
	sh.Components = append(sh.Components, ch)

	switch ch.Status {
	case HealthStatusDown:
		sh.Status = HealthStatusDown
	case HealthStatusDegraded:
		if sh.Status != HealthStatusDown {
			sh.Status = HealthStatusDegraded
		}
	}
}

// CheckEngine runs a small query end to end and reports the engine down if
// it does not produce the expected sum.
func CheckEngine(ctx context.Context) Health {
	h := Health{Name: "engine", Status: HealthStatusUp}
	q, err := linq.Range(1, 4, linq.WithContext(ctx), linq.WithLogger(logger.Nop()))
	if err != nil {
		return engineDown(h, err.Error())
	}
	sum, err := q.Where(func(v any, _ int) any { return v.(int)%2 == 0 }).Sum()
	if err != nil {
		return engineDown(h, err.Error())
	}
	if sum != 6 {
		return engineDown(h, fmt.Sprintf("self-check sum = %v, want 6", sum))
	}
	return h
}

func engineDown(h Health, msg string) Health {
	h.Status = HealthStatusDown
	h.Message = msg
	return h
}

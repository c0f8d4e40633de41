package health

import (
	"context"
	healthservice "docvault/internal/services/health"
)

const pkg = "healthHandler/"

type HealthChecker interface {
	Check(ctx context.Context) healthservice.Status
}

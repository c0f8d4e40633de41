package compliance

import (
	"context"
	"docvault/internal/models"
	healthservice "docvault/internal/services/health"
)

const pkg = "complianceHandler/"

type SummaryProvider interface {
	Summary(ctx context.Context) (*models.ComplianceSummary, error)
}

type HealthChecker interface {
	Check(ctx context.Context) healthservice.Status
}

package complianceservice

import (
	"context"
	"docvault/internal/models"
)

type DocumentCounter interface {
	CountDocuments(ctx context.Context) (int, error)
}

type ComplianceRepository interface {
	CountFullyCompliant(ctx context.Context) (int, error)
	RecordsByDocument(ctx context.Context, docID string) ([]*models.ComplianceRecord, error)
}

type FallbackCounter interface {
	Count() (int, error)
}

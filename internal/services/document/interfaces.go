package documentservice

import (
	"context"
	"docvault/internal/models"
)

type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc *models.Document) error
	DocumentByID(ctx context.Context, id string) (*models.Document, error)
}

type ComplianceWriter interface {
	CreateRecords(ctx context.Context, records []*models.ComplianceRecord) error
}

type ComplianceAssessor interface {
	Status() map[string]bool
	Assess(docID string) []*models.ComplianceRecord
	StatusFor(ctx context.Context, docID string) (map[string]bool, error)
}

type AuditRecorder interface {
	Record(ctx context.Context, entry *models.AuditEntry)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}) error
	Del(ctx context.Context, keys ...string) error
}

type FileStorage interface {
	SaveDocument(doc *models.Document) error
	LoadDocument(id string) (*models.Document, error)
}

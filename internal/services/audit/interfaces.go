package auditservice

import (
	"context"
	"docvault/internal/models"
)

type AuditRepository interface {
	Append(ctx context.Context, entry *models.AuditEntry) error
	Recent(ctx context.Context, limit int) ([]*models.AuditEntry, error)
}

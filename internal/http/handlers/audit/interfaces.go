package audit

import (
	"context"
	"docvault/internal/models"
)

const pkg = "auditHandler/"

type AuditProvider interface {
	Recent(ctx context.Context, limit int) ([]*models.AuditEntry, error)
}

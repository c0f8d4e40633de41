package auditrepo

import (
	"context"
	"docvault/internal/entities"
	"docvault/internal/models"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const pkg = "auditRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

// Append inserts a single audit row. Rows are never updated or deleted
// afterwards.
func (r *repository) Append(ctx context.Context, entry *models.AuditEntry) error {
	op := pkg + "Append"

	var docID, userID any

	if entry.DocumentID != "" {
		docID = entry.DocumentID
	}
	if entry.UserID != "" {
		userID = entry.UserID
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_trail (document_id, user_id, action, details, ip_address, user_agent, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		docID, userID, entry.Action, entry.Details, entry.IPAddress, entry.UserAgent, entry.Status, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) Recent(ctx context.Context, limit int) ([]*models.AuditEntry, error) {
	op := pkg + "Recent"

	rawEntries := make([]entities.AuditEntry, 0)

	err := r.db.SelectContext(ctx, &rawEntries,
		`SELECT
			a.id AS id,
			a.document_id AS document_id,
			a.user_id AS user_id,
			a.action AS action,
			a.details AS details,
			a.ip_address AS ip_address,
			a.user_agent AS user_agent,
			a.status AS status,
			d.filename AS filename,
			a.created_at AS created_at
		FROM audit_trail a
		LEFT JOIN documents d ON a.document_id = d.id
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries := make([]*models.AuditEntry, 0, len(rawEntries))

	for _, raw := range rawEntries {
		entries = append(entries, &models.AuditEntry{
			ID:         raw.ID,
			DocumentID: raw.DocumentID.String,
			UserID:     raw.UserID.String,
			Action:     raw.Action,
			Details:    raw.Details,
			IPAddress:  raw.IPAddress.String,
			UserAgent:  raw.UserAgent.String,
			Status:     raw.Status,
			Filename:   raw.Filename.String,
			CreatedAt:  raw.CreatedAt,
		})
	}

	return entries, nil
}

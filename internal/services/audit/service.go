package auditservice

import (
	"context"
	"docvault/internal/models"
	"log/slog"
	"time"
)

const pkg = "auditService/"

type AuditService struct {
	log  *slog.Logger
	repo AuditRepository
}

// New builds the audit service. repo may be nil when the database is
// unreachable; entries are then skipped rather than queued.
func New(log *slog.Logger, repo AuditRepository) *AuditService {
	return &AuditService{
		log:  log,
		repo: repo,
	}
}

// Record appends an audit entry best-effort. Failures are logged, never
// propagated: an audit hiccup must not fail the operation it describes.
func (as *AuditService) Record(ctx context.Context, entry *models.AuditEntry) {
	op := pkg + "Record"

	log := as.log.With(slog.String("op", op))

	if as.repo == nil {
		log.Debug("audit entry skipped, database not available", slog.String("action", entry.Action))
		return
	}

	if entry.Status == "" {
		entry.Status = models.AuditStatusSuccess
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := as.repo.Append(ctx, entry); err != nil {
		log.Error("failed to append audit entry", slog.String("action", entry.Action), slog.String("error", err.Error()))
		return
	}

	log.Debug("audit entry recorded", slog.String("action", entry.Action), slog.String("doc_id", entry.DocumentID))
}

func (as *AuditService) Recent(ctx context.Context, limit int) ([]*models.AuditEntry, error) {
	op := pkg + "Recent"

	log := as.log.With(slog.String("op", op))

	if as.repo == nil {
		log.Warn("audit trail requested while database not available")
		return nil, models.ErrDatabaseUnavailable
	}

	entries, err := as.repo.Recent(ctx, limit)
	if err != nil {
		log.Error("failed to list audit entries", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("audit entries listed", slog.Int("count", len(entries)))

	return entries, nil
}

package audit

import (
	"context"
	"docvault/internal/dto"
	"docvault/internal/models"
	errutils "docvault/internal/utils/http_errors"
	parseutil "docvault/internal/utils/parseLimit"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Trail lists recent audit entries, newest first. With the database down it
// answers with an empty list and a message instead of failing.
func Trail(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ap AuditProvider) {
	op := pkg + "Trail"

	log = log.With(slog.String("op", op))

	limit := parseutil.ParseLimit(r.URL.Query().Get("limit"), defaultLimit, maxLimit)

	entries, err := ap.Recent(ctx, limit)
	if err != nil {
		if errors.Is(err, models.ErrDatabaseUnavailable) {
			log.Warn("audit trail requested while database is down")

			response := dto.AuditTrailResponse{
				Entries: []dto.AuditEntryResponse{},
				Message: "audit trail unavailable, database offline",
			}

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(response); err != nil {
				log.Error("failed to write response", slog.String("error", err.Error()))
			}
			return
		}
		log.Error("failed to list audit entries", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	dtoEntries := make([]dto.AuditEntryResponse, 0, len(entries))

	for _, entry := range entries {
		dtoEntries = append(dtoEntries, dto.AuditEntryResponse{
			Action:    entry.Action,
			Details:   entry.Details,
			Timestamp: entry.CreatedAt,
			Status:    entry.Status,
			Filename:  entry.Filename,
		})
	}

	response := dto.AuditTrailResponse{Entries: dtoEntries}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

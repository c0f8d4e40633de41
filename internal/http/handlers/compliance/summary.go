package compliance

import (
	"context"
	"docvault/internal/dto"
	"docvault/internal/models"
	errutils "docvault/internal/utils/http_errors"
	"encoding/json"
	"log/slog"
	"net/http"
)

// Summary reports document totals and the per-framework status. Counts fall
// back to the file store when the database is down.
func Summary(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, sp SummaryProvider, hc HealthChecker) {
	op := pkg + "Summary"

	log = log.With(slog.String("op", op))

	summary, err := sp.Summary(ctx)
	if err != nil {
		log.Error("failed to build compliance summary", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	status := hc.Check(ctx)

	response := dto.ComplianceSummaryResponse{
		CryptoAvailable:   status.CryptoAvailable,
		DatabaseAvailable: status.DatabaseAvailable,
		TotalDocuments:    summary.TotalDocuments,
		FullyCompliant:    summary.FullyCompliant,
		Frameworks:        summary.Frameworks,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

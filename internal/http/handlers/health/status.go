package health

import (
	"context"
	"docvault/internal/dto"
	"docvault/internal/models"
	"encoding/json"
	"log/slog"
	"net/http"
)

const serviceVersion = "1.0.0"

// Status describes the service, its algorithms and the frameworks it
// assesses documents against.
func Status(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, hc HealthChecker) {
	op := pkg + "Status"

	log = log.With(slog.String("op", op))

	status := hc.Check(ctx)

	response := dto.StatusResponse{
		Service:           "docvault",
		Version:           serviceVersion,
		CryptoAvailable:   status.CryptoAvailable,
		DatabaseAvailable: status.DatabaseAvailable,
		Algorithms: map[string]string{
			"symmetric": models.AlgorithmAESGCM,
			"hash":      "SHA-256",
		},
		Compliance: models.Frameworks,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

// Root is a small banner with the main endpoints and the database state.
func Root(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, hc HealthChecker) {
	op := pkg + "Root"

	log = log.With(slog.String("op", op))

	database := "not connected"
	if hc.Check(ctx).DatabaseAvailable {
		database = "connected"
	}

	response := map[string]any{
		"service":  "docvault",
		"version":  serviceVersion,
		"database": database,
		"endpoints": map[string]string{
			"health":     "/api/v1/health",
			"status":     "/api/v1/status",
			"encrypt":    "/api/v1/encrypt",
			"audit":      "/api/v1/audit-trail",
			"compliance": "/api/v1/compliance/summary",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

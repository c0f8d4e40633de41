package health

import (
	"context"
	"docvault/internal/dto"
	"docvault/internal/models"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Check reports whether the service can encrypt and which backends are
// reachable. A down database degrades the service, it does not stop it.
func Check(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, hc HealthChecker) {
	op := pkg + "Check"

	log = log.With(slog.String("op", op))

	status := hc.Check(ctx)

	response := dto.HealthResponse{
		Status:            "operational",
		CryptoAvailable:   status.CryptoAvailable,
		DatabaseAvailable: status.DatabaseAvailable,
		CacheAvailable:    status.CacheAvailable,
		CryptoDetails: dto.CryptoDetails{
			Algorithm: models.AlgorithmAESGCM,
			Status:    "ok",
		},
		Timestamp: time.Now(),
	}

	if !status.Operational() {
		response.Status = "degraded"
		response.CryptoDetails.Status = status.CryptoError
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

package docs

import (
	"context"
	"docvault/internal/dto"
	"docvault/internal/models"
	errutils "docvault/internal/utils/http_errors"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// Info returns the metadata a client needs to decrypt the document on its
// own, key backup included.
func Info(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, dp DocumentProvider) {
	op := pkg + "Info"

	log = log.With(slog.String("op", op))

	doc, err := dp.DocumentInfo(ctx, docID, r.RemoteAddr, r.UserAgent())
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.String("doc_id", docID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
			return
		}
		log.Error("failed to get document info", slog.String("doc_id", docID), slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := dto.DocumentInfoResponse{
		DocumentID:   doc.ID,
		Filename:     doc.Filename,
		SizeOriginal: doc.Size,
		Nonce:        doc.Nonce,
		KeyBackup:    doc.KeyBackup,
		Timestamp:    doc.CreatedAt,
		Compliance:   doc.Compliance,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

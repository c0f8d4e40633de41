package docs

import (
	"context"
	"docvault/internal/models"
	errutils "docvault/internal/utils/http_errors"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// GetByID streams the stored ciphertext as an attachment.
func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, dp DocumentProvider) {
	op := pkg + "GetByID"

	log = log.With(slog.String("op", op))

	doc, err := dp.DocumentByID(ctx, docID, r.RemoteAddr, r.UserAgent())
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.String("doc_id", docID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
			return
		}
		log.Error("failed to get document", slog.String("doc_id", docID), slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.qse\"", doc.Filename))
	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(doc.Ciphertext); err != nil {
		log.Error("failed to write file response", slog.String("error", err.Error()))
	}
}

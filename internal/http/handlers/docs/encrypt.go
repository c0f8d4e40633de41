package docs

import (
	"context"
	"docvault/internal/dto"
	"docvault/internal/models"
	errutils "docvault/internal/utils/http_errors"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

const maxUploadSize = 50 << 20

// Encrypt handles the upload form, seals the file and reports where the
// ciphertext landed.
func Encrypt(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, de DocumentEncryptor) {
	op := pkg + "Encrypt"

	log = log.With(slog.String("op", op))

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Warn("failed to parse multipart form", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("missing file part", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer file.Close()

	requester, _ := r.Context().Value(models.UserContextKey).(*models.User)

	stored, err := de.EncryptAndStore(ctx, requester, header.Filename, file, r.RemoteAddr, r.UserAgent())
	if err != nil {
		if errors.Is(err, models.ErrEmptyDocument) {
			log.Warn("empty document uploaded", slog.String("filename", header.Filename))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrEmptyDocument.Error())
			return
		}
		log.Error("failed to encrypt document", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := dto.EncryptResponse{
		Status:         "encrypted",
		DocumentID:     stored.ID,
		DownloadURL:    fmt.Sprintf("/api/v1/document/%s", stored.ID),
		Filename:       stored.Filename,
		SizeOriginal:   stored.Size,
		Timestamp:      stored.CreatedAt,
		Compliance:     stored.Compliance,
		DatabaseStored: stored.DatabaseStored,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

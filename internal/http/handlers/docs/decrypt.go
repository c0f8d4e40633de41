package docs

import (
	"context"
	"docvault/internal/dto"
	"docvault/internal/models"
	errutils "docvault/internal/utils/http_errors"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Decrypt opens a client-supplied nonce/ciphertext/key triple.
func Decrypt(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, dc Decryptor) {
	op := pkg + "Decrypt"

	log = log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer r.Body.Close()

	var req dto.DecryptRequest

	if err := json.Unmarshal(body, &req); err != nil {
		log.Warn("unmarshal body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	plaintext, err := dc.Decrypt(ctx, req.Nonce, req.Ciphertext, req.Key, r.RemoteAddr, r.UserAgent())
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid decrypt params", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		if errors.Is(err, models.ErrDecryptionFailed) {
			log.Warn("decryption failed", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrDecryptionFailed.Error())
			return
		}
		log.Error("failed to decrypt payload", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	// Plaintext goes out base64-encoded: raw bytes in a JSON string would
	// mangle any non-UTF-8 payload.
	response := dto.DecryptResponse{
		Status:        "decrypted",
		SizeDecrypted: len(plaintext),
		Plaintext:     base64.StdEncoding.EncodeToString(plaintext),
		Timestamp:     time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

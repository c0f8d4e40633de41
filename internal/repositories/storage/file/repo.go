package filerepo

import (
	"docvault/internal/models"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const pkg = "fileRepo/"

const (
	blobExt = ".qse"
	metaExt = ".json"
)

type fileMeta struct {
	DocumentID string          `json:"document_id"`
	UserID     string          `json:"user_id,omitempty"`
	Filename   string          `json:"filename"`
	Size       int64           `json:"size_original"`
	Hash       string          `json:"hash,omitempty"`
	Algorithm  string          `json:"algorithm"`
	Nonce      string          `json:"nonce"`
	KeyBackup  string          `json:"key_backup"`
	Compliance map[string]bool `json:"compliance_status,omitempty"`
	Timestamp  string          `json:"timestamp"`
}

type repository struct {
	basePath string
}

func NewRepository(basePath string) *repository {
	return &repository{basePath: basePath}
}

func (r *repository) SaveDocument(doc *models.Document) error {
	op := pkg + "SaveDocument"

	if err := os.MkdirAll(r.basePath, 0o750); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.WriteFile(r.blobPath(doc.ID), doc.Ciphertext, 0o640); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	meta := fileMeta{
		DocumentID: doc.ID,
		UserID:     doc.UserID,
		Filename:   doc.Filename,
		Size:       doc.Size,
		Hash:       doc.Hash,
		Algorithm:  doc.Algorithm,
		Nonce:      doc.Nonce,
		KeyBackup:  doc.KeyBackup,
		Compliance: doc.Compliance,
		Timestamp:  doc.CreatedAt.UTC().Format(time.RFC3339Nano),
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.WriteFile(r.metaPath(doc.ID), metaJSON, 0o640); err != nil {
		_ = os.Remove(r.blobPath(doc.ID))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) LoadDocument(id string) (*models.Document, error) {
	op := pkg + "LoadDocument"

	metaJSON, err := os.ReadFile(r.metaPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var meta fileMeta

	if err := json.Unmarshal(metaJSON, &meta); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ciphertext, err := os.ReadFile(r.blobPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	doc := &models.Document{
		ID:         meta.DocumentID,
		UserID:     meta.UserID,
		Filename:   meta.Filename,
		Size:       meta.Size,
		Hash:       meta.Hash,
		Algorithm:  meta.Algorithm,
		Nonce:      meta.Nonce,
		KeyBackup:  meta.KeyBackup,
		Ciphertext: ciphertext,
		Compliance: meta.Compliance,
	}

	if ts, err := time.Parse(time.RFC3339Nano, meta.Timestamp); err == nil {
		doc.CreatedAt = ts
	}

	return doc, nil
}

func (r *repository) Exists(id string) bool {
	_, err := os.Stat(r.metaPath(id))
	return err == nil
}

// Count reports how many documents live in the fallback store. Used by
// the compliance summary while the database is down.
func (r *repository) Count() (int, error) {
	op := pkg + "Count"

	matches, err := filepath.Glob(filepath.Join(r.basePath, "*"+metaExt))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return len(matches), nil
}

func (r *repository) blobPath(id string) string {
	return filepath.Join(r.basePath, id+blobExt)
}

func (r *repository) metaPath(id string) string {
	return filepath.Join(r.basePath, id+metaExt)
}

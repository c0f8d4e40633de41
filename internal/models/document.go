package models

import "time"

const AlgorithmAESGCM = "AES256-GCM"

type Document struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id,omitempty"`
	Filename   string          `json:"filename"`
	Size       int64           `json:"size"`
	Hash       string          `json:"hash"`
	Algorithm  string          `json:"algorithm"`
	Nonce      string          `json:"nonce"`
	KeyBackup  string          `json:"key_backup"`
	Ciphertext []byte          `json:"-"`
	Compliance map[string]bool `json:"compliance,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// StoredDocument reports where an ingested document actually landed.
type StoredDocument struct {
	Document
	DatabaseStored bool `json:"database_stored"`
}

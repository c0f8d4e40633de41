package dto

import "time"

type EncryptResponse struct {
	Status         string          `json:"status"`
	DocumentID     string          `json:"document_id"`
	DownloadURL    string          `json:"download_url"`
	Filename       string          `json:"filename"`
	SizeOriginal   int64           `json:"size_original"`
	Timestamp      time.Time       `json:"timestamp"`
	Compliance     map[string]bool `json:"compliance_status"`
	DatabaseStored bool            `json:"database_stored"`
}

type DocumentInfoResponse struct {
	DocumentID   string          `json:"document_id"`
	Filename     string          `json:"filename"`
	SizeOriginal int64           `json:"size_original"`
	Nonce        string          `json:"nonce"`
	KeyBackup    string          `json:"key_backup"`
	Timestamp    time.Time       `json:"timestamp"`
	Compliance   map[string]bool `json:"compliance_status"`
}

type DecryptRequest struct {
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
	Key        string `json:"key"`
}

type DecryptResponse struct {
	Status        string    `json:"status"`
	SizeDecrypted int       `json:"size_decrypted"`
	Plaintext     string    `json:"plaintext"` // base64
	Timestamp     time.Time `json:"timestamp"`
}

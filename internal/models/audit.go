package models

import "time"

const (
	AuditActionEncrypt  = "encrypt"
	AuditActionDownload = "download"
	AuditActionInfo     = "info"
	AuditActionDecrypt  = "decrypt"

	AuditStatusSuccess = "success"
	AuditStatusFailure = "failure"
)

// AuditEntry is a single append-only row in the audit trail. Entries are
// immutable once written.
type AuditEntry struct {
	ID         int64     `json:"id"`
	DocumentID string    `json:"document_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	IPAddress  string    `json:"ip_address,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
	Status     string    `json:"status"`
	Filename   string    `json:"filename,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

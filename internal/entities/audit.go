package entities

import (
	"database/sql"
	"time"
)

type AuditEntry struct {
	ID         int64          `db:"id"`
	DocumentID sql.NullString `db:"document_id"`
	UserID     sql.NullString `db:"user_id"`
	Action     string         `db:"action"`
	Details    string         `db:"details"`
	IPAddress  sql.NullString `db:"ip_address"`
	UserAgent  sql.NullString `db:"user_agent"`
	Status     string         `db:"status"`
	Filename   sql.NullString `db:"filename"`
	CreatedAt  time.Time      `db:"created_at"`
}

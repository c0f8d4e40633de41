package entities

import (
	"database/sql"
	"time"
)

type Document struct {
	ID         string         `db:"id"`
	UserID     sql.NullString `db:"user_id"`
	Filename   string         `db:"filename"`
	Size       int64          `db:"file_size"`
	Hash       string         `db:"file_hash"`
	Algorithm  string         `db:"algorithm"`
	Nonce      string         `db:"nonce"`
	KeyBackup  string         `db:"key_backup"`
	Ciphertext []byte         `db:"ciphertext"`
	CreatedAt  time.Time      `db:"created_at"`
}

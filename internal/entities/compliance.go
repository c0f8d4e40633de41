package entities

import "time"

type ComplianceRecord struct {
	ID          int64     `db:"id"`
	DocumentID  string    `db:"document_id"`
	Framework   string    `db:"framework"`
	IsCompliant bool      `db:"is_compliant"`
	Score       int       `db:"score"`
	Findings    string    `db:"findings"`
	AssessedAt  time.Time `db:"assessed_at"`
}

package compliancerepo

import (
	"context"
	"database/sql"
	"docvault/internal/entities"
	"docvault/internal/models"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const pkg = "complianceRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateRecords(ctx context.Context, records []*models.ComplianceRecord) error {
	op := pkg + "CreateRecords"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	for _, rec := range records {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO compliance_records (document_id, framework, is_compliant, score, findings, assessed_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			rec.DocumentID, rec.Framework, rec.IsCompliant, rec.Score, rec.Findings, rec.AssessedAt)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) RecordsByDocument(ctx context.Context, docID string) ([]*models.ComplianceRecord, error) {
	op := pkg + "RecordsByDocument"

	rawRecords := make([]entities.ComplianceRecord, 0)

	err := r.db.SelectContext(ctx, &rawRecords,
		`SELECT
			c.id AS id,
			c.document_id AS document_id,
			c.framework AS framework,
			c.is_compliant AS is_compliant,
			c.score AS score,
			c.findings AS findings,
			c.assessed_at AS assessed_at
		FROM compliance_records c
		WHERE c.document_id = $1`,
		docID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records := make([]*models.ComplianceRecord, 0, len(rawRecords))

	for _, raw := range rawRecords {
		records = append(records, &models.ComplianceRecord{
			ID:          raw.ID,
			DocumentID:  raw.DocumentID,
			Framework:   raw.Framework,
			IsCompliant: raw.IsCompliant,
			Score:       raw.Score,
			Findings:    raw.Findings,
			AssessedAt:  raw.AssessedAt,
		})
	}

	return records, nil
}

// CountFullyCompliant counts documents holding a compliant record for at
// least every known framework.
func (r *repository) CountFullyCompliant(ctx context.Context) (int, error) {
	op := pkg + "CountFullyCompliant"

	var count int

	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM (
			SELECT c.document_id
			FROM compliance_records c
			WHERE c.is_compliant = true
			GROUP BY c.document_id
			HAVING COUNT(c.id) >= $1
		) fully_compliant`,
		len(models.Frameworks))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

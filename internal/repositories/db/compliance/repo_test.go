package compliancerepo

import (
	"context"
	"docvault/internal/models"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, *repository) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	repo := NewRepository(sqlxDB)
	return sqlxDB, mock, repo
}

func sampleRecords(docID string) []*models.ComplianceRecord {
	now := time.Now()
	return []*models.ComplianceRecord{
		{DocumentID: docID, Framework: "GDPR-32", IsCompliant: true, Score: 100, Findings: "ok", AssessedAt: now},
		{DocumentID: docID, Framework: "SOC2", IsCompliant: true, Score: 100, Findings: "ok", AssessedAt: now},
	}
}

func TestCreateRecords_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	records := sampleRecords("doc123")

	mock.ExpectBegin()
	for _, rec := range records {
		mock.ExpectExec("INSERT INTO compliance_records").
			WithArgs(rec.DocumentID, rec.Framework, rec.IsCompliant, rec.Score, rec.Findings, rec.AssessedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	err := repo.CreateRecords(context.Background(), records)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRecords_InsertErrorRollsBack(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	records := sampleRecords("doc123")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO compliance_records").
		WillReturnError(errors.New("db failure"))
	mock.ExpectRollback()

	err := repo.CreateRecords(context.Background(), records)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CreateRecords")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordsByDocument_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery("SELECT.+FROM compliance_records").
		WithArgs("doc123").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "document_id", "framework", "is_compliant", "score", "findings", "assessed_at",
		}).
			AddRow(int64(1), "doc123", "GDPR-32", true, 100, "ok", now).
			AddRow(int64(2), "doc123", "SOC2", false, 0, "not compliant", now))

	records, err := repo.RecordsByDocument(context.Background(), "doc123")
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "GDPR-32", records[0].Framework)
	assert.True(t, records[0].IsCompliant)
	assert.False(t, records[1].IsCompliant)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountFullyCompliant(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT.+FROM").
		WithArgs(len(models.Frameworks)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountFullyCompliant(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

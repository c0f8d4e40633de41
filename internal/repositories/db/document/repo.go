package documentrepo

import (
	"context"
	"database/sql"
	"docvault/internal/entities"
	"docvault/internal/models"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const pkg = "documentRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateDocument(ctx context.Context, doc *models.Document) error {
	op := pkg + "CreateDocument"

	var userID any

	if doc.UserID != "" {
		userID = doc.UserID
	} else {
		userID = nil
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (id, user_id, filename, file_size, file_hash, algorithm, nonce, key_backup, ciphertext, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		doc.ID, userID, doc.Filename, doc.Size, doc.Hash, doc.Algorithm, doc.Nonce, doc.KeyBackup, doc.Ciphertext, doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) DocumentByID(ctx context.Context, id string) (*models.Document, error) {
	op := pkg + "DocumentByID"

	rawDoc := entities.Document{}

	err := r.db.GetContext(ctx, &rawDoc,
		`SELECT
			d.id AS id,
			d.user_id AS user_id,
			d.filename AS filename,
			d.file_size AS file_size,
			d.file_hash AS file_hash,
			d.algorithm AS algorithm,
			d.nonce AS nonce,
			d.key_backup AS key_backup,
			d.ciphertext AS ciphertext,
			d.created_at AS created_at
			FROM documents d
			WHERE d.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Document{
		ID:         rawDoc.ID,
		UserID:     rawDoc.UserID.String,
		Filename:   rawDoc.Filename,
		Size:       rawDoc.Size,
		Hash:       rawDoc.Hash,
		Algorithm:  rawDoc.Algorithm,
		Nonce:      rawDoc.Nonce,
		KeyBackup:  rawDoc.KeyBackup,
		Ciphertext: rawDoc.Ciphertext,
		CreatedAt:  rawDoc.CreatedAt,
	}, nil
}

func (r *repository) CountDocuments(ctx context.Context) (int, error) {
	op := pkg + "CountDocuments"

	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM documents`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

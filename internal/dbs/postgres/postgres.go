package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const pkg = "postgres/"

type Config struct {
	URL      string
	Addr     string
	Port     string
	User     string
	Password string
	DB       string
}

func New(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	op := pkg + "New"

	dsn := cfg.URL
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Addr, cfg.Port, cfg.User, cfg.Password, cfg.DB)
	}

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: ping failed: %w", op, err)
	}

	if err := InitSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return db, nil
}

// InitSchema bootstraps the four tables on startup. Statements are
// idempotent so restarts against an existing database are safe.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	op := pkg + "InitSchema"

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(36) PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			pass_hash BYTEA NOT NULL,
			full_name VARCHAR(255) NOT NULL DEFAULT '',
			firm_name VARCHAR(255) NOT NULL DEFAULT '',
			role VARCHAR(100) NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS documents (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36),
			filename VARCHAR(255) NOT NULL,
			file_size BIGINT NOT NULL,
			file_hash VARCHAR(64) NOT NULL DEFAULT '',
			algorithm VARCHAR(50) NOT NULL,
			nonce TEXT NOT NULL,
			key_backup TEXT NOT NULL,
			ciphertext BYTEA NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS compliance_records (
			id SERIAL PRIMARY KEY,
			document_id VARCHAR(36) NOT NULL REFERENCES documents(id),
			framework VARCHAR(100) NOT NULL,
			is_compliant BOOLEAN NOT NULL,
			score INTEGER NOT NULL,
			findings TEXT NOT NULL DEFAULT '',
			assessed_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS audit_trail (
			id SERIAL PRIMARY KEY,
			document_id VARCHAR(36),
			user_id VARCHAR(36),
			action VARCHAR(50) NOT NULL,
			details TEXT NOT NULL DEFAULT '',
			ip_address VARCHAR(45),
			user_agent TEXT,
			status VARCHAR(50) NOT NULL DEFAULT 'success',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

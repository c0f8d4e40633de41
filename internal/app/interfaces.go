package app

import (
	"context"
	"docvault/internal/models"
	healthservice "docvault/internal/services/health"
	"io"
)

type AuthService interface {
	Register(ctx context.Context, email, password, fullName, firmName string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	UserByToken(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

type DocumentService interface {
	EncryptAndStore(ctx context.Context, requester *models.User, filename string, content io.Reader, ip, userAgent string) (*models.StoredDocument, error)
	DocumentByID(ctx context.Context, docID, ip, userAgent string) (*models.Document, error)
	DocumentInfo(ctx context.Context, docID, ip, userAgent string) (*models.Document, error)
	Decrypt(ctx context.Context, nonceB64, ciphertextB64, keyB64, ip, userAgent string) ([]byte, error)
}

type AuditService interface {
	Record(ctx context.Context, entry *models.AuditEntry)
	Recent(ctx context.Context, limit int) ([]*models.AuditEntry, error)
}

type ComplianceService interface {
	Status() map[string]bool
	Summary(ctx context.Context) (*models.ComplianceSummary, error)
}

type HealthService interface {
	Check(ctx context.Context) healthservice.Status
}

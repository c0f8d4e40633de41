package docs

import (
	"context"
	"docvault/internal/models"
	"io"
)

const pkg = "docsHandler/"

type DocumentEncryptor interface {
	EncryptAndStore(ctx context.Context, requester *models.User, filename string, content io.Reader, ip, userAgent string) (*models.StoredDocument, error)
}

type DocumentProvider interface {
	DocumentByID(ctx context.Context, docID, ip, userAgent string) (*models.Document, error)
	DocumentInfo(ctx context.Context, docID, ip, userAgent string) (*models.Document, error)
}

type Decryptor interface {
	Decrypt(ctx context.Context, nonceB64, ciphertextB64, keyB64, ip, userAgent string) ([]byte, error)
}

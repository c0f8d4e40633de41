package documentservice

import (
	"context"
	"crypto/sha256"
	"docvault/internal/crypto/aesgcm"
	"docvault/internal/models"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "documentService/"

type DocumentService struct {
	log         *slog.Logger
	docRepo     DocumentRepository
	compWriter  ComplianceWriter
	compliance  ComplianceAssessor
	audit       AuditRecorder
	cache       Cache
	fileStorage FileStorage
}

// New builds the document service. docRepo and compWriter may be nil
// while the database is down; writes then land in fileStorage.
func New(
	log *slog.Logger,
	docRepo DocumentRepository,
	compWriter ComplianceWriter,
	compliance ComplianceAssessor,
	audit AuditRecorder,
	cache Cache,
	fileStorage FileStorage,
) *DocumentService {
	return &DocumentService{
		log:         log,
		docRepo:     docRepo,
		compWriter:  compWriter,
		compliance:  compliance,
		audit:       audit,
		cache:       cache,
		fileStorage: fileStorage,
	}
}

// EncryptAndStore seals the uploaded content with a fresh AES-256-GCM key
// and persists ciphertext plus metadata: database first, file storage when
// the database is unreachable.
func (ds *DocumentService) EncryptAndStore(ctx context.Context, requester *models.User, filename string, content io.Reader, ip, userAgent string) (*models.StoredDocument, error) {
	op := pkg + "EncryptAndStore"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to encrypt document", slog.String("filename", filename))

	plaintext, err := io.ReadAll(content)
	if err != nil {
		log.Error("failed to read upload", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if len(plaintext) == 0 {
		log.Warn("empty document uploaded", slog.String("filename", filename))
		return nil, models.ErrEmptyDocument
	}

	key, err := aesgcm.NewKey()
	if err != nil {
		log.Error("failed to generate key", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	nonce, ciphertext, err := aesgcm.Encrypt(plaintext, key)
	if err != nil {
		log.Error("failed to encrypt document", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	hash := sha256.Sum256(plaintext)

	doc := &models.Document{
		ID:         uuid.NewV4().String(),
		Filename:   filename,
		Size:       int64(len(plaintext)),
		Hash:       hex.EncodeToString(hash[:]),
		Algorithm:  models.AlgorithmAESGCM,
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		KeyBackup:  base64.StdEncoding.EncodeToString(key),
		Ciphertext: ciphertext,
		Compliance: ds.compliance.Status(),
		CreatedAt:  time.Now(),
	}

	if requester != nil {
		doc.UserID = requester.ID
	}

	dbStored := ds.storeInDatabase(ctx, doc)

	if !dbStored {
		if err := ds.fileStorage.SaveDocument(doc); err != nil {
			log.Error("failed to save document to file storage", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}
	}

	ds.cacheMeta(ctx, doc)

	ds.audit.Record(ctx, &models.AuditEntry{
		DocumentID: doc.ID,
		UserID:     doc.UserID,
		Action:     models.AuditActionEncrypt,
		Details:    fmt.Sprintf("Document %s encrypted", doc.Filename),
		IPAddress:  ip,
		UserAgent:  userAgent,
	})

	log.Debug("document encrypted and stored",
		slog.String("doc_id", doc.ID),
		slog.Bool("database_stored", dbStored),
		slog.Int64("size", doc.Size))

	return &models.StoredDocument{Document: *doc, DatabaseStored: dbStored}, nil
}

// DocumentByID returns metadata and ciphertext for download, checking the
// database first and the file store second.
func (ds *DocumentService) DocumentByID(ctx context.Context, docID, ip, userAgent string) (*models.Document, error) {
	op := pkg + "DocumentByID"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to get document by id", slog.String("doc_id", docID))

	doc, err := ds.loadDocument(ctx, docID)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.String("doc_id", docID))
			return nil, models.ErrDocumentNotFound
		}
		log.Error("failed to load document", slog.String("doc_id", docID), slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	ds.audit.Record(ctx, &models.AuditEntry{
		DocumentID: doc.ID,
		Action:     models.AuditActionDownload,
		Details:    fmt.Sprintf("Document %s downloaded", doc.Filename),
		IPAddress:  ip,
		UserAgent:  userAgent,
	})

	log.Debug("document found", slog.String("doc_id", docID))

	return doc, nil
}

// DocumentInfo returns the metadata needed for client-side decryption,
// served from the cache when possible.
func (ds *DocumentService) DocumentInfo(ctx context.Context, docID, ip, userAgent string) (*models.Document, error) {
	op := pkg + "DocumentInfo"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to get document info", slog.String("doc_id", docID))

	doc, err := ds.documentMetaByID(ctx, docID)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.String("doc_id", docID))
			return nil, models.ErrDocumentNotFound
		}
		log.Error("failed to load document meta", slog.String("doc_id", docID), slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	ds.audit.Record(ctx, &models.AuditEntry{
		DocumentID: doc.ID,
		Action:     models.AuditActionInfo,
		Details:    fmt.Sprintf("Metadata for %s read", doc.Filename),
		IPAddress:  ip,
		UserAgent:  userAgent,
	})

	return doc, nil
}

// Decrypt opens a nonce/ciphertext/key triple supplied by the client. The
// GCM tag is verified; any mismatch fails closed.
func (ds *DocumentService) Decrypt(ctx context.Context, nonceB64, ciphertextB64, keyB64, ip, userAgent string) ([]byte, error) {
	op := pkg + "Decrypt"

	log := ds.log.With(slog.String("op", op))

	nonce, err := base64.StdEncoding.DecodeString(nonceB64)
	if err != nil {
		return nil, models.ErrInvalidParams
	}

	ciphertext, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return nil, models.ErrInvalidParams
	}

	key, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		return nil, models.ErrInvalidParams
	}

	plaintext, err := aesgcm.Decrypt(nonce, ciphertext, key)
	if err != nil {
		log.Warn("decryption failed", slog.String("error", err.Error()))

		ds.audit.Record(ctx, &models.AuditEntry{
			Action:    models.AuditActionDecrypt,
			Details:   "decryption rejected: authentication failed",
			IPAddress: ip,
			UserAgent: userAgent,
			Status:    models.AuditStatusFailure,
		})

		return nil, models.ErrDecryptionFailed
	}

	ds.audit.Record(ctx, &models.AuditEntry{
		Action:    models.AuditActionDecrypt,
		Details:   fmt.Sprintf("payload of %d bytes decrypted", len(plaintext)),
		IPAddress: ip,
		UserAgent: userAgent,
	})

	log.Debug("payload decrypted", slog.Int("size", len(plaintext)))

	return plaintext, nil
}

// storeInDatabase attempts the primary write path. Any failure downgrades
// to the file fallback instead of failing the request.
func (ds *DocumentService) storeInDatabase(ctx context.Context, doc *models.Document) bool {
	op := pkg + "storeInDatabase"

	log := ds.log.With(slog.String("op", op))

	if ds.docRepo == nil {
		return false
	}

	if err := ds.docRepo.CreateDocument(ctx, doc); err != nil {
		log.Warn("database insert failed, falling back to file storage", slog.String("error", err.Error()))
		return false
	}

	if ds.compWriter != nil {
		if err := ds.compWriter.CreateRecords(ctx, ds.compliance.Assess(doc.ID)); err != nil {
			log.Error("failed to save compliance records", slog.String("doc_id", doc.ID), slog.String("error", err.Error()))
		}
	}

	return true
}

func (ds *DocumentService) loadDocument(ctx context.Context, docID string) (*models.Document, error) {
	if ds.docRepo != nil {
		doc, err := ds.docRepo.DocumentByID(ctx, docID)
		if err == nil {
			return doc, nil
		}
		if !errors.Is(err, models.ErrDocumentNotFound) {
			return nil, err
		}
	}

	return ds.fileStorage.LoadDocument(docID)
}

func (ds *DocumentService) documentMetaByID(ctx context.Context, docID string) (*models.Document, error) {
	op := pkg + "documentMetaByID"

	log := ds.log.With(slog.String("op", op))

	cacheKey := docCacheKey(docID)

	docJSON, err := ds.cache.Get(ctx, cacheKey)
	if err == nil && docJSON != "" {
		var doc models.Document
		if err := json.Unmarshal([]byte(docJSON), &doc); err == nil {
			return &doc, nil
		}
		log.Warn("invalid document json in cache", slog.String("doc_id", docID))
	}

	doc, err := ds.loadDocument(ctx, docID)
	if err != nil {
		return nil, err
	}

	if doc.Compliance == nil && ds.docRepo != nil {
		status, err := ds.compliance.StatusFor(ctx, docID)
		if err == nil {
			doc.Compliance = status
		} else if !errors.Is(err, models.ErrDatabaseUnavailable) {
			log.Warn("failed to load compliance status", slog.String("doc_id", docID), slog.String("error", err.Error()))
		}
	}

	ds.cacheMeta(ctx, doc)

	return doc, nil
}

func (ds *DocumentService) cacheMeta(ctx context.Context, doc *models.Document) {
	op := pkg + "cacheMeta"

	log := ds.log.With(slog.String("op", op))

	docJSON, err := json.Marshal(doc)
	if err != nil {
		log.Error("failed to marshal document for cache", slog.String("error", err.Error()))
		return
	}

	if err := ds.cache.Set(ctx, docCacheKey(doc.ID), string(docJSON)); err != nil {
		log.Error("failed to cache document meta", slog.String("error", err.Error()))
	}
}

func docCacheKey(docID string) string {
	return fmt.Sprintf("doc:%s", docID)
}

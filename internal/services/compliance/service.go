package complianceservice

import (
	"context"
	"docvault/internal/models"
	"log/slog"
	"time"
)

const pkg = "complianceService/"

const (
	compliantFindings    = "AES-256-GCM encryption at rest enabled"
	nonCompliantFindings = "encryption self-test failed"
)

type ComplianceService struct {
	log      *slog.Logger
	cryptoOK bool
	docRepo  DocumentCounter
	compRepo ComplianceRepository
	fallback FallbackCounter
}

// New builds the compliance service. docRepo and compRepo may be nil
// while the database is down; the summary then counts the fallback store.
func New(
	log *slog.Logger,
	cryptoOK bool,
	docRepo DocumentCounter,
	compRepo ComplianceRepository,
	fallback FallbackCounter,
) *ComplianceService {
	return &ComplianceService{
		log:      log,
		cryptoOK: cryptoOK,
		docRepo:  docRepo,
		compRepo: compRepo,
		fallback: fallback,
	}
}

// Status reports each framework's compliance, keyed off the crypto
// self-test result.
func (cs *ComplianceService) Status() map[string]bool {
	status := make(map[string]bool, len(models.Frameworks))

	for _, framework := range models.Frameworks {
		status[framework] = cs.cryptoOK
	}

	return status
}

// Assess builds the per-framework records written alongside a newly
// ingested document.
func (cs *ComplianceService) Assess(docID string) []*models.ComplianceRecord {
	now := time.Now()

	records := make([]*models.ComplianceRecord, 0, len(models.Frameworks))

	for _, framework := range models.Frameworks {
		rec := &models.ComplianceRecord{
			DocumentID:  docID,
			Framework:   framework,
			IsCompliant: cs.cryptoOK,
			AssessedAt:  now,
		}

		if cs.cryptoOK {
			rec.Score = 100
			rec.Findings = compliantFindings
		} else {
			rec.Findings = nonCompliantFindings
		}

		records = append(records, rec)
	}

	return records
}

// StatusFor folds stored records back into the per-framework map served
// by the document info endpoint.
func (cs *ComplianceService) StatusFor(ctx context.Context, docID string) (map[string]bool, error) {
	op := pkg + "StatusFor"

	log := cs.log.With(slog.String("op", op))

	if cs.compRepo == nil {
		return nil, models.ErrDatabaseUnavailable
	}

	records, err := cs.compRepo.RecordsByDocument(ctx, docID)
	if err != nil {
		log.Error("failed to load compliance records", slog.String("doc_id", docID), slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	status := make(map[string]bool, len(records))

	for _, rec := range records {
		status[rec.Framework] = rec.IsCompliant
	}

	return status, nil
}

func (cs *ComplianceService) Summary(ctx context.Context) (*models.ComplianceSummary, error) {
	op := pkg + "Summary"

	log := cs.log.With(slog.String("op", op))

	summary := &models.ComplianceSummary{
		Frameworks: cs.Status(),
	}

	if cs.docRepo == nil || cs.compRepo == nil {
		total, err := cs.fallback.Count()
		if err != nil {
			log.Error("failed to count fallback documents", slog.String("error", err.Error()))
			return nil, models.ErrInternal
		}

		summary.TotalDocuments = total
		if cs.cryptoOK {
			summary.FullyCompliant = total
		}

		log.Debug("compliance summary built from fallback store", slog.Int("total", total))

		return summary, nil
	}

	total, err := cs.docRepo.CountDocuments(ctx)
	if err != nil {
		log.Error("failed to count documents", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	fully, err := cs.compRepo.CountFullyCompliant(ctx)
	if err != nil {
		log.Error("failed to count fully compliant documents", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	summary.TotalDocuments = total
	summary.FullyCompliant = fully

	log.Debug("compliance summary built", slog.Int("total", total), slog.Int("fully_compliant", fully))

	return summary, nil
}

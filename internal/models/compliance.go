package models

import "time"

// Frameworks lists the regulatory standards every stored document is
// assessed against. A document with a compliant record for each of them
// counts as fully compliant.
var Frameworks = []string{
	"GDPR-32",
	"GDPR-5",
	"ISO-27001",
	"ISO-27701",
	"ISO-27017",
	"NIST-800-57",
	"NIST-CSF",
	"NCSC-PQC",
	"SOC2",
}

type ComplianceRecord struct {
	ID          int64     `json:"id"`
	DocumentID  string    `json:"document_id"`
	Framework   string    `json:"framework"`
	IsCompliant bool      `json:"is_compliant"`
	Score       int       `json:"score"`
	Findings    string    `json:"findings"`
	AssessedAt  time.Time `json:"assessed_at"`
}

type ComplianceSummary struct {
	TotalDocuments int             `json:"total_documents"`
	FullyCompliant int             `json:"fully_compliant"`
	Frameworks     map[string]bool `json:"frameworks"`
}

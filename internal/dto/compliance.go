package dto

type ComplianceSummaryResponse struct {
	CryptoAvailable   bool            `json:"cryptography_available"`
	DatabaseAvailable bool            `json:"database_available"`
	TotalDocuments    int             `json:"total_documents"`
	FullyCompliant    int             `json:"fully_compliant"`
	Frameworks        map[string]bool `json:"frameworks"`
}

package dto

import "time"

type AuditEntryResponse struct {
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Filename  string    `json:"filename,omitempty"`
}

type AuditTrailResponse struct {
	Entries []AuditEntryResponse `json:"entries"`
	Message string               `json:"message,omitempty"`
}

package dto

import "time"

type CryptoDetails struct {
	Algorithm string `json:"algorithm"`
	Status    string `json:"status"`
}

type HealthResponse struct {
	Status            string        `json:"status"`
	CryptoAvailable   bool          `json:"cryptography_available"`
	DatabaseAvailable bool          `json:"database_available"`
	CacheAvailable    bool          `json:"cache_available"`
	CryptoDetails     CryptoDetails `json:"crypto_details"`
	Timestamp         time.Time     `json:"timestamp"`
}

type StatusResponse struct {
	Service           string            `json:"service"`
	Version           string            `json:"version"`
	CryptoAvailable   bool              `json:"cryptography_available"`
	DatabaseAvailable bool              `json:"database_available"`
	Algorithms        map[string]string `json:"algorithms"`
	Compliance        []string          `json:"compliance"`
}

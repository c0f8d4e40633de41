package models

import "time"

type contextKey string

const UserContextKey contextKey = "user"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	PassHash  []byte    `json:"pass_hash"`
	FullName  string    `json:"full_name,omitempty"`
	FirmName  string    `json:"firm_name,omitempty"`
	Role      string    `json:"role,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

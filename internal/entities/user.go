package entities

import "time"

type User struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	PassHash  []byte    `db:"pass_hash"`
	FullName  string    `db:"full_name"`
	FirmName  string    `db:"firm_name"`
	Role      string    `db:"role"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

// File: internal/model/user.go
package model

import "time"

// User is an account record. PasswordHash is the stored bcrypt verifier
// and must never be serialized in a response.
type User struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

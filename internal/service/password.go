// File: internal/service/password.go
package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

var (
	// ErrPasswordMismatch means the hash is well-formed but the password is wrong.
	ErrPasswordMismatch = errors.New("password mismatch")
	// ErrHashMalformed means the stored verifier could not be decoded at all.
	ErrHashMalformed = errors.New("malformed password hash")
)

// HashPassword derives a bcrypt verifier from a plaintext password. Each
// call salts freshly, so hashing the same password twice yields different
// verifiers.
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword checks a plaintext password against a stored verifier.
// bcrypt's comparison is constant-time with respect to the password.
func ComparePassword(hash, password string) error {
	err := bcryptCompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("%w: %v", ErrHashMalformed, err)
	}
}

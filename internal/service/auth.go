// File: internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todo-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// Token verification failures. Handlers must collapse all of these into a
// single 401 so a caller cannot tell which check failed.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("invalid token signature")
	ErrTokenMalformed = errors.New("malformed token")
)

// ErrInvalidCredentials is the single error for a failed login, whether the
// account is absent or the password wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Auth issues and verifies HS256 bearer tokens. The signing secret is set
// once at construction and never exposed afterwards.
type Auth struct {
	secret []byte
	ttl    time.Duration
}

// NewAuth builds an issuer/verifier around a signing secret and token TTL.
func NewAuth(secret string, ttl time.Duration) *Auth {
	return &Auth{secret: []byte(secret), ttl: ttl}
}

// TTL reports the lifetime applied to issued tokens.
func (a *Auth) TTL() time.Duration {
	return a.ttl
}

// Issue signs a token asserting the subject (user email) until now+ttl.
// The signature covers both subject and expiry.
func (a *Auth) Issue(subject string) (string, error) {
	now := timeNow()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Verify decodes and validates a token, returning its subject. Failures
// map onto exactly one of ErrTokenExpired, ErrTokenSignature or
// ErrTokenMalformed.
func (a *Auth) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := parseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenSignature
		default:
			return "", ErrTokenMalformed
		}
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}

// AuthenticateUser checks a plaintext password against a stored user
// record. Every failure collapses into ErrInvalidCredentials.
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

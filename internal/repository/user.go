// File: internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"todo-api/internal/database"
	"todo-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound covers both a missing row and a row owned by someone else.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail maps the users.email unique constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)

const uniqueViolation = "23505"

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password_hash, is_active, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.IsActive,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, is_active)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Email,
		u.PasswordHash,
		u.IsActive,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// File: internal/model/todo.go
package model

import "time"

// Todo is a task record owned by a single user. Description and UpdatedAt
// are nullable columns.
type Todo struct {
	ID          int        `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	Completed   bool       `db:"completed" json:"completed"`
	UserID      int        `db:"user_id" json:"user_id"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at"`
}

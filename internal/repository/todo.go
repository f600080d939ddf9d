// File: internal/repository/todo.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"todo-api/internal/database"
	"todo-api/internal/model"

	"github.com/jackc/pgx/v5"
)

// Every query below filters on user_id, so a todo belonging to another
// user is indistinguishable from one that does not exist.

func ListTodosByUser(ctx context.Context, db database.DB, userID int) ([]model.Todo, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, completed, user_id, created_at, updated_at
		 FROM todos WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTodosByUser: %w", err)
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Completed,
			&t.UserID,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListTodosByUser: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTodosByUser: %w", err)
	}
	return todos, nil
}

func CreateTodo(ctx context.Context, db database.DB, t *model.Todo) (*model.Todo, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO todos (title, description, completed, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		t.Title,
		t.Description,
		t.Completed,
		t.UserID,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateTodo: %w", err)
	}
	return t, nil
}

func GetTodoByID(ctx context.Context, db database.DB, userID, todoID int) (*model.Todo, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, completed, user_id, created_at, updated_at
		 FROM todos WHERE id = $1 AND user_id = $2`,
		todoID,
		userID,
	)
	return scanTodo(row, "GetTodoByID")
}

// UpdateTodo applies a partial update: nil fields keep their stored value.
// updated_at is always refreshed, even for an empty update.
func UpdateTodo(ctx context.Context, db database.DB, userID, todoID int, title, description *string, completed *bool) (*model.Todo, error) {
	row := db.QueryRow(ctx,
		`UPDATE todos
		 SET title       = COALESCE($1, title),
		     description = COALESCE($2, description),
		     completed   = COALESCE($3, completed),
		     updated_at  = now()
		 WHERE id = $4 AND user_id = $5
		 RETURNING id, title, description, completed, user_id, created_at, updated_at`,
		title,
		description,
		completed,
		todoID,
		userID,
	)
	return scanTodo(row, "UpdateTodo")
}

func DeleteTodo(ctx context.Context, db database.DB, userID, todoID int) (*model.Todo, error) {
	row := db.QueryRow(ctx,
		`DELETE FROM todos WHERE id = $1 AND user_id = $2
		 RETURNING id, title, description, completed, user_id, created_at, updated_at`,
		todoID,
		userID,
	)
	return scanTodo(row, "DeleteTodo")
}

func scanTodo(row pgx.Row, op string) (*model.Todo, error) {
	t := &model.Todo{}
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Completed,
		&t.UserID,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

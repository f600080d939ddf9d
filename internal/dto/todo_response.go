// File: internal/dto/todo_response.go
package dto

import (
	"time"

	"todo-api/internal/model"
)

// swagger:model dto.TodoResponse
type TodoResponse struct {
	ID          int        `json:"id" example:"1"`
	Title       string     `json:"title" example:"buy milk"`
	Description *string    `json:"description" example:"two bottles"`
	Completed   bool       `json:"completed" example:"false"`
	CreatedAt   time.Time  `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// NewTodoResponse projects a todo record onto its response view.
func NewTodoResponse(t *model.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTodoListResponse projects a slice of todo records.
func NewTodoListResponse(todos []model.Todo) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		out = append(out, NewTodoResponse(&todos[i]))
	}
	return out
}

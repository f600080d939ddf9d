// File: internal/dto/todo_request.go
package dto

// CreateTodoRequest is the JSON body for POST /todos.
// swagger:model dto.CreateTodoRequest
type CreateTodoRequest struct {
	Title       string  `json:"title" validate:"required" example:"buy milk"`
	Description *string `json:"description" example:"two bottles"`
	Completed   bool    `json:"completed" example:"false"`
}

// UpdateTodoRequest is the JSON body for PUT /todos/:id. Nil fields are
// left unchanged, so an empty body touches only updated_at.
// swagger:model dto.UpdateTodoRequest
type UpdateTodoRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1" example:"buy milk"`
	Description *string `json:"description" example:"two bottles"`
	Completed   *bool   `json:"completed" example:"true"`
}

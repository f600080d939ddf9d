// File: internal/dto/user_response.go
package dto

import (
	"time"

	"todo-api/internal/model"
)

// UserResponse is the public view of an account. It never carries the
// password verifier.
// swagger:model dto.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Email     string    `json:"email" example:"alice@example.com"`
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse projects a user record onto its public view.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

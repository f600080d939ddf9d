// File: internal/dto/register_request.go
package dto

// RegisterRequest is the JSON body for POST /register.
// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

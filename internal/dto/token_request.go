// File: internal/dto/token_request.go
package dto

// TokenRequest carries the OAuth2 password-grant form for POST /token.
// The username field holds the account email.
// swagger:model dto.TokenRequest
type TokenRequest struct {
	Username string `form:"username" validate:"required" example:"alice@example.com"`
	Password string `form:"password" validate:"required" example:"Secret123!"`
}

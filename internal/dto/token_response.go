// File: internal/dto/token_response.go
package dto

// swagger:model dto.TokenResponse
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOi..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

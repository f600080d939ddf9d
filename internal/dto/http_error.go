// File: internal/dto/http_error.go
package dto

// HTTPError is the uniform error response body.
// swagger:model dto.HTTPError
type HTTPError struct {
	Message string `json:"message"`
}

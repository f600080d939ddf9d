// File: internal/handler/root.go
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// WelcomeResponse is the root endpoint body.
// swagger:model WelcomeResponse
type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to the Todo API"`
}

// RootHandler is an unauthenticated liveness probe.
// @Summary     Welcome
// @Description Confirm the API is running
// @Tags        health
// @Produce     json
// @Success     200 {object} WelcomeResponse
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, WelcomeResponse{Message: "Welcome to the Todo API"})
	}
}

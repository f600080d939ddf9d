// File: internal/handler/users/get_me.go
package users

import (
	"net/http"

	"todo-api/internal/dto"
	"todo-api/internal/middleware"

	"github.com/labstack/echo/v4"
)

// GetMeHandler returns the authenticated user's public profile.
// @Summary     Get current user
// @Description Return the account resolved from the bearer token
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "could not validate credentials"})
		}
		return c.JSON(http.StatusOK, dto.NewUserResponse(user))
	}
}

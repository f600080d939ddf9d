// File: internal/handler/auth/token.go
package auth

import (
	"net/http"

	"todo-api/internal/database"
	"todo-api/internal/dto"
	"todo-api/internal/repository"
	"todo-api/internal/service"

	"github.com/labstack/echo/v4"
)

// TokenHandler is the OAuth2-style password-grant login.
// @Summary     Obtain an access token
// @Description Exchange email (as username) and password for a bearer token
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "account email"
// @Param       password formData string true "account password"
// @Success     200 {object} dto.TokenResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /token [post]
func TokenHandler(db database.DB, auth *service.Auth) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.TokenRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// A missing account and a wrong password produce the same answer.
		user, err := repository.GetUserByEmail(c.Request().Context(), db, req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "incorrect email or password"})
		}
		if err := service.AuthenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "incorrect email or password"})
		}

		token, err := auth.Issue(user.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

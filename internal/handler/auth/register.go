// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"

	"todo-api/internal/database"
	"todo-api/internal/dto"
	"todo-api/internal/model"
	"todo-api/internal/repository"
	"todo-api/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler creates a new account.
// @Summary     Register a new user
// @Description Create an account from email and password; the response never includes the password hash
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.RegisterRequest true "registration payload"
// @Success     200 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// Existence check first; the unique index still backstops races.
		if _, err := repository.GetUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "email already registered"})
		} else if !errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create user"})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		user := &model.User{
			Email:        req.Email,
			PasswordHash: hash,
			IsActive:     true,
		}
		created, err := repository.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create user"})
		}

		return c.JSON(http.StatusOK, dto.NewUserResponse(created))
	}
}

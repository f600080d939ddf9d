package middleware

import (
	"net/http"
	"strings"

	"todo-api/internal/database"
	"todo-api/internal/model"
	"todo-api/internal/repository"
	"todo-api/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextUserKey is where RequireAuth stashes the resolved *model.User.
const ContextUserKey = "user"

// Every auth failure answers with the same status and message so a caller
// cannot probe which check rejected it.
const unauthorizedMessage = "could not validate credentials"

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
	}
	return parts[1], nil
}

// RequireAuth resolves the request's bearer token to a user record: verify
// the token, load the user named in its subject, reject disabled accounts.
// Handlers downstream take the owner identity from the context and nowhere
// else.
func RequireAuth(db database.DB, auth *service.Auth) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}
			subject, err := auth.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}
			user, err := repository.GetUserByEmail(c.Request().Context(), db, subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user RequireAuth resolved for this request.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo-api/internal/database"
	"todo-api/internal/model"
	"todo-api/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeUserRow struct {
	scanErr error
	user    model.User
}

func (r fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	*dest[0].(*int) = r.user.ID
	*dest[1].(*string) = r.user.Email
	*dest[2].(*string) = r.user.PasswordHash
	*dest[3].(*bool) = r.user.IsActive
	*dest[4].(*time.Time) = r.user.CreatedAt
	return nil
}

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func userDB(u model.User, scanErr error) *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return fakeUserRow{user: u, scanErr: scanErr}
		},
	}
}

func TestRequireAuth(t *testing.T) {
	auth := service.NewAuth("testsecret", time.Minute)
	active := model.User{ID: 1, Email: "alice@example.com", IsActive: true}

	t.Run("success", func(t *testing.T) {
		tok, err := auth.Issue("alice@example.com")
		require.NoError(t, err)

		ctx, rec := newContext("Bearer " + tok)
		called := false
		h := RequireAuth(userDB(active, nil), auth)(func(c echo.Context) error {
			called = true
			user, ok := CurrentUser(c)
			require.True(t, ok)
			require.Equal(t, 1, user.ID)
			return c.String(http.StatusOK, "ok")
		})
		require.NoError(t, h(ctx))
		require.True(t, called)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		ctx, _ := newContext("")
		err := RequireAuth(userDB(active, nil), auth)(func(echo.Context) error { return nil })(ctx)
		require.Error(t, err)
	})

	t.Run("bad header format", func(t *testing.T) {
		ctx, _ := newContext("NotBearer")
		err := RequireAuth(userDB(active, nil), auth)(func(echo.Context) error { return nil })(ctx)
		require.Error(t, err)
	})

	t.Run("invalid token", func(t *testing.T) {
		ctx, _ := newContext("Bearer garbage")
		err := RequireAuth(userDB(active, nil), auth)(func(echo.Context) error { return nil })(ctx)
		require.Error(t, err)
	})

	t.Run("subject no longer maps to a user", func(t *testing.T) {
		tok, err := auth.Issue("gone@example.com")
		require.NoError(t, err)

		ctx, _ := newContext("Bearer " + tok)
		err = RequireAuth(userDB(model.User{}, pgx.ErrNoRows), auth)(func(echo.Context) error { return nil })(ctx)
		require.Error(t, err)
	})

	t.Run("inactive user", func(t *testing.T) {
		tok, err := auth.Issue("alice@example.com")
		require.NoError(t, err)

		disabled := active
		disabled.IsActive = false
		ctx, _ := newContext("Bearer " + tok)
		err = RequireAuth(userDB(disabled, nil), auth)(func(echo.Context) error { return nil })(ctx)
		require.Error(t, err)
	})

	// every rejection above must be the same bare 401
	t.Run("uniform unauthorized response", func(t *testing.T) {
		tok, err := auth.Issue("alice@example.com")
		require.NoError(t, err)

		disabled := active
		disabled.IsActive = false
		for name, db := range map[string]*database.FakeDB{
			"not found": userDB(model.User{}, pgx.ErrNoRows),
			"inactive":  userDB(disabled, nil),
		} {
			ctx, _ := newContext("Bearer " + tok)
			err := RequireAuth(db, auth)(func(echo.Context) error { return nil })(ctx)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok, name)
			require.Equal(t, http.StatusUnauthorized, httpErr.Code, name)
			require.Equal(t, unauthorizedMessage, httpErr.Message, name)
		}
	})
}

func TestCurrentUserAbsent(t *testing.T) {
	ctx, _ := newContext("")
	_, ok := CurrentUser(ctx)
	require.False(t, ok)
}

// File: internal/handler/todos/list_test.go
package todos

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"todo-api/internal/database"
	"todo-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestListTodosHandler(t *testing.T) {
	now := time.Now().UTC()

	t.Run("lists only the requester's todos", func(t *testing.T) {
		e := echo.New()
		ctx, rec := newCtx(e, http.MethodGet, "/todos", "", owner)

		var listArgs []any
		db := &database.FakeDB{QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
			listArgs = args
			return &fakeTodoRows{todos: []model.Todo{
				{ID: 1, Title: "buy milk", UserID: 7, CreatedAt: now},
			}}, nil
		}}
		require.NoError(t, ListTodosHandler(db, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []any{7}, listArgs)
		require.Contains(t, rec.Body.String(), "buy milk")
	})

	t.Run("empty list encodes as []", func(t *testing.T) {
		e := echo.New()
		ctx, rec := newCtx(e, http.MethodGet, "/todos", "", owner)
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeTodoRows{}, nil
		}}
		require.NoError(t, ListTodosHandler(db, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("query failure", func(t *testing.T) {
		e := echo.New()
		ctx, rec := newCtx(e, http.MethodGet, "/todos", "", owner)
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return nil, errors.New("boom")
		}}
		require.NoError(t, ListTodosHandler(db, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("unauthenticated context", func(t *testing.T) {
		e := echo.New()
		ctx, rec := newCtx(e, http.MethodGet, "/todos", "", nil)
		require.NoError(t, ListTodosHandler(&database.FakeDB{}, nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

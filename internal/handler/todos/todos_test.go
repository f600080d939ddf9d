// File: internal/handler/todos/todos_test.go
package todos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"todo-api/internal/cache"
	"todo-api/internal/database"
	"todo-api/internal/middleware"
	"todo-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

// newCtx builds an echo context carrying an authenticated user, as
// RequireAuth would leave it.
func newCtx(e *echo.Echo, method, target, body string, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if user != nil {
		ctx.Set(middleware.ContextUserKey, user)
	}
	return ctx, rec
}

type fakeTodoRow struct {
	scanErr error
	todo    model.Todo
}

func (r fakeTodoRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 7:
		*dest[0].(*int) = r.todo.ID
		*dest[1].(*string) = r.todo.Title
		*dest[2].(**string) = r.todo.Description
		*dest[3].(*bool) = r.todo.Completed
		*dest[4].(*int) = r.todo.UserID
		*dest[5].(*time.Time) = r.todo.CreatedAt
		*dest[6].(**time.Time) = r.todo.UpdatedAt
	case 2:
		*dest[0].(*int) = r.todo.ID
		*dest[1].(*time.Time) = r.todo.CreatedAt
	default:
		panic("unexpected dest count")
	}
	return nil
}

type fakeTodoRows struct {
	todos []model.Todo
	idx   int
}

func (r *fakeTodoRows) Close()                                       {}
func (r *fakeTodoRows) Err() error                                   { return nil }
func (r *fakeTodoRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeTodoRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeTodoRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeTodoRows) RawValues() [][]byte                          { return nil }
func (r *fakeTodoRows) Conn() *pgx.Conn                              { return nil }
func (r *fakeTodoRows) Next() bool                                   { return r.idx < len(r.todos) }

func (r *fakeTodoRows) Scan(dest ...any) error {
	t := r.todos[r.idx]
	r.idx++
	return fakeTodoRow{todo: t}.Scan(dest...)
}

var owner = &model.User{ID: 7, Email: "alice@example.com", IsActive: true}

func TestOwnedTodos(t *testing.T) {
	now := time.Now().UTC()
	stored := []model.Todo{{ID: 1, Title: "buy milk", UserID: 7, CreatedAt: now}}

	t.Run("cache miss falls through and fills the cache", func(t *testing.T) {
		queried := false
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			queried = true
			return &fakeTodoRows{todos: stored}, nil
		}}
		var setKey string
		rdb := &cache.FakeCache{
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
			SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
				setKey = key
				require.Equal(t, listCacheTTL, ttl)
				return redis.NewStatusResult("OK", nil)
			},
		}
		todos, err := OwnedTodos(context.Background(), db, rdb, 7)
		require.NoError(t, err)
		require.True(t, queried)
		require.Len(t, todos, 1)
		require.Equal(t, "todos:user:7", setKey)
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		data, err := json.Marshal(stored)
		require.NoError(t, err)
		rdb := &cache.FakeCache{
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				require.Equal(t, "todos:user:7", key)
				return redis.NewStringResult(string(data), nil)
			},
		}
		// no QueryFn: a database call would panic
		todos, err := OwnedTodos(context.Background(), &database.FakeDB{}, rdb, 7)
		require.NoError(t, err)
		require.Equal(t, "buy milk", todos[0].Title)
	})

	t.Run("corrupt cache entry falls through", func(t *testing.T) {
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeTodoRows{todos: stored}, nil
		}}
		rdb := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("{not json", nil)
			},
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("OK", nil)
			},
		}
		todos, err := OwnedTodos(context.Background(), db, rdb, 7)
		require.NoError(t, err)
		require.Len(t, todos, 1)
	})

	t.Run("nil cache goes straight to the database", func(t *testing.T) {
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeTodoRows{todos: stored}, nil
		}}
		todos, err := OwnedTodos(context.Background(), db, nil, 7)
		require.NoError(t, err)
		require.Len(t, todos, 1)
	})
}

func TestInvalidateOwned(t *testing.T) {
	t.Run("nil pool deletes synchronously", func(t *testing.T) {
		var deleted []string
		rdb := &cache.FakeCache{DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			deleted = append(deleted, keys...)
			return redis.NewIntResult(1, nil)
		}}
		invalidateOwned(nil, rdb, 7)
		require.Equal(t, []string{"todos:user:7"}, deleted)
	})

	t.Run("nil cache is a no-op", func(t *testing.T) {
		invalidateOwned(nil, nil, 7)
	})
}

func TestTodoIDParam(t *testing.T) {
	e := echo.New()
	for _, bad := range []string{"abc", "0", "-3", ""} {
		ctx, _ := newCtx(e, http.MethodGet, "/todos/"+bad, "", owner)
		ctx.SetParamNames("id")
		ctx.SetParamValues(bad)
		_, err := todoID(ctx)
		require.Error(t, err, bad)
	}

	ctx, _ := newCtx(e, http.MethodGet, "/todos/3", "", owner)
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")
	id, err := todoID(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, id)
}

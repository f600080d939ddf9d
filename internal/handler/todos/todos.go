// File: internal/handler/todos/todos.go
package todos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"todo-api/internal/cache"
	"todo-api/internal/database"
	"todo-api/internal/model"
	"todo-api/internal/repository"
	"todo-api/internal/worker"

	"github.com/labstack/echo/v4"
)

// listCacheTTL bounds staleness if an invalidation is ever lost.
const listCacheTTL = time.Minute

func listCacheKey(userID int) string {
	return fmt.Sprintf("todos:user:%d", userID)
}

// OwnedTodos returns the todos owned by userID, consulting the redis list
// cache first. The cache key is derived from the owner id, so a cached
// read can never leak another user's records. Cache failures fall through
// to the database silently.
func OwnedTodos(ctx context.Context, db database.DB, rdb cache.Cache, userID int) ([]model.Todo, error) {
	key := listCacheKey(userID)
	if rdb != nil {
		if data, err := rdb.Get(ctx, key).Bytes(); err == nil {
			var todos []model.Todo
			if json.Unmarshal(data, &todos) == nil {
				return todos, nil
			}
		}
	}

	todos, err := repository.ListTodosByUser(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	if rdb != nil {
		if data, err := json.Marshal(todos); err == nil {
			rdb.Set(ctx, key, data, listCacheTTL)
		}
	}
	return todos, nil
}

// invalidateOwned drops the owner's cached list after a mutation. The
// deletion runs on the worker pool so the response does not wait on redis.
func invalidateOwned(wp worker.Pool, rdb cache.Cache, userID int) {
	if rdb == nil {
		return
	}
	task := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		rdb.Del(ctx, listCacheKey(userID))
	}
	if wp != nil {
		wp.Submit(task)
		return
	}
	task()
}

func todoID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid todo id")
	}
	return id, nil
}

// File: internal/handler/todos/list.go
package todos

import (
	"net/http"

	"todo-api/internal/cache"
	"todo-api/internal/database"
	"todo-api/internal/dto"
	"todo-api/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ListTodosHandler lists the authenticated user's todos.
// @Summary     List my todos
// @Description Return every todo owned by the authenticated user
// @Tags        todos
// @Produce     json
// @Success     200 {array} dto.TodoResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /todos [get]
func ListTodosHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "could not validate credentials"})
		}

		todos, err := OwnedTodos(c.Request().Context(), db, rdb, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list todos"})
		}
		return c.JSON(http.StatusOK, dto.NewTodoListResponse(todos))
	}
}

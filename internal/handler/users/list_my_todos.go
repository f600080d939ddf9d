// File: internal/handler/users/list_my_todos.go
package users

import (
	"net/http"

	"todo-api/internal/cache"
	"todo-api/internal/database"
	"todo-api/internal/dto"
	"todo-api/internal/handler/todos"
	"todo-api/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ListMyTodosHandler lists the authenticated user's todos under /users/me.
// Same data as GET /todos, kept as a separate route for API compatibility.
// @Summary     List current user's todos
// @Tags        users
// @Produce     json
// @Success     200 {array} dto.TodoResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/me/todos [get]
func ListMyTodosHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "could not validate credentials"})
		}

		owned, err := todos.OwnedTodos(c.Request().Context(), db, rdb, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list todos"})
		}
		return c.JSON(http.StatusOK, dto.NewTodoListResponse(owned))
	}
}

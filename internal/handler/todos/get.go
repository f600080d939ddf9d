// File: internal/handler/todos/get.go
package todos

import (
	"errors"
	"net/http"

	"todo-api/internal/database"
	"todo-api/internal/dto"
	"todo-api/internal/middleware"
	"todo-api/internal/repository"

	"github.com/labstack/echo/v4"
)

// GetTodoHandler fetches one owned todo by id.
// @Summary     Get a todo
// @Description Return a single todo; a todo owned by someone else answers 404
// @Tags        todos
// @Produce     json
// @Param       id path int true "todo id"
// @Success     200 {object} dto.TodoResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /todos/{id} [get]
func GetTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "could not validate credentials"})
		}
		id, err := todoID(c)
		if err != nil {
			return err
		}

		todo, err := repository.GetTodoByID(c.Request().Context(), db, user.ID, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "todo not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to get todo"})
		}
		return c.JSON(http.StatusOK, dto.NewTodoResponse(todo))
	}
}

// File: internal/handler/todos/update.go
package todos

import (
	"errors"
	"net/http"

	"todo-api/internal/cache"
	"todo-api/internal/database"
	"todo-api/internal/dto"
	"todo-api/internal/middleware"
	"todo-api/internal/repository"
	"todo-api/internal/worker"

	"github.com/labstack/echo/v4"
)

// UpdateTodoHandler applies a partial update to an owned todo.
// @Summary     Update a todo
// @Description Update the provided fields; omitted fields keep their value, updated_at always refreshes
// @Tags        todos
// @Accept      json
// @Produce     json
// @Param       id   path int                   true "todo id"
// @Param       body body dto.UpdateTodoRequest true "fields to update"
// @Success     200 {object} dto.TodoResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /todos/{id} [put]
func UpdateTodoHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "could not validate credentials"})
		}
		id, err := todoID(c)
		if err != nil {
			return err
		}

		var req dto.UpdateTodoRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		updated, err := repository.UpdateTodo(c.Request().Context(), db, user.ID, id, req.Title, req.Description, req.Completed)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "todo not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to update todo"})
		}

		invalidateOwned(wp, rdb, user.ID)
		return c.JSON(http.StatusOK, dto.NewTodoResponse(updated))
	}
}

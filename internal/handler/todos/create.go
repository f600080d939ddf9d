// File: internal/handler/todos/create.go
package todos

import (
	"net/http"

	"todo-api/internal/cache"
	"todo-api/internal/database"
	"todo-api/internal/dto"
	"todo-api/internal/middleware"
	"todo-api/internal/model"
	"todo-api/internal/repository"
	"todo-api/internal/worker"

	"github.com/labstack/echo/v4"
)

// CreateTodoHandler creates a todo owned by the authenticated user.
// @Summary     Create a todo
// @Description Create a new todo; the owner is always the authenticated user
// @Tags        todos
// @Accept      json
// @Produce     json
// @Param       body body dto.CreateTodoRequest true "todo payload"
// @Success     201 {object} dto.TodoResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /todos [post]
func CreateTodoHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "could not validate credentials"})
		}

		var req dto.CreateTodoRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		todo := &model.Todo{
			Title:       req.Title,
			Description: req.Description,
			Completed:   req.Completed,
			UserID:      user.ID,
		}
		created, err := repository.CreateTodo(c.Request().Context(), db, todo)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create todo"})
		}

		invalidateOwned(wp, rdb, user.ID)
		return c.JSON(http.StatusCreated, dto.NewTodoResponse(created))
	}
}

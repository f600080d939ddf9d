// File: internal/router/router.go
package router

import (
	"todo-api/internal/cache"
	"todo-api/internal/database"
	"todo-api/internal/handler"
	authhandler "todo-api/internal/handler/auth"
	"todo-api/internal/handler/todos"
	"todo-api/internal/handler/users"
	"todo-api/internal/middleware"
	"todo-api/internal/service"
	"todo-api/internal/worker"

	"github.com/labstack/echo/v4"
)

// Setup registers every route and wires the auth middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, auth *service.Auth, wp worker.Pool) {
	e.GET("/", handler.RootHandler())

	e.POST("/register", authhandler.RegisterHandler(db))
	e.POST("/token", authhandler.TokenHandler(db, auth))

	requireAuth := middleware.RequireAuth(db, auth)

	me := e.Group("/users/me", requireAuth)
	me.GET("", users.GetMeHandler())
	me.GET("/todos", users.ListMyTodosHandler(db, rdb))

	td := e.Group("/todos", requireAuth)
	td.GET("", todos.ListTodosHandler(db, rdb))
	td.POST("", todos.CreateTodoHandler(db, rdb, wp))
	td.GET("/:id", todos.GetTodoHandler(db))
	td.PUT("/:id", todos.UpdateTodoHandler(db, rdb, wp))
	td.DELETE("/:id", todos.DeleteTodoHandler(db, rdb, wp))
}

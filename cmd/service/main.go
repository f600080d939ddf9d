// File: cmd/service/main.go
// @title        Todo API
// @version      1.0
// @description  Multi-user task-list service with bearer-token authentication
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"todo-api/internal/cache"
	"todo-api/internal/database"
	"todo-api/internal/router"
	"todo-api/internal/service"
	"todo-api/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "todo-api/docs" // swag-generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

const defaultTokenTTLMinutes = 30

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	// The signing secret is read exactly once here and handed to the
	// token issuer; it must never be logged.
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}

	tokenTTL := defaultTokenTTLMinutes * time.Minute
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return fmt.Errorf("invalid TOKEN_TTL_MINUTES: %q", v)
		}
		tokenTTL = time.Duration(minutes) * time.Minute
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is not set")
	}

	redisDBStr := os.Getenv("REDIS_DB")
	if redisDBStr == "" {
		return fmt.Errorf("REDIS_DB is not set")
	}
	redisIndex, err := strconv.Atoi(redisDBStr)
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %v", err)
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	workerCount := 1
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil || count <= 0 {
			return fmt.Errorf("invalid WORKER_COUNT: %q", v)
		}
		workerCount = count
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("redis connection failed: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("migrations failed: %v", err)
	}

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	auth := service.NewAuth(jwtSecret, tokenTTL)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	router.Setup(e, db, redis, auth, wp)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":8080")
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}

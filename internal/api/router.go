package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/taskstack/tarefas-api/docs"
	"github.com/taskstack/tarefas-api/internal/api/handler"
	"github.com/taskstack/tarefas-api/internal/api/middleware"
	"github.com/taskstack/tarefas-api/internal/core/domain"
	"github.com/taskstack/tarefas-api/internal/core/service"
	mongodb "github.com/taskstack/tarefas-api/internal/infrastructure/db/mongo"
	"github.com/taskstack/tarefas-api/internal/infrastructure/db/postgres"
	redisdb "github.com/taskstack/tarefas-api/internal/infrastructure/db/redis"
	"github.com/taskstack/tarefas-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, pg *sql.DB, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tarefas"))

	// --- Dependencies ---
	tokens := service.TokenSettings{Secret: cfg.JWTSecret, TTL: cfg.TokenTTL, Issuer: "tarefas-api"}

	userRepo := mongodb.NewUserRepository(db)
	lockout := redisdb.NewLockoutStore(rdb, cfg.LockoutMaxAttempts, cfg.LockoutWindow)
	authService := service.NewAuthService(userRepo, lockout, tokens, cfg.LockoutMaxAttempts, log)
	authHandler := handler.NewAuthHandler(authService)

	taskRepo := postgres.NewTaskRepository(pg)
	taskService := service.NewTaskService(taskRepo, log)
	taskHandler := handler.NewTaskHandler(taskService)

	authenticated := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/registro", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Task routes ---
	// Listing is anonymous; everything else requires a verified token, and
	// deletion additionally requires the ExcluirTarefa permission claim.
	e.GET("/tarefa", taskHandler.List)

	tarefa := e.Group("/tarefa", authenticated)
	tarefa.GET("/:id", taskHandler.Get)
	tarefa.POST("", taskHandler.Create)
	tarefa.PUT("/:id", taskHandler.Update)
	tarefa.DELETE("/:id", taskHandler.Delete, middleware.RequirePermission(domain.PermDeleteTask))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pg, db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// The generated API description is exposed in development only.
	if cfg.Development() {
		e.GET("/swagger/*", echoswagger.WrapHandler)
	}

	return e
}

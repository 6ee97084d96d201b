// Entry point for the tarefas API server.
//
// Wires configuration, logging, the three backing stores (Postgres for tasks,
// MongoDB for users, Redis for lockout counters), and the HTTP router.
package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/taskstack/tarefas-api/internal/api"
	mongodb "github.com/taskstack/tarefas-api/internal/infrastructure/db/mongo"
	"github.com/taskstack/tarefas-api/internal/infrastructure/db/postgres"
	redisdb "github.com/taskstack/tarefas-api/internal/infrastructure/db/redis"
	"github.com/taskstack/tarefas-api/internal/pkg/config"
	"github.com/taskstack/tarefas-api/pkg/logger"
)

// @title           Tarefas API
// @version         1.0
// @description     Task-management API with JWT authentication and claim-based authorization.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Best effort: a missing .env just means the environment is already set.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	ctx := context.Background()

	pg, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer func() { _ = pg.Close() }()

	if err := postgres.Migrate(pg, log); err != nil {
		log.Fatal().Err(err).Msg("postgres migration failed")
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(ctx) }()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(cfg, pg, db, rdb, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting tarefas API")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

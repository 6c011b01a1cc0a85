package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/api"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/infrastructure/db/mongo"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/infrastructure/db/redis"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/pkg/config"
	"github.com/HeleenBonte/GardeningAppDeploy/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        GardeningApp API
// @version      1.0
// @description  Catalog of crops, recipes, and ingredients with JWT authentication.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in     header
// @name   Authorization
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongodriver.Database) error {
	if err := mongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongo.NewRecipeRepository(db).EnsureIndexes(ctx)
}

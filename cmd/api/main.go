package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/kimjuyoung1127/fridgechef-backend/config"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/database"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/logging"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/server"
)

func main() {
	// A missing .env file is fine in containerized deployments.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogPretty)

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		// Redis only backs the detail cache and rate limiting; run without it.
		logger.Warn().Err(err).Msg("redis unavailable, continuing without cache")
		redisClient = nil
	}

	srv, err := server.New(cfg, db, redisClient, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build server")
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("server stopped")
}

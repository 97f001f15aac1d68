package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/banco-ledger/banco/internal/config"
	"github.com/banco-ledger/banco/internal/infra"
	"github.com/banco-ledger/banco/internal/logging"
	"github.com/banco-ledger/banco/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("banco stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server exited cleanly")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	cache, err := connectCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if cache != nil {
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Warn("close redis", slog.Any("error", err))
			}
		}()
	}

	srv, err := server.New(cfg, cache, logger)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- srv.Listen()
	}()
	logger.Info("listening", slog.String("addr", cfg.Address()), slog.String("env", cfg.AppEnv))

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// connectCache returns a nil client when Redis is not configured.
func connectCache(ctx context.Context, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	cache, err := infra.ConnectRedis(ctx, cfg.RedisURL)
	switch {
	case errors.Is(err, infra.ErrRedisDisabled):
		logger.Warn("redis disabled; idempotency, rate limiting and the event stream are off")
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("connect redis: %w", err)
	default:
		return cache, nil
	}
}

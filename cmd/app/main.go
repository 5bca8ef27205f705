package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/DietDiary_Go/internal/bootstrap"
	"github.com/osse101/DietDiary_Go/internal/config"
	"github.com/osse101/DietDiary_Go/internal/database"
	"github.com/osse101/DietDiary_Go/internal/server"
)

// @title Diet Diary API
// @version 1.0
// @description Food directory, recipes and per-day nutrition statistics.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		initLogger(cfg)
		slog.Warn("File logging unavailable, logging to stdout only", "error", err)
	} else {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, repos)
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.JWTSecret, cfg.TrustedProxies, dbPool, services)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, DBPool: dbPool})

	return err
}

// Command setup creates the diary database when it is missing and applies
// the embedded migrations. It reads the same DB_* variables as the server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/DietDiary_Go/internal/config"
	"github.com/osse101/DietDiary_Go/internal/database"
	"github.com/osse101/DietDiary_Go/internal/logger"
)

const setupTimeout = time.Minute

func main() {
	_ = godotenv.Load()
	logger.InitLogger(logger.DevelopmentConfig())

	if err := run(); err != nil {
		slog.Error("Setup failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Setup completed")
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	cfg := &config.Config{
		DBUser:     envOr(config.EnvDBUser, "postgres"),
		DBPassword: envOr(config.EnvDBPassword, "postgres"),
		DBHost:     envOr(config.EnvDBHost, "localhost"),
		DBPort:     envOr(config.EnvDBPort, "5432"),
		DBName:     envOr(config.EnvDBName, config.DefaultDBName),
	}

	if err := ensureDatabase(ctx, cfg); err != nil {
		return err
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 2, config.DefaultDBMaxConnIdle, config.DefaultDBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	return database.Migrate(ctx, pool)
}

// ensureDatabase connects to the maintenance database and creates cfg.DBName if absent.
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	admin := *cfg
	admin.DBName = "postgres"

	conn, err := pgx.Connect(ctx, admin.GetDBConnString())
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		slog.Info("Database already exists", "database", cfg.DBName)
		return nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	slog.Info("Database created", "database", cfg.DBName)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

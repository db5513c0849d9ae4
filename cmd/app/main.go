package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bakery/cmd"
	"bakery/internal/adapters/out/metrics"
	"bakery/internal/adapters/out/postgres/migrations"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	configs, err := getConfigs()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqlDB, gormDB, err := openDatabase(configs)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := migrations.Apply(ctx, gormDB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, metrics.NewCollector(), appLogger)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return fmt.Errorf("create jobs: %w", err)
	}
	if err := jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateEcho(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("create http server: %w", err)
	}

	return startWebServer(ctx, e, configs.HTTPPort)
}

// getConfigs reads the environment, loading .env first when present.
func getConfigs() (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cmd.Config{}, fmt.Errorf("load .env: %w", err)
	}
	return cmd.ConfigFromEnv(os.Getenv)
}

func openDatabase(configs cmd.Config) (*sql.DB, *gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(configs.DBMaxOpenConns)

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("open gorm: %w", err)
	}

	return sqlDB, gormDB, nil
}

func startWebServer(ctx context.Context, e *echo.Echo, port string) error {
	e.Logger.SetLevel(log.INFO)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()
	slog.Info("HTTP server started", "port", port)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

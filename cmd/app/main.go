package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"trading/cmd"
	httpadapter "trading/internal/adapters/in/http"
	"trading/internal/adapters/out/postgres"
	"trading/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	db, err := postgres.Open(configs.DSN())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(db.Gorm); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db.Gorm, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// the file is optional; variables already set in the process win
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
		DBHost:               envOrDefault("DB_HOST", "localhost"),
		DBPort:               envOrDefault("DB_PORT", "5432"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            envOrDefault("DB_SSLMODE", "disable"),
		DirectoryRefreshSpec: os.Getenv("DIRECTORY_REFRESH_SPEC"),
	}

	if v := os.Getenv("AGGREGATE_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid AGGREGATE_WORKERS %q: %v", v, err)
		}
		config.AggregateWorkers = workers
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	validator, err := httpadapter.NewRequestValidator()
	if err != nil {
		log.Fatalf("Error building request validator: %v", err)
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	httpadapter.RegisterSwagger(e)

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetOrderDetailQueryHandler(),
		app.CreateGetCounterpartyNamesQueryHandler(),
		app.CreateGetCounterpartiesByNameQueryHandler(),
		logger,
	)
	servers.RegisterHandlers(e, server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

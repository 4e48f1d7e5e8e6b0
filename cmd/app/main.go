package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	loadDotEnv()
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(postgres.ConnectionConfig{
		Host:     configs.DBHost,
		Port:     configs.DBPort,
		User:     configs.DBUser,
		Password: configs.DBPassword,
		Name:     configs.DBName,
		SSLMode:  configs.DBSslMode,
	}.DSN())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Errorf("failed to close event publisher: %v", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT", "8080"),
		DBHost:                 goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:                 goDotEnvVariable("DB_PORT", "5432"),
		DBUser:                 goDotEnvVariable("DB_USER", ""),
		DBPassword:             goDotEnvVariable("DB_PASSWORD", ""),
		DBName:                 goDotEnvVariable("DB_NAME", "fulfillment"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE", "disable"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST", ""),
		KafkaEventsTopic:       goDotEnvVariable("KAFKA_EVENTS_TOPIC", ""),
		RoutingServiceURL:      goDotEnvVariable("ROUTING_SERVICE_URL", ""),
		RoutingTimeout:         durationVariable("ROUTING_TIMEOUT", 10*time.Second),
		UnlocatedStockSchedule: goDotEnvVariable("UNLOCATED_STOCK_SCHEDULE", ""),
		StalePickSheetSchedule: goDotEnvVariable("STALE_PICK_SHEET_SCHEDULE", ""),
		StalePickSheetAfter:    durationVariable("STALE_PICK_SHEET_AFTER", 0),
		LogLevel:               goDotEnvVariable("LOG_LEVEL", "info"),
	}
	return config
}

// loadDotEnv reads .env when present. Variables already set in the process
// environment take precedence.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func goDotEnvVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	value := goDotEnvVariable(key, "")
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) {
	e, err := app.CreateEcho()
	if err != nil {
		log.Fatalf("failed to build HTTP server: %v", err)
	}
	e.Logger.SetLevel(log.INFO)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}

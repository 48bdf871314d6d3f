package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"procurement/cmd"
	httpadapter "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/adapters/out/postgres/supplierrepo"
	"procurement/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	dbConnectAttempts = 10
	dbConnectBackoff  = 3 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	db, err := connectDatabase(configs, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Schema creation failures are logged but not fatal: against an already
	// migrated database the application still serves.
	if err = db.AutoMigrate(
		&supplierrepo.SupplierDTO{}, &orderrepo.OrderDTO{}, &orderrepo.LineDTO{},
	); err != nil {
		logger.Warn("Database migration failed", "error", err)
	}

	root := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		root.CreateReconcileOrderTotalsCommandHandler(),
		root.OrderUoWFactory(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine when the variables come from the environment
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: envOrDefault("DB_PASSWORD", "postgres"),
		DBName:     envOrDefault("DB_NAME", "procurement"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// connectDatabase opens the GORM connection with bounded retry, since the
// database may still be starting when the application comes up.
func connectDatabase(configs cmd.Config, logger *slog.Logger) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
		if err == nil {
			return db, nil
		}

		lastErr = err
		logger.Warn("Database not ready, retrying",
			"attempt", attempt, "max_attempts", dbConnectAttempts, "error", err)
		time.Sleep(dbConnectBackoff)
	}
	return nil, lastErr
}

func startWebServer(root *cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := httpadapter.NewServer(
		root.CreateCreateSupplierCommandHandler(),
		root.CreateUpdateSupplierCommandHandler(),
		root.CreateRemoveSupplierCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderCommandHandler(),
		root.CreateChangeOrderStatusCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateAddOrderLineCommandHandler(),
		root.CreateUpdateOrderLineCommandHandler(),
		root.CreateRemoveOrderLineCommandHandler(),
		root.CreateGetAllSuppliersQueryHandler(),
		root.CreateGetSupplierQueryHandler(),
		root.CreateGetAllOrdersQueryHandler(),
		root.CreateGetOrderQueryHandler(),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Web server stopped: %v", err)
		}
	}()

	// Block until interrupted, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

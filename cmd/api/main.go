// Package main is the entry point for the SpendView API server.
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

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/spendview/backend/config"
	"github.com/spendview/backend/internal/application/adapter"
	"github.com/spendview/backend/internal/infra/db"
	"github.com/spendview/backend/internal/infra/dependency"
	"github.com/spendview/backend/internal/infra/redis"
	"github.com/spendview/backend/internal/integration/cache"
	"github.com/spendview/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting SpendView API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.ExpenseModel{},
			&model.ExpenseShareModel{},
			&model.IncomeModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize Redis connection (optional; charts recompute on miss)
	var cacheHealthChecker func() bool
	var chartCache adapter.ChartCache

	redisClient, err := redis.NewConnection(&cfg.Redis)
	if err != nil {
		slog.Warn("Redis connection failed, chart caching disabled",
			"error", err,
		)
		cacheHealthChecker = func() bool { return false }
	} else {
		chartCache = cache.NewChartCache(redisClient.Client(), cfg.Redis.ChartTTL)
		cacheHealthChecker = redisClient.HealthCheck
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
	}

	// Wire repositories, use cases, controllers and middleware
	var dbConn *gorm.DB
	if database != nil {
		dbConn = database.DB()
		slog.Info("Entry system initialized successfully")
	} else {
		slog.Warn("Entry system not initialized due to missing database connection")
	}

	injector := dependency.NewInjector(cfg, dbConn, chartCache, dbHealthChecker, cacheHealthChecker, time.Now)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/wellnestlab/wellnest/internal/api"
	"github.com/wellnestlab/wellnest/internal/config"
	"github.com/wellnestlab/wellnest/internal/db"
	"github.com/wellnestlab/wellnest/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	logger := logging.New(cfg)
	defer func() { _ = logger.Sync() }()

	location := mustLoadLocation(cfg.ReferenceTimezone, logger)

	database, err := db.OpenSQLite(cfg.DBPath, logger)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	handler := api.NewHandler(database, cfg.SecretKey, location, logger)

	app := fiber.New(fiber.Config{
		AppName:               "Wellnest",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("wellnest listening",
		zap.String("port", cfg.ServerPort),
		zap.String("db", cfg.DBPath),
		zap.String("reference_tz", location.String()),
	)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func mustLoadLocation(name string, logger *zap.Logger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("invalid reference timezone, falling back to UTC", zap.String("tz", name))
		return time.UTC
	}
	return location
}

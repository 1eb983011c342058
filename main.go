package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mergington-api/internal/config"
	"mergington-api/internal/container"
	"mergington-api/internal/handler"
	"mergington-api/pkg/logger"
	"mergington-api/pkg/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.WithFields(map[string]interface{}{
		"port":        cfg.Port,
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
		"rate_limit":  cfg.SignupRateLimit,
	}).Info("Starting mergington-api server")

	c, err := container.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to create container")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(":"+cfg.Port, handler.NewRouter(c))
	runErr := server.Run(ctx, srv, log, cfg.ShutdownTimeout)

	if err := c.Close(); err != nil {
		log.WithError(err).Error("Failed to close Redis connection")
	}

	if runErr != nil {
		log.WithError(runErr).Error("Server exited with error")
		os.Exit(1)
	}
	log.Info("Application shutdown complete")
}

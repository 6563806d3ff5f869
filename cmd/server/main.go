package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pokecalc-service/internal/config"
	"pokecalc-service/internal/logging"
	"pokecalc-service/internal/server"
)

const (
	appName    = "pokecalc-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	envFile := os.Getenv("ENV_FILE")
	envErr := config.LoadEnvFile(envFile)

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: appName,
		Version: appVersion,
	})
	if envErr != nil {
		logger.Warn("failed to load env file", "path", envFile, "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("server setup failed", "error", err)
		return 1
	}
	srv.Run(ctx, stop)
	return 0
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/tutoria_notifier/internal/app"
	"github.com/Freeeeeet/tutoria_notifier/internal/config"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("Starting notifier",
		zap.String("environment", cfg.Environment),
		zap.String("timezone", cfg.Timezone.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifier, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize notifier", zap.Error(err))
	}
	defer notifier.Close()

	if err := notifier.Run(ctx); err != nil {
		logger.Error("Notifier stopped with error", zap.Error(err))
		return
	}

	logger.Info("Notifier stopped")
}

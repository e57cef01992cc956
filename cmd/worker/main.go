package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/echo-report-api/internal/config"
	"github.com/jwalitptl/echo-report-api/internal/worker"
	"github.com/jwalitptl/echo-report-api/pkg/logger"
)

// Standalone retention sweeper, for deployments where the API process
// does not own the reports directory.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	appLogger := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		Pretty:     cfg.Logging.Pretty,
	})
	log.Logger = appLogger.ZL

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cleanup := worker.NewReportCleanupWorker(
		cfg.Renderer.ReportsDir,
		cfg.Renderer.Retention,
		cfg.Renderer.CleanupInterval,
	)
	cleanup.Start(ctx)
}

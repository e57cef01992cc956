package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/echo-report-api/internal/config"
	"github.com/jwalitptl/echo-report-api/internal/handler"
	reporthandler "github.com/jwalitptl/echo-report-api/internal/handler/report"
	"github.com/jwalitptl/echo-report-api/internal/reportgen"
	"github.com/jwalitptl/echo-report-api/internal/repository/postgres"
	"github.com/jwalitptl/echo-report-api/internal/router"
	"github.com/jwalitptl/echo-report-api/internal/schema"
	reportservice "github.com/jwalitptl/echo-report-api/internal/service/report"
	"github.com/jwalitptl/echo-report-api/internal/worker"
	"github.com/jwalitptl/echo-report-api/pkg/logger"
)

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

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	renderer, err := reportgen.NewPDFRenderer(reportgen.Config{
		ChromePath: cfg.Renderer.ChromePath,
		Timeout:    cfg.Renderer.RenderTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize renderer")
	}
	defer renderer.Close()

	store, err := reportgen.NewFileStore(cfg.Renderer.ReportsDir, cfg.Renderer.Retention)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize document store")
	}

	repo := postgres.NewReportRepository(db)
	builder := reportgen.NewBuilder(schema.Default)
	service := reportservice.NewService(repo, builder, renderer, store)

	r := router.New(cfg, handler.NewHandler(db))
	r.Register(reporthandler.NewHandler(service, schema.Default))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cleanup := worker.NewReportCleanupWorker(
		cfg.Renderer.ReportsDir,
		cfg.Renderer.Retention,
		cfg.Renderer.CleanupInterval,
	)
	go cleanup.Start(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}

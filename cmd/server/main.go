// Command server boots the journaling API: it loads configuration, opens the
// SQLite store for drafts and idempotency keys, seeds the in-memory record
// store, wires tracing, starts the weekly report cron, and serves HTTP until
// SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/maeum-app/cbt-journal-backend/internal/config"
	"github.com/maeum-app/cbt-journal-backend/internal/eligibility"
	httpapi "github.com/maeum-app/cbt-journal-backend/internal/http"
	"github.com/maeum-app/cbt-journal-backend/internal/observability"
	"github.com/maeum-app/cbt-journal-backend/internal/repo"
	"github.com/maeum-app/cbt-journal-backend/internal/scheduler"
	"github.com/maeum-app/cbt-journal-backend/internal/services"
	"github.com/maeum-app/cbt-journal-backend/internal/store"
	"github.com/maeum-app/cbt-journal-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// .env is optional; production sets env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, reading from environment")
	}

	cfg := config.MustLoad()

	// Logging
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	logger := log.With().Str("service", cfg.OTEL.ServiceName).Logger()

	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	// Tracing (no-op shutdown when disabled)
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		logger.Fatal().Err(err).Msg("otel setup failed")
	}

	// SQLite persists drafts and idempotency keys across restarts.
	db, err := repo.OpenSQLite(cfg.DBPath, cfg.OTEL.Enabled)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open sqlite failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("automigrate failed")
	}

	// Record store: seeded demo data set or empty.
	var st *store.Store
	if cfg.SeedData {
		st = store.Seeded(time.Now())
		logger.Info().Msg("record store seeded with demo data")
	} else {
		st = store.New()
	}

	// Weekly report cron
	th := eligibility.Thresholds{
		MinMoodEntries: cfg.Eligibility.MinMoodEntries,
		MinCBTRecords:  cfg.Eligibility.MinCBTRecords,
		ResurveyDays:   cfg.Eligibility.ResurveyDays,
	}
	sched := scheduler.New(services.NewReportService(st, th), cfg.Report.CronSpec, logger)
	if err := sched.Start(); err != nil {
		logger.Fatal().Err(err).Str("spec", cfg.Report.CronSpec).Msg("scheduler start failed")
	}

	// HTTP
	r := gin.New()
	httpapi.RegisterRoutes(r, db, st, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Str("base_path", cfg.APIBasePath).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
	sched.Stop()
	if err := shutdownOTel(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("otel shutdown failed")
	}
	logger.Info().Msg("server exited")
}

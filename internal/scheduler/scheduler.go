// Package scheduler runs the weekly report generation job. Reports are never
// produced inline with a request; this cron job snapshots the trailing week
// on the configured schedule (default Sunday evening) and appends the result
// to the store. Skips while the unlock thresholds are unmet are expected and
// logged at debug level only.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/services"
)

// ReportGenerator is the service entry point the scheduler drives.
type ReportGenerator interface {
	Generate(ctx context.Context) (*domain.WeeklyReport, error)
}

// Scheduler owns the cron runner for report generation.
type Scheduler struct {
	reports ReportGenerator
	cron    *cron.Cron
	spec    string
	log     zerolog.Logger
}

// New constructs a Scheduler with the given cron spec (standard 5-field
// format, e.g. "0 18 * * 0").
func New(reports ReportGenerator, spec string, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		reports: reports,
		cron:    cron.New(),
		spec:    spec,
		log:     log,
	}
}

// Start registers the job and starts the cron runner.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runOnce); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("spec", s.spec).Msg("report scheduler started")
	return nil
}

// Stop halts the cron runner and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("report scheduler stopped")
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	rpt, err := s.reports.Generate(ctx)
	switch {
	case errors.Is(err, services.ErrNotEligible):
		s.log.Debug().Msg("report generation skipped: thresholds not met")
	case err != nil:
		s.log.Error().Err(err).Msg("report generation failed")
	default:
		s.log.Info().
			Str("report_id", rpt.ID).
			Str("week", rpt.WeekLabel).
			Msg("weekly report generated")
	}
}

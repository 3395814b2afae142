// Package services – ReportService
//
// This file implements the ReportService, which lists weekly reports with the
// unlock progress, derives a report's statistics bundle on demand, marks
// reports as viewed, and generates new reports for the scheduler. A report is
// an immutable snapshot of reference IDs; every summary view recomputes the
// statistics from the referenced records through the report package.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/eligibility"
	"github.com/maeum-app/cbt-journal-backend/internal/report"
)

// ReportStore defines the store contract required by ReportService.
type ReportStore interface {
	AddWeeklyReport(r domain.WeeklyReport)
	WeeklyReports() []domain.WeeklyReport
	WeeklyReport(id string) (domain.WeeklyReport, bool)
	MarkReportViewed(id string) bool
	Counts() (moodEntries, thoughtRecords, behaviorRecords int)
	MoodEntries() []domain.MoodEntry
	ThoughtRecords() []domain.ThoughtRecord
	BehaviorRecords() []domain.BehaviorRecord
	PHQ9Surveys() []domain.PHQ9Survey
}

// ReportService serves the report list, summaries, and generation.
type ReportService struct {
	Store      ReportStore
	Thresholds eligibility.Thresholds
	Now        func() time.Time
}

// NewReportService constructs a ReportService with the given thresholds.
func NewReportService(st ReportStore, th eligibility.Thresholds) *ReportService {
	return &ReportService{Store: st, Thresholds: th, Now: time.Now}
}

// Progress describes how close the user is to unlocking reports.
type Progress struct {
	Unlocked     bool `json:"unlocked"`
	MoodEntries  int  `json:"mood_entries"`
	MoodRequired int  `json:"mood_required"`
	CBTRecords   int  `json:"cbt_records"`
	CBTRequired  int  `json:"cbt_required"`
}

// List returns all reports with the current unlock progress.
func (s *ReportService) List(ctx context.Context) ([]domain.WeeklyReport, Progress, error) {
	moods, thoughts, behaviors := s.Store.Counts()
	cbt := thoughts + behaviors
	p := Progress{
		Unlocked:     s.Thresholds.ReportUnlocked(moods, cbt),
		MoodEntries:  moods,
		MoodRequired: s.Thresholds.MinMoodEntries,
		CBTRecords:   cbt,
		CBTRequired:  s.Thresholds.MinCBTRecords,
	}
	return s.Store.WeeklyReports(), p, nil
}

// Summary recomputes the statistics bundle for one report.
func (s *ReportService) Summary(ctx context.Context, id string) (domain.WeeklyReport, report.Summary, error) {
	rpt, ok := s.Store.WeeklyReport(id)
	if !ok {
		return domain.WeeklyReport{}, report.Summary{}, ErrReportNotFound
	}
	sum := report.Summarize(rpt, s.Store.PHQ9Surveys(), s.Store.ThoughtRecords(), s.Store.BehaviorRecords())
	return rpt, sum, nil
}

// MarkViewed records that the user opened the report. Idempotent.
func (s *ReportService) MarkViewed(ctx context.Context, id string) error {
	if !s.Store.MarkReportViewed(id) {
		return ErrReportNotFound
	}
	return nil
}

// Generate snapshots the trailing week [now-7d, now) into a new report.
// Returns ErrNotEligible while the unlock thresholds are unmet; the scheduler
// treats that as a skip, not a failure.
func (s *ReportService) Generate(ctx context.Context) (*domain.WeeklyReport, error) {
	moods, thoughts, behaviors := s.Store.Counts()
	if !s.Thresholds.ReportUnlocked(moods, thoughts+behaviors) {
		return nil, ErrNotEligible
	}

	now := s.Now().UTC()
	start := now.AddDate(0, 0, -7)

	var surveyIDs, thoughtIDs, behaviorIDs []string
	for _, v := range s.Store.PHQ9Surveys() {
		if inWindow(v.Date, start, now) {
			surveyIDs = append(surveyIDs, v.ID)
		}
	}
	for _, r := range s.Store.ThoughtRecords() {
		if inWindow(r.Date, start, now) {
			thoughtIDs = append(thoughtIDs, r.ID)
		}
	}
	for _, r := range s.Store.BehaviorRecords() {
		if inWindow(r.Date, start, now) {
			behaviorIDs = append(behaviorIDs, r.ID)
		}
	}
	moodCount := 0
	for _, e := range s.Store.MoodEntries() {
		if inWindow(e.Date, start, now) {
			moodCount++
		}
	}

	rpt := domain.WeeklyReport{
		ID:                uuid.NewString(),
		WeekLabel:         WeekLabel(now),
		StartDate:         start,
		EndDate:           now,
		CreatedAt:         now,
		PHQ9SurveyIDs:     surveyIDs,
		ThoughtRecordIDs:  thoughtIDs,
		BehaviorRecordIDs: behaviorIDs,
		MoodEntryCount:    moodCount,
	}
	s.Store.AddWeeklyReport(rpt)
	return &rpt, nil
}

// WeekLabel renders the Korean week-of-month label, e.g. "11월 2주".
func WeekLabel(t time.Time) string {
	return fmt.Sprintf("%d월 %d주", int(t.Month()), (t.Day()-1)/7+1)
}

// inWindow reports whether d falls in the half-open interval [start, end).
func inWindow(d, start, end time.Time) bool {
	return !d.Before(start) && d.Before(end)
}

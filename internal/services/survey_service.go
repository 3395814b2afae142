// Package services – SurveyService
//
// This file implements the SurveyService, which records PHQ-9 screening
// results and decides when to re-prompt. Scoring and severity bucketing live
// in the phq9 package; this service only validates through it, appends the
// survey, and evaluates the re-prompt predicate against the store counts.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/eligibility"
	"github.com/maeum-app/cbt-journal-backend/internal/phq9"
)

// SurveyStore defines the store contract required by SurveyService.
type SurveyStore interface {
	AddPHQ9Survey(v domain.PHQ9Survey)
	PHQ9Surveys() []domain.PHQ9Survey
	Counts() (moodEntries, thoughtRecords, behaviorRecords int)
	LatestSurveyDate() *time.Time
}

// SurveyService records PHQ-9 results and evaluates the re-prompt rule.
type SurveyService struct {
	Store      SurveyStore
	Thresholds eligibility.Thresholds
	Now        func() time.Time
}

// NewSurveyService constructs a SurveyService with the given thresholds.
func NewSurveyService(st SurveyStore, th eligibility.Thresholds) *SurveyService {
	return &SurveyService{Store: st, Thresholds: th, Now: time.Now}
}

// SurveyResult pairs the stored survey with its derived presentation values.
type SurveyResult struct {
	Survey   domain.PHQ9Survey `json:"survey"`
	Severity phq9.Severity     `json:"severity"`
	Percent  int               `json:"percent"`
}

// Submit scores the answers, appends the survey, and returns it with the
// severity bucket and percent-of-maximum. Invalid answers surface as the
// phq9 package's errors.
func (s *SurveyService) Submit(ctx context.Context, answers []int) (*SurveyResult, error) {
	score, err := phq9.Score(answers)
	if err != nil {
		return nil, err
	}
	v := domain.PHQ9Survey{
		ID:      uuid.NewString(),
		Date:    s.Now().UTC(),
		Score:   score,
		Answers: append([]int(nil), answers...),
	}
	s.Store.AddPHQ9Survey(v)
	return &SurveyResult{
		Survey:   v,
		Severity: phq9.SeverityFor(score),
		Percent:  phq9.Percent(score),
	}, nil
}

// List returns all recorded surveys in insertion order.
func (s *SurveyService) List(ctx context.Context) ([]domain.PHQ9Survey, error) {
	return s.Store.PHQ9Surveys(), nil
}

// PromptDue reports whether the client should re-prompt the PHQ-9 survey.
func (s *SurveyService) PromptDue(ctx context.Context) (bool, error) {
	moods, thoughts, behaviors := s.Store.Counts()
	due := s.Thresholds.ResurveyDue(moods, thoughts+behaviors, s.Store.LatestSurveyDate(), s.Now().UTC())
	return due, nil
}

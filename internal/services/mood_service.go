// Package services – MoodService
//
// This file implements the MoodService, which records daily mood check-ins
// and slices the history for the home screen views. A check-in is a mood on
// the 0..10 scale plus an emoji; when the client omits the emoji one is
// derived from the mood value. Period slicing is a closed enumeration
// (daily/weekly/monthly mapping to the last 7/14/30 entries) so an unknown
// period is rejected instead of silently returning everything.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/sparkline"
)

// MoodStore defines the store contract required by MoodService.
type MoodStore interface {
	AddMoodEntry(e domain.MoodEntry)
	MoodEntries() []domain.MoodEntry
}

// MoodService provides mood check-in operations.
type MoodService struct {
	// Store holds the mood history.
	Store MoodStore
	// Now supplies timestamps; overridable in tests.
	Now func() time.Time
}

// NewMoodService constructs a MoodService backed by the given store.
func NewMoodService(st MoodStore) *MoodService {
	return &MoodService{Store: st, Now: time.Now}
}

// Period selects how much mood history a listing returns.
type Period string

// Known periods and the number of most recent entries each maps to.
const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

func entriesFor(p Period) (int, error) {
	switch p {
	case PeriodDaily:
		return 7, nil
	case PeriodWeekly:
		return 14, nil
	case PeriodMonthly:
		return 30, nil
	default:
		return 0, ErrInvalidPeriod
	}
}

// Add records a mood check-in. Mood must be on the 0..10 scale; a blank emoji
// is derived from the mood value.
func (s *MoodService) Add(ctx context.Context, mood int, emoji string) (*domain.MoodEntry, error) {
	if mood < 0 || mood > 10 {
		return nil, ErrInvalidMood
	}
	if emoji == "" {
		emoji = emojiFor(mood)
	}
	e := domain.MoodEntry{
		ID:    uuid.NewString(),
		Date:  s.Now().UTC(),
		Mood:  mood,
		Emoji: emoji,
	}
	s.Store.AddMoodEntry(e)
	return &e, nil
}

// List returns the most recent entries for the period, oldest first. An empty
// period defaults to daily.
func (s *MoodService) List(ctx context.Context, period Period) ([]domain.MoodEntry, error) {
	if period == "" {
		period = PeriodDaily
	}
	n, err := entriesFor(period)
	if err != nil {
		return nil, err
	}
	all := s.Store.MoodEntries()
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all, nil
}

// Sparkline maps the period's entries onto chart coordinates. Width and
// height fall back to the chart defaults when non-positive.
func (s *MoodService) Sparkline(ctx context.Context, period Period, width, height float64) ([]sparkline.Point, error) {
	entries, err := s.List(ctx, period)
	if err != nil {
		return nil, err
	}
	return sparkline.Map(entries, width, height), nil
}

// emojiFor picks a default emoji for a mood value.
func emojiFor(mood int) string {
	switch {
	case mood >= 8:
		return "😁"
	case mood >= 6:
		return "😊"
	case mood >= 5:
		return "😐"
	case mood >= 3:
		return "😔"
	default:
		return "😢"
	}
}

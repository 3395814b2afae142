// Package services – JournalService
//
// This file implements the JournalService, which finalizes the two CBT
// wizards into immutable records: thought records (situation, emotions,
// automatic thought, cognitive distortions, alternative thought) and behavior
// activation records (daypart moods plus planned activities). Validation
// happens here, at finalization; partially filled wizard state lives in the
// draft instead and is never validated against these rules.
//
// Archive listings use a closed filter enumeration (all/week/month/custom) so
// that typos surface as errors rather than unfiltered responses.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/utils"
)

const maxActivitiesPerSlot = 3

// JournalStore defines the store contract required by JournalService.
type JournalStore interface {
	AddThoughtRecord(r domain.ThoughtRecord)
	ThoughtRecords() []domain.ThoughtRecord
	AddBehaviorRecord(r domain.BehaviorRecord)
	BehaviorRecords() []domain.BehaviorRecord
	CompleteActivity(recordID, activityID string) (domain.BehaviorRecord, bool)
}

// JournalService finalizes wizard output into records and serves the archive.
type JournalService struct {
	Store JournalStore
	Now   func() time.Time
}

// NewJournalService constructs a JournalService backed by the given store.
func NewJournalService(st JournalStore) *JournalService {
	return &JournalService{Store: st, Now: time.Now}
}

// ThoughtInput is the finalized output of the thought record wizard.
type ThoughtInput struct {
	Situation              string           `json:"situation"`
	Emotions               []domain.Emotion `json:"emotions"`
	AutomaticThoughts      string           `json:"automatic_thoughts"`
	CognitiveDistortions   []string         `json:"cognitive_distortions"`
	AlternativeThought     string           `json:"alternative_thought"`
	AlternativeDistortions []string         `json:"alternative_distortions"`
	SharedToCommunity      bool             `json:"shared_to_community"`
}

// ActivityInput is one planned activity in a behavior record.
type ActivityInput struct {
	Situation     domain.Situation `json:"situation"`
	Activity      string           `json:"activity"`
	ScheduledDate *time.Time       `json:"scheduled_date,omitempty"`
	ScheduledTime string           `json:"scheduled_time,omitempty"`
}

// BehaviorInput is the finalized output of the behavior activation wizard.
type BehaviorInput struct {
	MorningMood int             `json:"morning_mood"`
	WorkMood    int             `json:"work_mood"`
	EveningMood int             `json:"evening_mood"`
	Activities  []ActivityInput `json:"activities"`
}

// CreateThought validates and appends a thought record.
func (s *JournalService) CreateThought(ctx context.Context, in ThoughtInput) (*domain.ThoughtRecord, error) {
	situation := utils.NormalizeText(in.Situation)
	if situation == "" {
		return nil, ErrEmptySituation
	}
	if len(in.Emotions) == 0 {
		return nil, ErrInvalidEmotion
	}
	emotions := make([]domain.Emotion, len(in.Emotions))
	for i, e := range in.Emotions {
		name := utils.NormalizeText(e.Name)
		if name == "" || e.Intensity < 1 || e.Intensity > 10 {
			return nil, ErrInvalidEmotion
		}
		emotions[i] = domain.Emotion{Name: name, Intensity: e.Intensity}
	}
	if len(in.CognitiveDistortions) == 0 {
		return nil, ErrNoDistortions
	}
	alternative := utils.NormalizeText(in.AlternativeThought)
	if alternative == "" {
		return nil, ErrEmptyAlternative
	}

	r := domain.ThoughtRecord{
		ID:                     uuid.NewString(),
		Date:                   s.Now().UTC(),
		Situation:              situation,
		Emotions:               emotions,
		AutomaticThoughts:      utils.NormalizeText(in.AutomaticThoughts),
		CognitiveDistortions:   normalizeAll(in.CognitiveDistortions),
		AlternativeThought:     alternative,
		AlternativeDistortions: normalizeAll(in.AlternativeDistortions),
		SharedToCommunity:      in.SharedToCommunity,
	}
	s.Store.AddThoughtRecord(r)
	return &r, nil
}

// CreateBehavior validates and appends a behavior activation record. The
// record is marked completed: finishing the wizard is what creates it.
func (s *JournalService) CreateBehavior(ctx context.Context, in BehaviorInput) (*domain.BehaviorRecord, error) {
	for _, m := range []int{in.MorningMood, in.WorkMood, in.EveningMood} {
		if m < 0 || m > 10 {
			return nil, ErrInvalidMood
		}
	}
	perSlot := map[domain.Situation]int{}
	activities := make([]domain.PlannedActivity, len(in.Activities))
	for i, a := range in.Activities {
		text := utils.NormalizeText(a.Activity)
		if !a.Situation.Valid() || text == "" {
			return nil, ErrInvalidActivity
		}
		perSlot[a.Situation]++
		if perSlot[a.Situation] > maxActivitiesPerSlot {
			return nil, ErrTooManyActivities
		}
		activities[i] = domain.PlannedActivity{
			ID:            uuid.NewString(),
			Situation:     a.Situation,
			Activity:      text,
			ScheduledDate: a.ScheduledDate,
			ScheduledTime: a.ScheduledTime,
		}
	}

	r := domain.BehaviorRecord{
		ID:          uuid.NewString(),
		Date:        s.Now().UTC(),
		MorningMood: in.MorningMood,
		WorkMood:    in.WorkMood,
		EveningMood: in.EveningMood,
		Activities:  activities,
		Completed:   true,
	}
	s.Store.AddBehaviorRecord(r)
	return &r, nil
}

// ArchiveFilter narrows archive listings by date.
type ArchiveFilter struct {
	Range string    // all | week | month | custom
	Start time.Time // custom only
	End   time.Time // custom only, exclusive
}

// window resolves the filter to a half-open [start, end) interval. The zero
// end time means unbounded.
func (s *JournalService) window(f ArchiveFilter) (start, end time.Time, err error) {
	now := s.Now().UTC()
	switch f.Range {
	case "", "all":
		return time.Time{}, time.Time{}, nil
	case "week":
		return now.AddDate(0, 0, -7), time.Time{}, nil
	case "month":
		return now.AddDate(0, -1, 0), time.Time{}, nil
	case "custom":
		if f.Start.IsZero() || f.End.IsZero() || !f.Start.Before(f.End) {
			return time.Time{}, time.Time{}, ErrInvalidRange
		}
		return f.Start, f.End, nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidFilter
	}
}

func within(d, start, end time.Time) bool {
	if !start.IsZero() && d.Before(start) {
		return false
	}
	if !end.IsZero() && !d.Before(end) {
		return false
	}
	return true
}

// ListThoughts returns thought records matching the filter, oldest first.
func (s *JournalService) ListThoughts(ctx context.Context, f ArchiveFilter) ([]domain.ThoughtRecord, error) {
	start, end, err := s.window(f)
	if err != nil {
		return nil, err
	}
	var out []domain.ThoughtRecord
	for _, r := range s.Store.ThoughtRecords() {
		if within(r.Date, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

// ListBehaviors returns behavior records matching the filter, oldest first.
func (s *JournalService) ListBehaviors(ctx context.Context, f ArchiveFilter) ([]domain.BehaviorRecord, error) {
	start, end, err := s.window(f)
	if err != nil {
		return nil, err
	}
	var out []domain.BehaviorRecord
	for _, r := range s.Store.BehaviorRecords() {
		if within(r.Date, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

// CompleteActivity marks one planned activity as done and returns the updated
// record. The operation is idempotent.
func (s *JournalService) CompleteActivity(ctx context.Context, recordID, activityID string) (*domain.BehaviorRecord, error) {
	rec, ok := s.Store.CompleteActivity(recordID, activityID)
	if !ok {
		// Distinguish a missing record from a missing activity for the handler.
		for _, r := range s.Store.BehaviorRecords() {
			if r.ID == recordID {
				return nil, ErrActivityNotFound
			}
		}
		return nil, ErrRecordNotFound
	}
	return &rec, nil
}

func normalizeAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := utils.NormalizeText(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

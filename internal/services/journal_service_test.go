package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/store"
)

func newJournalSvc(now time.Time) (*JournalService, *store.Store) {
	st := store.New()
	svc := NewJournalService(st)
	svc.Now = func() time.Time { return now }
	return svc, st
}

func validThought() ThoughtInput {
	return ThoughtInput{
		Situation:            "팀 회의에서 의견이 무시됐다",
		Emotions:             []domain.Emotion{{Name: "불안", Intensity: 7}},
		AutomaticThoughts:    "나는 무능해",
		CognitiveDistortions: []string{"흑백논리 - 극단적 사고"},
		AlternativeThought:   "여러 요인이 있었을 수 있다",
	}
}

func TestCreateThought_Validation(t *testing.T) {
	now := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newJournalSvc(now)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*ThoughtInput)
		want   error
	}{
		{"blank situation", func(in *ThoughtInput) { in.Situation = "   " }, ErrEmptySituation},
		{"no emotions", func(in *ThoughtInput) { in.Emotions = nil }, ErrInvalidEmotion},
		{"unnamed emotion", func(in *ThoughtInput) { in.Emotions[0].Name = " " }, ErrInvalidEmotion},
		{"intensity too low", func(in *ThoughtInput) { in.Emotions[0].Intensity = 0 }, ErrInvalidEmotion},
		{"intensity too high", func(in *ThoughtInput) { in.Emotions[0].Intensity = 11 }, ErrInvalidEmotion},
		{"no distortions", func(in *ThoughtInput) { in.CognitiveDistortions = nil }, ErrNoDistortions},
		{"blank alternative", func(in *ThoughtInput) { in.AlternativeThought = "" }, ErrEmptyAlternative},
	}
	for _, tc := range cases {
		in := validThought()
		tc.mutate(&in)
		if _, err := svc.CreateThought(ctx, in); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v; want %v", tc.name, err, tc.want)
		}
	}
}

func TestCreateThought_Success(t *testing.T) {
	now := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)
	svc, st := newJournalSvc(now)

	in := validThought()
	in.SharedToCommunity = true
	r, err := svc.CreateThought(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateThought: %v", err)
	}
	if r.ID == "" || !r.Date.Equal(now) || !r.SharedToCommunity {
		t.Errorf("record = %+v", r)
	}
	if got := st.ThoughtRecords(); len(got) != 1 || got[0].ID != r.ID {
		t.Errorf("store contents = %+v", got)
	}
}

func validBehavior() BehaviorInput {
	return BehaviorInput{
		MorningMood: 4, WorkMood: 6, EveningMood: 7,
		Activities: []ActivityInput{
			{Situation: domain.SituationMorning, Activity: "산책", ScheduledTime: "07:30"},
		},
	}
}

func TestCreateBehavior_Validation(t *testing.T) {
	now := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newJournalSvc(now)
	ctx := context.Background()

	in := validBehavior()
	in.EveningMood = 11
	if _, err := svc.CreateBehavior(ctx, in); !errors.Is(err, ErrInvalidMood) {
		t.Errorf("mood out of range: %v", err)
	}

	in = validBehavior()
	in.Activities[0].Situation = "night"
	if _, err := svc.CreateBehavior(ctx, in); !errors.Is(err, ErrInvalidActivity) {
		t.Errorf("bad daypart: %v", err)
	}

	in = validBehavior()
	in.Activities[0].Activity = "  "
	if _, err := svc.CreateBehavior(ctx, in); !errors.Is(err, ErrInvalidActivity) {
		t.Errorf("blank activity: %v", err)
	}

	in = validBehavior()
	for i := 0; i < 3; i++ {
		in.Activities = append(in.Activities, ActivityInput{Situation: domain.SituationMorning, Activity: "x"})
	}
	if _, err := svc.CreateBehavior(ctx, in); !errors.Is(err, ErrTooManyActivities) {
		t.Errorf("four morning activities: %v", err)
	}
}

func TestCreateBehavior_Success_AssignsActivityIDsAndCompleted(t *testing.T) {
	now := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newJournalSvc(now)

	r, err := svc.CreateBehavior(context.Background(), validBehavior())
	if err != nil {
		t.Fatalf("CreateBehavior: %v", err)
	}
	if !r.Completed {
		t.Error("finalized record must be completed")
	}
	if len(r.Activities) != 1 || r.Activities[0].ID == "" || r.Activities[0].Completed {
		t.Errorf("activities = %+v", r.Activities)
	}
}

func TestArchiveFilters(t *testing.T) {
	now := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)
	svc, st := newJournalSvc(now)
	ctx := context.Background()

	dates := []time.Time{
		now.AddDate(0, 0, -2),  // within week
		now.AddDate(0, 0, -20), // within month only
		now.AddDate(0, -2, 0),  // older
	}
	for i, d := range dates {
		st.AddThoughtRecord(domain.ThoughtRecord{ID: string(rune('a' + i)), Date: d})
	}

	cases := []struct {
		rng  string
		want int
	}{
		{"all", 3}, {"", 3}, {"week", 1}, {"month", 2},
	}
	for _, tc := range cases {
		got, err := svc.ListThoughts(ctx, ArchiveFilter{Range: tc.rng})
		if err != nil {
			t.Fatalf("ListThoughts(%q): %v", tc.rng, err)
		}
		if len(got) != tc.want {
			t.Errorf("ListThoughts(%q) = %d; want %d", tc.rng, len(got), tc.want)
		}
	}

	got, err := svc.ListThoughts(ctx, ArchiveFilter{
		Range: "custom",
		Start: now.AddDate(0, 0, -25),
		End:   now.AddDate(0, 0, -10),
	})
	if err != nil || len(got) != 1 {
		t.Errorf("custom window = (%d, %v); want 1 record", len(got), err)
	}

	if _, err := svc.ListThoughts(ctx, ArchiveFilter{Range: "year"}); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("unknown range: %v", err)
	}
	if _, err := svc.ListThoughts(ctx, ArchiveFilter{Range: "custom"}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("custom without bounds: %v", err)
	}
	if _, err := svc.ListThoughts(ctx, ArchiveFilter{Range: "custom", Start: now, End: now}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("empty custom interval: %v", err)
	}
}

func TestListBehaviors_Filters(t *testing.T) {
	now := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)
	svc, st := newJournalSvc(now)

	st.AddBehaviorRecord(domain.BehaviorRecord{ID: "recent", Date: now.AddDate(0, 0, -1)})
	st.AddBehaviorRecord(domain.BehaviorRecord{ID: "old", Date: now.AddDate(0, -3, 0)})

	got, err := svc.ListBehaviors(context.Background(), ArchiveFilter{Range: "week"})
	if err != nil {
		t.Fatalf("ListBehaviors: %v", err)
	}
	if len(got) != 1 || got[0].ID != "recent" {
		t.Errorf("week filter = %+v", got)
	}
}

func TestCompleteActivity_ErrorDistinction(t *testing.T) {
	now := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)
	svc, st := newJournalSvc(now)
	ctx := context.Background()

	st.AddBehaviorRecord(domain.BehaviorRecord{
		ID:         "b1",
		Activities: []domain.PlannedActivity{{ID: "a1", Situation: domain.SituationMorning, Activity: "산책"}},
	})

	rec, err := svc.CompleteActivity(ctx, "b1", "a1")
	if err != nil || !rec.Activities[0].Completed {
		t.Fatalf("CompleteActivity = (%+v, %v)", rec, err)
	}
	// Repeat is idempotent.
	if _, err := svc.CompleteActivity(ctx, "b1", "a1"); err != nil {
		t.Fatalf("second completion: %v", err)
	}

	if _, err := svc.CompleteActivity(ctx, "b1", "nope"); !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("missing activity: %v", err)
	}
	if _, err := svc.CompleteActivity(ctx, "nope", "a1"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("missing record: %v", err)
	}
}

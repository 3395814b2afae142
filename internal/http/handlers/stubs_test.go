package handlers

import (
	"context"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/report"
	"github.com/maeum-app/cbt-journal-backend/internal/services"
	"github.com/maeum-app/cbt-journal-backend/internal/sparkline"
)

// ---- stubs to satisfy handlers.New() dependencies ----
//
// Each stub delegates to an optional func field so individual tests only wire
// the call they exercise; unwired calls return zero values.

type stubMoodSvc struct {
	add   func(ctx context.Context, mood int, emoji string) (*domain.MoodEntry, error)
	list  func(ctx context.Context, period services.Period) ([]domain.MoodEntry, error)
	spark func(ctx context.Context, period services.Period, width, height float64) ([]sparkline.Point, error)
}

func (s stubMoodSvc) Add(ctx context.Context, mood int, emoji string) (*domain.MoodEntry, error) {
	if s.add != nil {
		return s.add(ctx, mood, emoji)
	}
	return nil, nil
}

func (s stubMoodSvc) List(ctx context.Context, period services.Period) ([]domain.MoodEntry, error) {
	if s.list != nil {
		return s.list(ctx, period)
	}
	return nil, nil
}

func (s stubMoodSvc) Sparkline(ctx context.Context, period services.Period, width, height float64) ([]sparkline.Point, error) {
	if s.spark != nil {
		return s.spark(ctx, period, width, height)
	}
	return nil, nil
}

type stubJournalSvc struct {
	createThought  func(ctx context.Context, in services.ThoughtInput) (*domain.ThoughtRecord, error)
	listThoughts   func(ctx context.Context, f services.ArchiveFilter) ([]domain.ThoughtRecord, error)
	createBehavior func(ctx context.Context, in services.BehaviorInput) (*domain.BehaviorRecord, error)
	listBehaviors  func(ctx context.Context, f services.ArchiveFilter) ([]domain.BehaviorRecord, error)
	complete       func(ctx context.Context, recordID, activityID string) (*domain.BehaviorRecord, error)
}

func (s stubJournalSvc) CreateThought(ctx context.Context, in services.ThoughtInput) (*domain.ThoughtRecord, error) {
	if s.createThought != nil {
		return s.createThought(ctx, in)
	}
	return nil, nil
}

func (s stubJournalSvc) ListThoughts(ctx context.Context, f services.ArchiveFilter) ([]domain.ThoughtRecord, error) {
	if s.listThoughts != nil {
		return s.listThoughts(ctx, f)
	}
	return nil, nil
}

func (s stubJournalSvc) CreateBehavior(ctx context.Context, in services.BehaviorInput) (*domain.BehaviorRecord, error) {
	if s.createBehavior != nil {
		return s.createBehavior(ctx, in)
	}
	return nil, nil
}

func (s stubJournalSvc) ListBehaviors(ctx context.Context, f services.ArchiveFilter) ([]domain.BehaviorRecord, error) {
	if s.listBehaviors != nil {
		return s.listBehaviors(ctx, f)
	}
	return nil, nil
}

func (s stubJournalSvc) CompleteActivity(ctx context.Context, recordID, activityID string) (*domain.BehaviorRecord, error) {
	if s.complete != nil {
		return s.complete(ctx, recordID, activityID)
	}
	return nil, nil
}

type stubSurveySvc struct {
	submit func(ctx context.Context, answers []int) (*services.SurveyResult, error)
	list   func(ctx context.Context) ([]domain.PHQ9Survey, error)
	due    func(ctx context.Context) (bool, error)
}

func (s stubSurveySvc) Submit(ctx context.Context, answers []int) (*services.SurveyResult, error) {
	if s.submit != nil {
		return s.submit(ctx, answers)
	}
	return nil, nil
}

func (s stubSurveySvc) List(ctx context.Context) ([]domain.PHQ9Survey, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

func (s stubSurveySvc) PromptDue(ctx context.Context) (bool, error) {
	if s.due != nil {
		return s.due(ctx)
	}
	return false, nil
}

type stubReportSvc struct {
	list    func(ctx context.Context) ([]domain.WeeklyReport, services.Progress, error)
	summary func(ctx context.Context, id string) (domain.WeeklyReport, report.Summary, error)
	viewed  func(ctx context.Context, id string) error
}

func (s stubReportSvc) List(ctx context.Context) ([]domain.WeeklyReport, services.Progress, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, services.Progress{}, nil
}

func (s stubReportSvc) Summary(ctx context.Context, id string) (domain.WeeklyReport, report.Summary, error) {
	if s.summary != nil {
		return s.summary(ctx, id)
	}
	return domain.WeeklyReport{}, report.Summary{}, nil
}

func (s stubReportSvc) MarkViewed(ctx context.Context, id string) error {
	if s.viewed != nil {
		return s.viewed(ctx, id)
	}
	return nil
}

type stubFeedSvc struct {
	listPage func(ctx context.Context, page, pageSize int) ([]domain.CommunityPost, int64, error)
	create   func(ctx context.Context, userID, nickname, content string) (*domain.CommunityPost, error)
	toggle   func(ctx context.Context, id string) (*domain.CommunityPost, error)
	del      func(ctx context.Context, userID, id string) error
}

func (s stubFeedSvc) ListPage(ctx context.Context, page, pageSize int) ([]domain.CommunityPost, int64, error) {
	if s.listPage != nil {
		return s.listPage(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (s stubFeedSvc) Create(ctx context.Context, userID, nickname, content string) (*domain.CommunityPost, error) {
	if s.create != nil {
		return s.create(ctx, userID, nickname, content)
	}
	return nil, nil
}

func (s stubFeedSvc) ToggleLike(ctx context.Context, id string) (*domain.CommunityPost, error) {
	if s.toggle != nil {
		return s.toggle(ctx, id)
	}
	return nil, nil
}

func (s stubFeedSvc) Delete(ctx context.Context, userID, id string) error {
	if s.del != nil {
		return s.del(ctx, userID, id)
	}
	return nil
}

type stubDraftSvc struct {
	save  func(ctx context.Context, userID string, kind domain.DraftKind, payload string) (*domain.Draft, error)
	get   func(ctx context.Context, userID string) (*domain.Draft, error)
	clear func(ctx context.Context, userID string) error
}

func (s stubDraftSvc) Save(ctx context.Context, userID string, kind domain.DraftKind, payload string) (*domain.Draft, error) {
	if s.save != nil {
		return s.save(ctx, userID, kind, payload)
	}
	return nil, nil
}

func (s stubDraftSvc) Get(ctx context.Context, userID string) (*domain.Draft, error) {
	if s.get != nil {
		return s.get(ctx, userID)
	}
	return nil, nil
}

func (s stubDraftSvc) Clear(ctx context.Context, userID string) error {
	if s.clear != nil {
		return s.clear(ctx, userID)
	}
	return nil
}

// deps bundles one stub per service so tests override only what they need.
type deps struct {
	mood    stubMoodSvc
	journal stubJournalSvc
	survey  stubSurveySvc
	report  stubReportSvc
	feed    stubFeedSvc
	draft   stubDraftSvc
}

func newTestHandlers(d deps) *Handlers {
	return New(d.mood, d.journal, d.survey, d.report, d.feed, d.draft)
}

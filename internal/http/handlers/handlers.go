// Shared handler wiring for the public API.
//
// This file declares the service contracts consumed by the HTTP layer and the
// Handlers aggregate that binds them. Handlers are transport-thin: they
// validate input, call application services, and translate results (including
// sentinel errors) into HTTP responses.
package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/report"
	"github.com/maeum-app/cbt-journal-backend/internal/services"
	"github.com/maeum-app/cbt-journal-backend/internal/sparkline"
	"github.com/maeum-app/cbt-journal-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// MoodService defines mood check-in operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type MoodService interface {
	// Add records a mood check-in on the 0..10 scale.
	Add(ctx context.Context, mood int, emoji string) (*domain.MoodEntry, error)
	// List returns the most recent entries for the period, oldest first.
	List(ctx context.Context, period services.Period) ([]domain.MoodEntry, error)
	// Sparkline maps the period's entries onto chart coordinates.
	Sparkline(ctx context.Context, period services.Period, width, height float64) ([]sparkline.Point, error)
}

// JournalService defines thought and behavior record operations.
type JournalService interface {
	// CreateThought finalizes a thought record wizard into a record.
	CreateThought(ctx context.Context, in services.ThoughtInput) (*domain.ThoughtRecord, error)
	// ListThoughts returns thought records matching the archive filter.
	ListThoughts(ctx context.Context, f services.ArchiveFilter) ([]domain.ThoughtRecord, error)
	// CreateBehavior finalizes a behavior activation wizard into a record.
	CreateBehavior(ctx context.Context, in services.BehaviorInput) (*domain.BehaviorRecord, error)
	// ListBehaviors returns behavior records matching the archive filter.
	ListBehaviors(ctx context.Context, f services.ArchiveFilter) ([]domain.BehaviorRecord, error)
	// CompleteActivity marks one planned activity as done (idempotent).
	CompleteActivity(ctx context.Context, recordID, activityID string) (*domain.BehaviorRecord, error)
}

// SurveyService defines PHQ-9 screening operations.
type SurveyService interface {
	// Submit scores and records a nine-answer survey.
	Submit(ctx context.Context, answers []int) (*services.SurveyResult, error)
	// List returns all recorded surveys in insertion order.
	List(ctx context.Context) ([]domain.PHQ9Survey, error)
	// PromptDue reports whether the client should re-prompt the survey.
	PromptDue(ctx context.Context) (bool, error)
}

// ReportService defines weekly report operations.
type ReportService interface {
	// List returns all reports plus the current unlock progress.
	List(ctx context.Context) ([]domain.WeeklyReport, services.Progress, error)
	// Summary recomputes the statistics bundle for one report.
	Summary(ctx context.Context, id string) (domain.WeeklyReport, report.Summary, error)
	// MarkViewed records that the user opened the report (idempotent).
	MarkViewed(ctx context.Context, id string) error
}

// CommunityService defines anonymous feed operations.
type CommunityService interface {
	// ListPage returns a page of the feed, newest first, plus the total.
	ListPage(ctx context.Context, page, pageSize int) ([]domain.CommunityPost, int64, error)
	// Create publishes a post for userID under the given nickname.
	Create(ctx context.Context, userID, nickname, content string) (*domain.CommunityPost, error)
	// ToggleLike flips the viewer's like on a post.
	ToggleLike(ctx context.Context, id string) (*domain.CommunityPost, error)
	// Delete removes a post; only the author may delete it.
	Delete(ctx context.Context, userID, id string) error
}

// DraftService defines wizard autosave operations.
type DraftService interface {
	// Save validates and writes the user's draft, replacing any existing one.
	Save(ctx context.Context, userID string, kind domain.DraftKind, payload string) (*domain.Draft, error)
	// Get loads the user's draft.
	Get(ctx context.Context, userID string) (*domain.Draft, error)
	// Clear removes the user's draft (idempotent).
	Clear(ctx context.Context, userID string) error
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for moods, records, surveys, reports,
// the community feed, and the draft. It depends on abstract service
// interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	moodSvc    MoodService
	journalSvc JournalService
	surveySvc  SurveyService
	reportSvc  ReportService
	feedSvc    CommunityService
	draftSvc   DraftService

	// Idempotency store path (optional). When set, state-creating mutations
	// persist their (user, scope, key) result and serve replays from it.
	idemDB  *gorm.DB
	idemTTL time.Duration
}

// New constructs and returns a Handlers instance bound to the given services.
func New(
	moodSvc MoodService,
	journalSvc JournalService,
	surveySvc SurveyService,
	reportSvc ReportService,
	feedSvc CommunityService,
	draftSvc DraftService,
) *Handlers {
	return &Handlers{
		moodSvc:    moodSvc,
		journalSvc: journalSvc,
		surveySvc:  surveySvc,
		reportSvc:  reportSvc,
		feedSvc:    feedSvc,
		draftSvc:   draftSvc,
	}
}

// WithIdempotency enables the idempotency store path for state-creating
// mutations. A TTL <= 0 falls back to 24h.
func (h *Handlers) WithIdempotency(db *gorm.DB, ttl time.Duration) *Handlers {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	h.idemDB = db
	h.idemTTL = ttl
	return h
}

// userID extracts the authenticated user id from Gin context (set by upstream
// middleware). If absent, it falls back to "X-User-ID" header (tests use it),
// and finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

// revisionOf extracts the record-store revision behind a service, when the
// concrete service exposes one. Best effort: callers skip ETag handling when
// this returns false.
func revisionOf(svc any) (uint64, bool) {
	type revisioned interface{ Revision() uint64 }
	switch s := svc.(type) {
	case *services.CommunityService:
		if r, ok := s.Store.(revisioned); ok {
			return r.Revision(), true
		}
	case *services.ReportService:
		if r, ok := s.Store.(revisioned); ok {
			return r.Revision(), true
		}
	}
	return 0, false
}

//
// Shared DTOs
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

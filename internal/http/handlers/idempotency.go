// Idempotency replay for mutating endpoints.
//
// The validator middleware checks the Idempotency-Key header and stashes it;
// the helpers here own the storage side: after a successful mutation the
// (user, scope, key) result is persisted, and a retry with the same key is
// served from the recorded resource instead of re-executing the mutation.
// Scopes mirror the first path segment of each resource so the middleware's
// lookup and the handlers' records agree.
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/http/middleware"
	"github.com/maeum-app/cbt-journal-backend/internal/phq9"
	"github.com/maeum-app/cbt-journal-backend/internal/repo"
	"github.com/maeum-app/cbt-journal-backend/internal/services"
)

// Idempotency scopes, one per mutated resource family.
const (
	moodScope     = "moods"
	thoughtScope  = "thoughts"
	behaviorScope = "behaviors"
	surveyScope   = "surveys"
	feedScope     = "feed"
)

// replayMutation serves a previously completed mutation when the client
// retries with the same Idempotency-Key. resourceID overrides the recorded
// resource id when the route already names it (e.g. like toggles); fetch
// resolves the id to the response body. Best effort: any miss falls through
// to normal processing.
func (h *Handlers) replayMutation(c *gin.Context, scope, resourceID string, fetch func(id string) (any, bool)) bool {
	idemKey, _ := middleware.GetIdempotencyKey(c)
	if idemKey == "" || h.idemDB == nil {
		return false
	}
	rec, err := repo.GetIdempotency(c.Request.Context(), h.idemDB, userID(c), scope, idemKey, time.Now().UTC())
	if err != nil || rec == nil {
		return false
	}
	id := resourceID
	if id == "" {
		id = rec.ResourceID
	}
	body, found := fetch(id)
	if !found {
		return false
	}
	c.Header("Idempotency-Replayed", "true")
	ok(c, rec.Status, body)
	return true
}

// storeMutation records a completed mutation for later replay. Best effort.
func (h *Handlers) storeMutation(c *gin.Context, scope, resourceID string, status int) {
	idemKey, _ := middleware.GetIdempotencyKey(c)
	if idemKey == "" || h.idemDB == nil {
		return
	}
	_, _ = repo.CreateIdempotency(c.Request.Context(), h.idemDB, userID(c), scope, idemKey, resourceID, status, h.idemTTL)
}

//
// Per-resource fetchers. Each reaches through the concrete service to the
// record store; a non-concrete service (tests with stubs) simply misses and
// the mutation runs normally.
//

func (h *Handlers) fetchMoodEntry(id string) (any, bool) {
	svc, okSvc := h.moodSvc.(*services.MoodService)
	if !okSvc {
		return nil, false
	}
	st, okSt := svc.Store.(interface {
		MoodEntry(id string) (domain.MoodEntry, bool)
	})
	if !okSt {
		return nil, false
	}
	e, found := st.MoodEntry(id)
	if !found {
		return nil, false
	}
	return e, true
}

func (h *Handlers) fetchThoughtRecord(id string) (any, bool) {
	svc, okSvc := h.journalSvc.(*services.JournalService)
	if !okSvc {
		return nil, false
	}
	st, okSt := svc.Store.(interface {
		ThoughtRecord(id string) (domain.ThoughtRecord, bool)
	})
	if !okSt {
		return nil, false
	}
	r, found := st.ThoughtRecord(id)
	if !found {
		return nil, false
	}
	return r, true
}

func (h *Handlers) fetchBehaviorRecord(id string) (any, bool) {
	svc, okSvc := h.journalSvc.(*services.JournalService)
	if !okSvc {
		return nil, false
	}
	st, okSt := svc.Store.(interface {
		BehaviorRecord(id string) (domain.BehaviorRecord, bool)
	})
	if !okSt {
		return nil, false
	}
	r, found := st.BehaviorRecord(id)
	if !found {
		return nil, false
	}
	return r, true
}

// fetchSurveyResult rebuilds the original submission response from the stored
// survey; severity and percent are pure functions of the score.
func (h *Handlers) fetchSurveyResult(id string) (any, bool) {
	svc, okSvc := h.surveySvc.(*services.SurveyService)
	if !okSvc {
		return nil, false
	}
	st, okSt := svc.Store.(interface {
		PHQ9Survey(id string) (domain.PHQ9Survey, bool)
	})
	if !okSt {
		return nil, false
	}
	v, found := st.PHQ9Survey(id)
	if !found {
		return nil, false
	}
	return &services.SurveyResult{
		Survey:   v,
		Severity: phq9.SeverityFor(v.Score),
		Percent:  phq9.Percent(v.Score),
	}, true
}

func (h *Handlers) fetchCommunityPost(id string) (any, bool) {
	svc, okSvc := h.feedSvc.(*services.CommunityService)
	if !okSvc {
		return nil, false
	}
	post, found := svc.Store.CommunityPost(id)
	if !found {
		return nil, false
	}
	return post, true
}

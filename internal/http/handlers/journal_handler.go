// Journal HTTP handlers.
//
// This file exposes REST endpoints for the two CBT record types:
//   - POST /thoughts                                        (finalize thought record)
//   - GET  /thoughts                                        (archive listing)
//   - POST /behaviors                                       (finalize behavior record)
//   - GET  /behaviors                                       (archive listing)
//   - PUT  /behaviors/{id}/activities/{activityID}/completion
//
// Archive listings accept filter=all|week|month|custom plus start/end dates
// for the custom range.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maeum-app/cbt-journal-backend/internal/services"
)

// archiveFilter parses the archive query params into a services.ArchiveFilter.
// Date parsing errors surface as ErrInvalidRange downstream by leaving the
// zero time in place; an explicitly malformed date is rejected here.
func archiveFilter(c *gin.Context) (services.ArchiveFilter, bool) {
	f := services.ArchiveFilter{Range: c.Query("filter")}
	for _, q := range []struct {
		name string
		dst  *time.Time
	}{
		{"start", &f.Start},
		{"end", &f.End},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			t, err = time.Parse("2006-01-02", raw)
		}
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, q.name+" must be RFC3339 or YYYY-MM-DD")
			return f, false
		}
		*q.dst = t
	}
	return f, true
}

// failArchive maps archive filter errors onto HTTP responses.
func failArchive(c *gin.Context, err error) {
	switch err {
	case services.ErrInvalidFilter:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "filter must be all, week, month, or custom")
	case services.ErrInvalidRange:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "custom filter needs start before end")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
	}
}

// CreateThought godoc
// @ID          createThought
// @Summary     Finalize a thought record
// @Description Validates the finished thought record wizard and appends it to the archive.
// @Tags        Journal
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    services.ThoughtInput  true  "Thought record payload"
//
// @Success     201  {object}  domain.ThoughtRecord
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /thoughts [post]
func (h *Handlers) CreateThought(c *gin.Context) {
	var req services.ThoughtInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	// Idempotency (replay path) - serve the previously created record.
	if h.replayMutation(c, thoughtScope, "", h.fetchThoughtRecord) {
		return
	}

	rec, err := h.journalSvc.CreateThought(c.Request.Context(), req)
	if err != nil {
		switch err {
		case services.ErrEmptySituation:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "situation required")
		case services.ErrInvalidEmotion:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "at least one emotion with intensity 1-10 required")
		case services.ErrNoDistortions:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "at least one cognitive distortion required")
		case services.ErrEmptyAlternative:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "alternative thought required")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	// Idempotency (store path) - best effort.
	h.storeMutation(c, thoughtScope, rec.ID, http.StatusCreated)

	ok(c, http.StatusCreated, rec)
}

// ListThoughts godoc
// @ID          listThoughts
// @Summary     List thought records
// @Description Returns archived thought records matching the date filter, oldest first.
// @Tags        Journal
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"    example(user123)
// @Param       filter     query   string  false "all | week | month | custom"  default(all)
// @Param       start      query   string  false "Custom range start (RFC3339 or YYYY-MM-DD)"
// @Param       end        query   string  false "Custom range end, exclusive"
//
// @Success     200  {array}   domain.ThoughtRecord
// @Failure     400  {object}  handlers.ErrorResponse  "Bad filter"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /thoughts [get]
func (h *Handlers) ListThoughts(c *gin.Context) {
	f, okf := archiveFilter(c)
	if !okf {
		return
	}
	recs, err := h.journalSvc.ListThoughts(c.Request.Context(), f)
	if err != nil {
		failArchive(c, err)
		return
	}
	ok(c, http.StatusOK, recs)
}

// CreateBehavior godoc
// @ID          createBehavior
// @Summary     Finalize a behavior activation record
// @Description Validates the finished behavior wizard (daypart moods plus planned activities) and appends it.
// @Tags        Journal
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    services.BehaviorInput  true  "Behavior record payload"
//
// @Success     201  {object}  domain.BehaviorRecord
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /behaviors [post]
func (h *Handlers) CreateBehavior(c *gin.Context) {
	var req services.BehaviorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	// Idempotency (replay path) - serve the previously created record.
	if h.replayMutation(c, behaviorScope, "", h.fetchBehaviorRecord) {
		return
	}

	rec, err := h.journalSvc.CreateBehavior(c.Request.Context(), req)
	if err != nil {
		switch err {
		case services.ErrInvalidMood:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "daypart moods must be between 0 and 10")
		case services.ErrInvalidActivity:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "each activity needs a valid daypart and text")
		case services.ErrTooManyActivities:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "at most 3 activities per daypart")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	// Idempotency (store path) - best effort.
	h.storeMutation(c, behaviorScope, rec.ID, http.StatusCreated)

	ok(c, http.StatusCreated, rec)
}

// ListBehaviors godoc
// @ID          listBehaviors
// @Summary     List behavior activation records
// @Description Returns archived behavior records matching the date filter, oldest first.
// @Tags        Journal
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"    example(user123)
// @Param       filter     query   string  false "all | week | month | custom"  default(all)
// @Param       start      query   string  false "Custom range start (RFC3339 or YYYY-MM-DD)"
// @Param       end        query   string  false "Custom range end, exclusive"
//
// @Success     200  {array}   domain.BehaviorRecord
// @Failure     400  {object}  handlers.ErrorResponse  "Bad filter"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /behaviors [get]
func (h *Handlers) ListBehaviors(c *gin.Context) {
	f, okf := archiveFilter(c)
	if !okf {
		return
	}
	recs, err := h.journalSvc.ListBehaviors(c.Request.Context(), f)
	if err != nil {
		failArchive(c, err)
		return
	}
	ok(c, http.StatusOK, recs)
}

// CompleteActivity godoc
// @ID          completeActivity
// @Summary     Mark a planned activity as done
// @Description Marks one planned activity within a behavior record as completed. Idempotent.
// @Tags        Journal
// @Produce     json
//
// @Param       X-User-ID   header  string  false "User ID (demo header)"  example(user123)
// @Param       id          path    string  true  "Behavior record ID"
// @Param       activityID  path    string  true  "Planned activity ID"
//
// @Success     200  {object}  domain.BehaviorRecord
// @Failure     404  {object}  handlers.ErrorResponse  "Record or activity not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /behaviors/{id}/activities/{activityID}/completion [put]
func (h *Handlers) CompleteActivity(c *gin.Context) {
	rec, err := h.journalSvc.CompleteActivity(c.Request.Context(), c.Param("id"), c.Param("activityID"))
	if err != nil {
		switch err {
		case services.ErrRecordNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "behavior record not found")
		case services.ErrActivityNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "activity not found in record")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, rec)
}

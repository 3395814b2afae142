// Mood HTTP handlers.
//
// This file exposes REST endpoints for daily mood check-ins:
//   - POST /moods            (create)
//   - GET  /moods            (list by period)
//   - GET  /moods/sparkline  (chart coordinates for the home screen)
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maeum-app/cbt-journal-backend/internal/services"
)

// CreateMoodRequest is the JSON payload for recording a mood check-in.
type CreateMoodRequest struct {
	// Mood is the check-in value on the 0..10 scale. Pointer so that a
	// legitimate 0 survives the required binding.
	Mood *int `json:"mood" binding:"required" example:"7"`
	// Emoji optionally overrides the emoji derived from the mood value.
	Emoji string `json:"emoji,omitempty" example:"😊"`
}

// CreateMood godoc
// @ID          createMood
// @Summary     Record a mood check-in
// @Description Records today's mood on the 0..10 scale and returns the stored entry.
// @Tags        Moods
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.CreateMoodRequest  true  "Mood payload"
//
// @Success     201  {object}  domain.MoodEntry
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /moods [post]
func (h *Handlers) CreateMood(c *gin.Context) {
	var req CreateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Mood == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "mood required (0-10)")
		return
	}

	// Idempotency (replay path) - serve the previously recorded entry.
	if h.replayMutation(c, moodScope, "", h.fetchMoodEntry) {
		return
	}

	entry, err := h.moodSvc.Add(c.Request.Context(), *req.Mood, req.Emoji)
	if err != nil {
		switch err {
		case services.ErrInvalidMood:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "mood must be between 0 and 10")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	// Idempotency (store path) - best effort.
	h.storeMutation(c, moodScope, entry.ID, http.StatusCreated)

	ok(c, http.StatusCreated, entry)
}

// ListMoods godoc
// @ID          listMoods
// @Summary     List mood check-ins
// @Description Returns the most recent check-ins for the requested period, oldest first.
// @Tags        Moods
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       period     query   string  false "daily | weekly | monthly"  default(daily)
//
// @Success     200  {array}   domain.MoodEntry
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown period"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /moods [get]
func (h *Handlers) ListMoods(c *gin.Context) {
	entries, err := h.moodSvc.List(c.Request.Context(), services.Period(c.Query("period")))
	if err != nil {
		switch err {
		case services.ErrInvalidPeriod:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "period must be daily, weekly, or monthly")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, entries)
}

// MoodSparkline godoc
// @ID          moodSparkline
// @Summary     Mood sparkline coordinates
// @Description Maps the period's check-ins onto chart coordinates for the given canvas size.
// @Tags        Moods
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       period     query   string  false "daily | weekly | monthly"  default(daily)
// @Param       width      query   number  false "Canvas width (defaults when omitted)"
// @Param       height     query   number  false "Canvas height (defaults when omitted)"
//
// @Success     200  {array}   sparkline.Point
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown period"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /moods/sparkline [get]
func (h *Handlers) MoodSparkline(c *gin.Context) {
	width := floatQuery(c, "width")
	height := floatQuery(c, "height")

	points, err := h.moodSvc.Sparkline(c.Request.Context(), services.Period(c.Query("period")), width, height)
	if err != nil {
		switch err {
		case services.ErrInvalidPeriod:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "period must be daily, weekly, or monthly")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, points)
}

// floatQuery parses a float query param; unparseable or absent values yield 0
// so the service can substitute its defaults.
func floatQuery(c *gin.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return 0
	}
	return v
}

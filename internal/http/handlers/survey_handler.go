// Survey HTTP handlers.
//
// This file exposes REST endpoints for PHQ-9 screening:
//   - POST /surveys         (submit answers, returns score + severity)
//   - GET  /surveys         (history)
//   - GET  /surveys/prompt  (should the client re-prompt?)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maeum-app/cbt-journal-backend/internal/phq9"
)

// SubmitSurveyRequest is the JSON payload for submitting a PHQ-9 survey.
type SubmitSurveyRequest struct {
	// Answers holds the nine item responses, each 0..3.
	Answers []int `json:"answers" binding:"required" example:"2,1,0,1,2,1,0,1,1"`
}

// SurveyPromptResponse reports whether the client should surface the survey.
type SurveyPromptResponse struct {
	Due bool `json:"due"`
}

// SubmitSurvey godoc
// @ID          submitSurvey
// @Summary     Submit a PHQ-9 survey
// @Description Scores the nine answers, stores the survey, and returns it with severity and percent.
// @Tags        Surveys
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.SubmitSurveyRequest  true  "Nine answers, each 0-3"
//
// @Success     201  {object}  services.SurveyResult
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid answers"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /surveys [post]
func (h *Handlers) SubmitSurvey(c *gin.Context) {
	var req SubmitSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answers required")
		return
	}

	// Idempotency (replay path) - rebuild the previous submission response.
	if h.replayMutation(c, surveyScope, "", h.fetchSurveyResult) {
		return
	}

	res, err := h.surveySvc.Submit(c.Request.Context(), req.Answers)
	if err != nil {
		switch err {
		case phq9.ErrAnswerCount:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "exactly 9 answers required")
		case phq9.ErrAnswerRange:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answers must be between 0 and 3")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	// Idempotency (store path) - best effort.
	h.storeMutation(c, surveyScope, res.Survey.ID, http.StatusCreated)

	ok(c, http.StatusCreated, res)
}

// ListSurveys godoc
// @ID          listSurveys
// @Summary     List PHQ-9 surveys
// @Description Returns all recorded surveys in submission order.
// @Tags        Surveys
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {array}   domain.PHQ9Survey
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /surveys [get]
func (h *Handlers) ListSurveys(c *gin.Context) {
	surveys, err := h.surveySvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, surveys)
}

// SurveyPrompt godoc
// @ID          surveyPrompt
// @Summary     Survey re-prompt check
// @Description Reports whether the client should re-prompt the PHQ-9 survey based on activity since the last one.
// @Tags        Surveys
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object}  handlers.SurveyPromptResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /surveys/prompt [get]
func (h *Handlers) SurveyPrompt(c *gin.Context) {
	due, err := h.surveySvc.PromptDue(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, SurveyPromptResponse{Due: due})
}

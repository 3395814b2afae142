// Draft HTTP handlers.
//
// This file exposes REST endpoints for the single autosaved wizard draft:
//   - GET    /draft  (load)
//   - PUT    /draft  (save or replace)
//   - DELETE /draft  (clear, idempotent)
//
// The draft payload is opaque JSON: partial wizard state is stored verbatim
// and never validated against the finalization rules.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/services"
)

// SaveDraftRequest is the JSON payload for saving the wizard draft.
type SaveDraftRequest struct {
	// Kind identifies which wizard the draft belongs to: thought or behavior.
	Kind string `json:"kind" binding:"required" example:"thought"`
	// Payload is the raw wizard state, stored as-is.
	Payload json.RawMessage `json:"payload" binding:"required"`
}

// GetDraft godoc
// @ID          getDraft
// @Summary     Load the wizard draft
// @Description Returns the user's autosaved wizard state, if any.
// @Tags        Draft
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object} domain.Draft
// @Failure     404  {object} handlers.ErrorResponse "No draft saved"
// @Failure     409  {object} handlers.ErrorResponse "Stored draft is corrupt"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /draft [get]
func (h *Handlers) GetDraft(c *gin.Context) {
	d, err := h.draftSvc.Get(c.Request.Context(), userID(c))
	if err != nil {
		switch err {
		case services.ErrDraftNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "no draft saved")
		case services.ErrDraftCorrupt:
			fail(c, http.StatusConflict, ErrCodeConflict, "stored draft is corrupt; clear it and start over")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, d)
}

// SaveDraft godoc
// @ID          saveDraft
// @Summary     Save the wizard draft
// @Description Saves or replaces the user's autosaved wizard state. One draft per user.
// @Tags        Draft
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.SaveDraftRequest  true  "Draft payload"
//
// @Success     200  {object} domain.Draft
// @Failure     400  {object} handlers.ErrorResponse "Bad kind or payload"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /draft [put]
func (h *Handlers) SaveDraft(c *gin.Context) {
	var req SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "kind and payload required")
		return
	}

	d, err := h.draftSvc.Save(c.Request.Context(), userID(c), domain.DraftKind(req.Kind), string(req.Payload))
	if err != nil {
		switch err {
		case services.ErrInvalidDraftKind:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "kind must be thought or behavior")
		case services.ErrInvalidDraftPayload:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "payload must be valid JSON")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, d)
}

// DeleteDraft godoc
// @ID          deleteDraft
// @Summary     Clear the wizard draft
// @Description Removes the user's autosaved wizard state. Clearing a missing draft succeeds.
// @Tags        Draft
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     204  {string} string "No Content"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /draft [delete]
func (h *Handlers) DeleteDraft(c *gin.Context) {
	if err := h.draftSvc.Clear(c.Request.Context(), userID(c)); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

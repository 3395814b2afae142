// Report HTTP handlers.
//
// This file exposes REST endpoints for weekly analytic reports:
//   - GET  /reports              (list, with unlock progress, ETag support)
//   - GET  /reports/{id}/summary (derived statistics bundle)
//   - POST /reports/{id}/viewed  (mark opened)
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/report"
	"github.com/maeum-app/cbt-journal-backend/internal/services"
)

// ListReportsResponse wraps the report list and the unlock progress.
type ListReportsResponse struct {
	Reports  []domain.WeeklyReport `json:"reports"`
	Progress services.Progress     `json:"progress"`
}

// ReportSummaryResponse pairs a report with its derived statistics.
type ReportSummaryResponse struct {
	Report  domain.WeeklyReport `json:"report"`
	Summary report.Summary      `json:"summary"`
}

// ListReports godoc
// @ID          listReports
// @Summary     List weekly reports
// @Description Returns all generated reports plus the unlock progress. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Reports
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID (demo header)"       example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"reports:42\")
//
// @Success     200  {object} handlers.ListReportsResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /reports [get]
func (h *Handlers) ListReports(c *gin.Context) {
	// ETag pre-check (best effort).
	if rev, okRev := revisionOf(h.reportSvc); okRev {
		etag := fmt.Sprintf(`W/"reports:%d"`, rev)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	reports, progress, err := h.reportSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListReportsResponse{Reports: reports, Progress: progress})
}

// ReportSummary godoc
// @ID          reportSummary
// @Summary     Weekly report summary
// @Description Recomputes the statistics bundle (PHQ-9 trend, emotion/distortion frequencies, behavior insights) for one report.
// @Tags        Reports
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Report ID"
//
// @Success     200  {object} handlers.ReportSummaryResponse
// @Failure     404  {object} handlers.ErrorResponse "Report not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /reports/{id}/summary [get]
func (h *Handlers) ReportSummary(c *gin.Context) {
	rpt, sum, err := h.reportSvc.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case services.ErrReportNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "report not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, ReportSummaryResponse{Report: rpt, Summary: sum})
}

// MarkReportViewed godoc
// @ID          markReportViewed
// @Summary     Mark a report as viewed
// @Description Records that the user opened the report. Idempotent.
// @Tags        Reports
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Report ID"
//
// @Success     204  {string} string "No Content"
// @Failure     404  {object} handlers.ErrorResponse "Report not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /reports/{id}/viewed [post]
func (h *Handlers) MarkReportViewed(c *gin.Context) {
	if err := h.reportSvc.MarkViewed(c.Request.Context(), c.Param("id")); err != nil {
		switch err {
		case services.ErrReportNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "report not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, idempotency, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/maeum-app/cbt-journal-backend/internal/config"
	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/eligibility"
	"github.com/maeum-app/cbt-journal-backend/internal/http/handlers"
	"github.com/maeum-app/cbt-journal-backend/internal/http/middleware"
	"github.com/maeum-app/cbt-journal-backend/internal/repo"
	"github.com/maeum-app/cbt-journal-backend/internal/services"
	"github.com/maeum-app/cbt-journal-backend/internal/store"
)

// draftRepoShim adapts the repository free functions to the services.DraftRepo
// interface expected by the DraftService. This keeps services decoupled from
// the concrete repo package while reusing existing functions.
type draftRepoShim struct{}

// UpsertDraft proxies repo.UpsertDraft.
func (draftRepoShim) UpsertDraft(ctx context.Context, db *gorm.DB, userID string, kind domain.DraftKind, payload string) (*domain.Draft, error) {
	return repo.UpsertDraft(ctx, db, userID, kind, payload)
}

// GetDraft proxies repo.GetDraft.
func (draftRepoShim) GetDraft(ctx context.Context, db *gorm.DB, userID string) (*domain.Draft, error) {
	return repo.GetDraft(ctx, db, userID)
}

// DeleteDraft proxies repo.DeleteDraft.
func (draftRepoShim) DeleteDraft(ctx context.Context, db *gorm.DB, userID string) error {
	return repo.DeleteDraft(ctx, db, userID)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), idempotency and rate
// limiting, CORS and security headers, health and metrics endpoints, and then
// mounts the versioned public API under /api/v*.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Idempotency validator (before rate limiter to allow bypass on replay)
//  8. Rate limiter (per user/IP, bypass on replay)
//  9. CORS and Security headers, gzip for responses
func RegisterRoutes(r *gin.Engine, db *gorm.DB, st *store.Store, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Idempotency validation (before rate limiting)
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			MaxLen:   200,
			BasePath: cfg.APIBasePath,
		},
		func(ctx context.Context, userID, scope, key string, now time.Time) (bool, error) {
			rec, err := repo.GetIdempotency(ctx, db, userID, scope, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))

	// 8) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Compress list-heavy responses
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (off by default)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← store/db
	th := eligibility.Thresholds{
		MinMoodEntries: cfg.Eligibility.MinMoodEntries,
		MinCBTRecords:  cfg.Eligibility.MinCBTRecords,
		ResurveyDays:   cfg.Eligibility.ResurveyDays,
	}
	moodSvc := services.NewMoodService(st)
	journalSvc := services.NewJournalService(st)
	surveySvc := services.NewSurveyService(st, th)
	reportSvc := services.NewReportService(st, th)
	feedSvc := services.NewCommunityService(st)
	draftSvc := services.NewDraftService(db, draftRepoShim{})
	h := handlers.New(moodSvc, journalSvc, surveySvc, reportSvc, feedSvc, draftSvc).
		WithIdempotency(db, cfg.IdempotencyTTL)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Moods
		api.POST("/moods", h.CreateMood)
		api.GET("/moods", h.ListMoods)
		api.GET("/moods/sparkline", h.MoodSparkline)

		// Journal
		api.POST("/thoughts", h.CreateThought)
		api.GET("/thoughts", h.ListThoughts)
		api.POST("/behaviors", h.CreateBehavior)
		api.GET("/behaviors", h.ListBehaviors)
		api.PUT("/behaviors/:id/activities/:activityID/completion", h.CompleteActivity)

		// Surveys
		api.POST("/surveys", h.SubmitSurvey)
		api.GET("/surveys", h.ListSurveys)
		api.GET("/surveys/prompt", h.SurveyPrompt)

		// Reports
		api.GET("/reports", h.ListReports)
		api.GET("/reports/:id/summary", h.ReportSummary)
		api.POST("/reports/:id/viewed", h.MarkReportViewed)

		// Community feed
		api.GET("/feed", h.ListFeed)
		api.POST("/feed", h.CreatePost)
		api.POST("/feed/:id/like", h.ToggleLike)
		api.DELETE("/feed/:id", h.DeletePost)

		// Draft
		api.GET("/draft", h.GetDraft)
		api.PUT("/draft", h.SaveDraft)
		api.DELETE("/draft", h.DeleteDraft)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}

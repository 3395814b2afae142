// Package services – DraftService
//
// This file implements the DraftService, the only service backed by the
// SQLite layer. It guards the single autosaved wizard state per user: saving
// validates the kind and that the payload is well-formed JSON, loading
// re-checks the payload so a corrupt row surfaces as ErrDraftCorrupt instead
// of a parse failure downstream, and clearing is idempotent. The payload's
// shape beyond JSON well-formedness is deliberately unchecked; partial wizard
// state never has to satisfy finalization rules.
package services

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
)

// DraftRepo defines the repository contract required by DraftService.
type DraftRepo interface {
	UpsertDraft(ctx context.Context, db *gorm.DB, userID string, kind domain.DraftKind, payload string) (*domain.Draft, error)
	GetDraft(ctx context.Context, db *gorm.DB, userID string) (*domain.Draft, error)
	DeleteDraft(ctx context.Context, db *gorm.DB, userID string) error
}

// DraftService persists and restores the wizard autosave.
type DraftService struct {
	DB   *gorm.DB
	Repo DraftRepo
}

// NewDraftService constructs a DraftService.
func NewDraftService(db *gorm.DB, r DraftRepo) *DraftService {
	return &DraftService{DB: db, Repo: r}
}

// Save validates and writes the user's draft, replacing any existing one.
func (s *DraftService) Save(ctx context.Context, userID string, kind domain.DraftKind, payload string) (*domain.Draft, error) {
	if !kind.Valid() {
		return nil, ErrInvalidDraftKind
	}
	if !json.Valid([]byte(payload)) {
		return nil, ErrInvalidDraftPayload
	}
	return s.Repo.UpsertDraft(ctx, s.DB, userID, kind, payload)
}

// Get loads the user's draft. A stored payload that is no longer valid JSON
// yields ErrDraftCorrupt; the caller should clear and start over.
func (s *DraftService) Get(ctx context.Context, userID string) (*domain.Draft, error) {
	d, err := s.Repo.GetDraft(ctx, s.DB, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}
	if !d.Kind.Valid() || !json.Valid([]byte(d.Payload)) {
		return nil, ErrDraftCorrupt
	}
	return d, nil
}

// Clear removes the user's draft. Clearing a missing draft succeeds.
func (s *DraftService) Clear(ctx context.Context, userID string) error {
	return s.Repo.DeleteDraft(ctx, s.DB, userID)
}

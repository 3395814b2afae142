// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Draft
// model: the single autosaved wizard state per user.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When no draft exists for a user, GetDraft returns ErrNotFound.
//   - On DB errors the raw gorm error is propagated.
//
// There is at most one draft row per user. UpsertDraft replaces any existing
// row wholesale, so saving a behavior draft over a thought draft simply
// overwrites it. Payload validity (well-formed JSON, matching kind) is the
// service layer's concern.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// UpsertDraft writes the user's draft, replacing any existing one regardless
// of kind. UpdatedAt is set to UTC now.
func UpsertDraft(ctx context.Context, db *gorm.DB, userID string, kind domain.DraftKind, payload string) (*domain.Draft, error) {
	d := &domain.Draft{
		UserID:    userID,
		Kind:      kind,
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(d).Error
	if err != nil {
		return nil, err
	}
	return d, nil
}

// GetDraft fetches the user's draft, or ErrNotFound when none is saved.
func GetDraft(ctx context.Context, db *gorm.DB, userID string) (*domain.Draft, error) {
	var d domain.Draft
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDraft removes the user's draft. Deleting a missing draft is not an
// error; clearing is idempotent.
func DeleteDraft(ctx context.Context, db *gorm.DB, userID string) error {
	return db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.Draft{}).Error
}

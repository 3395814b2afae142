// Package domain defines the core records of the CBT journaling application.
// This file contains the Draft model, the single persisted wizard state,
// mapped with GORM onto SQLite.
package domain

import "time"

// DraftKind discriminates which wizard a draft belongs to.
type DraftKind string

// Known draft kinds.
const (
	DraftKindThought  DraftKind = "thought"
	DraftKindBehavior DraftKind = "behavior"
)

// Valid reports whether k is a known draft kind.
func (k DraftKind) Valid() bool {
	return k == DraftKindThought || k == DraftKindBehavior
}

// Draft is the one persisted key of the application: a partial thought or
// behavior record, saved on every material wizard change and cleared when the
// record is finalized. One row per user, last write wins, no conflict
// detection.
//
// Payload is the raw JSON of the partial record. It is validated as
// well-formed JSON on save; a corrupt row surfaces as a service error on load
// instead of propagating a parse failure.
type Draft struct {
	UserID    string    `json:"user_id"    gorm:"type:TEXT NOT NULL;primaryKey"`
	Kind      DraftKind `json:"kind"       gorm:"type:TEXT NOT NULL;check:kind IN ('thought','behavior')"`
	Payload   string    `json:"payload"    gorm:"type:TEXT NOT NULL"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Draft.
func (Draft) TableName() string { return "drafts" }

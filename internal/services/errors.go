// Package services defines the business logic for mood tracking, journaling,
// screening, reports, the community feed, and the draft autosave. This file
// centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

// Mood-related errors.
var (
	// ErrInvalidMood is returned when a mood value is outside the 0..10 scale.
	ErrInvalidMood = errors.New("mood must be between 0 and 10")

	// ErrInvalidPeriod is returned when a mood listing period is not one of
	// the closed set daily, weekly, monthly.
	ErrInvalidPeriod = errors.New("period must be daily, weekly or monthly")
)

// Journal-related errors.
var (
	// ErrEmptySituation is returned when a thought record is finalized
	// without a situation description.
	ErrEmptySituation = errors.New("situation is required")

	// ErrInvalidEmotion is returned when a thought record carries no emotion,
	// an unnamed emotion, or an intensity outside 1..10.
	ErrInvalidEmotion = errors.New("at least one emotion with intensity between 1 and 10 is required")

	// ErrNoDistortions is returned when a thought record is finalized without
	// selecting a cognitive distortion.
	ErrNoDistortions = errors.New("at least one cognitive distortion is required")

	// ErrEmptyAlternative is returned when a thought record is finalized
	// without an alternative thought.
	ErrEmptyAlternative = errors.New("alternative thought is required")

	// ErrInvalidActivity is returned when a planned activity has an unknown
	// daypart or no activity text.
	ErrInvalidActivity = errors.New("activity needs a valid daypart and a description")

	// ErrTooManyActivities is returned when more than three activities are
	// planned for a single daypart.
	ErrTooManyActivities = errors.New("at most three activities per daypart")

	// ErrInvalidFilter is returned when an archive filter is not one of the
	// closed set all, week, month, custom.
	ErrInvalidFilter = errors.New("filter must be all, week, month or custom")

	// ErrInvalidRange is returned when a custom archive filter has no usable
	// start/end bounds.
	ErrInvalidRange = errors.New("custom filter requires start and end")

	// ErrRecordNotFound indicates that the requested behavior record does not
	// exist.
	ErrRecordNotFound = errors.New("behavior record not found")

	// ErrActivityNotFound indicates that the behavior record exists but holds
	// no activity with the requested ID.
	ErrActivityNotFound = errors.New("activity not found")
)

// Report-related errors.
var (
	// ErrReportNotFound indicates that the requested weekly report does not
	// exist.
	ErrReportNotFound = errors.New("report not found")

	// ErrNotEligible is returned when report generation is requested before
	// the record thresholds are met.
	ErrNotEligible = errors.New("not enough records to generate a report")
)

// Community-related errors.
var (
	// ErrPostNotFound indicates that the requested community post does not
	// exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrForbidden is returned when a user attempts to delete a post they do
	// not own.
	ErrForbidden = errors.New("not the author of this post")

	// ErrEmptyContent is returned when a post is created without content.
	ErrEmptyContent = errors.New("content is required")

	// ErrContentTooLong is returned when post content exceeds the maximum
	// configured length limit.
	ErrContentTooLong = errors.New("content too long")
)

// Draft-related errors.
var (
	// ErrInvalidDraftKind is returned when a draft kind is neither thought
	// nor behavior.
	ErrInvalidDraftKind = errors.New("draft kind must be thought or behavior")

	// ErrInvalidDraftPayload is returned when a draft payload is not
	// well-formed JSON.
	ErrInvalidDraftPayload = errors.New("draft payload must be valid JSON")

	// ErrDraftNotFound indicates that the user has no saved draft.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrDraftCorrupt is returned when a stored draft payload can no longer
	// be parsed. The caller should clear the draft and start over.
	ErrDraftCorrupt = errors.New("saved draft is corrupt")
)

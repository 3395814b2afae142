// Package eligibility implements the two feature-gating predicates of the
// journaling application: whether the user has recorded enough to unlock the
// weekly report feature, and whether it is time to re-prompt for a PHQ-9
// survey. Both are pure functions of the current record counts and the
// wall-clock time; clients pass time.Now() in so tests stay deterministic.
package eligibility

import "time"

// Default gating thresholds.
const (
	DefaultMinMoodEntries = 7
	DefaultMinCBTRecords  = 7
	DefaultResurveyDays   = 14
)

// Thresholds configures the gating rules. Zero values are not meaningful;
// construct with Default() and override as needed.
type Thresholds struct {
	// MinMoodEntries is the lifetime mood-entry count required for unlock.
	MinMoodEntries int
	// MinCBTRecords is the required lifetime count of thought plus behavior
	// records combined.
	MinCBTRecords int
	// ResurveyDays is the number of days after the most recent PHQ-9 survey
	// before a re-prompt fires. The comparison is strict: a survey exactly
	// ResurveyDays old does not trigger.
	ResurveyDays int
}

// Default returns the production thresholds: 7 mood entries, 7 CBT records,
// 14 days between surveys.
func Default() Thresholds {
	return Thresholds{
		MinMoodEntries: DefaultMinMoodEntries,
		MinCBTRecords:  DefaultMinCBTRecords,
		ResurveyDays:   DefaultResurveyDays,
	}
}

// ReportUnlocked reports whether the weekly report feature is available.
//
// The counts are cumulative lifetime totals that never reset; once unlocked
// the feature stays unlocked. Both boundaries are inclusive: 7 and 7 unlock.
func (t Thresholds) ReportUnlocked(moodCount, cbtCount int) bool {
	return moodCount >= t.MinMoodEntries && cbtCount >= t.MinCBTRecords
}

// ResurveyDue reports whether the PHQ-9 re-prompt should be surfaced.
//
// It requires the same record counts as the report unlock, plus more than
// ResurveyDays elapsed since lastSurvey. A nil lastSurvey means no survey
// exists yet and is treated as infinitely long ago, so the prompt fires as
// soon as the counts are met.
//
// The prompt is recomputed on every evaluation; dismissal is a client-side,
// session-scoped concern and is deliberately not persisted here.
func (t Thresholds) ResurveyDue(moodCount, cbtCount int, lastSurvey *time.Time, now time.Time) bool {
	if !t.ReportUnlocked(moodCount, cbtCount) {
		return false
	}
	if lastSurvey == nil {
		return true
	}
	days := now.Sub(*lastSurvey).Hours() / 24
	return days > float64(t.ResurveyDays)
}

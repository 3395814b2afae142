// Package phq9 implements scoring and severity bucketing for the PHQ-9
// depression questionnaire. It is intentionally small and dependency-free,
// mirroring how the rest of the application keeps its computational cores:
//
//   - No logging in the library (callers decide how/what to log)
//   - Pure functions with no side effects; appending the resulting survey to
//     the record store is the caller's concern
//   - Inputs are validated here so invalid answer sets can never be persisted
//
// The instrument has nine items scored 0–3 each, for a total of 0–27. Lower
// is better.
package phq9

import "errors"

// Questionnaire bounds.
const (
	// NumAnswers is the fixed number of PHQ-9 items.
	NumAnswers = 9
	// MaxAnswer is the highest value a single item may take.
	MaxAnswer = 3
	// MaxScore is the highest possible total score (NumAnswers * MaxAnswer).
	MaxScore = 27
)

// Validation errors returned by Score.
var (
	// ErrAnswerCount is returned when the answer slice is not exactly 9 long.
	ErrAnswerCount = errors.New("phq9: answers must contain exactly 9 items")

	// ErrAnswerRange is returned when any answer falls outside [0,3].
	ErrAnswerRange = errors.New("phq9: answers must be between 0 and 3")
)

// Severity is the display bucket derived from a total score.
type Severity string

// Severity buckets, from best to worst.
const (
	SeverityMinimal          Severity = "minimal"           // 0–4
	SeverityMild             Severity = "mild"              // 5–9
	SeverityModerate         Severity = "moderate"          // 10–14
	SeverityModeratelySevere Severity = "moderately severe" // 15–19
	SeveritySevere           Severity = "severe"            // 20–27
)

// Score validates answers and returns their sum.
//
// It rejects the input (without partial results) when the slice is not
// exactly NumAnswers long or any value is outside [0, MaxAnswer]. Callers
// must score before constructing a PHQ9Survey so the stored score always
// equals the answer sum.
func Score(answers []int) (int, error) {
	if len(answers) != NumAnswers {
		return 0, ErrAnswerCount
	}
	total := 0
	for _, a := range answers {
		if a < 0 || a > MaxAnswer {
			return 0, ErrAnswerRange
		}
		total += a
	}
	return total, nil
}

// SeverityFor maps a total score to its display bucket.
//
// Boundaries are inclusive on the upper end of each bucket: 4 is minimal,
// 5 and 9 are mild, 10 is moderate, 20 and above is severe. Scores outside
// [0, MaxScore] cannot be produced by Score; out-of-range input is clamped
// into the nearest bucket rather than rejected, since this function is used
// for display only.
func SeverityFor(score int) Severity {
	switch {
	case score <= 4:
		return SeverityMinimal
	case score <= 9:
		return SeverityMild
	case score <= 14:
		return SeverityModerate
	case score <= 19:
		return SeverityModeratelySevere
	default:
		return SeveritySevere
	}
}

// Percent returns the score normalized to 0–100 for display gauges,
// rounded to the nearest integer.
func Percent(score int) int {
	// Round half away from zero; score is non-negative in practice.
	return (score*100 + MaxScore/2) / MaxScore
}

// Package domain defines the core records of the CBT journaling application:
// daily mood entries, structured thought and behavior records, PHQ-9 surveys,
// weekly reports, and community posts. These are plain value types held in the
// in-memory record store; they are immutable after creation except for the
// toggle fields noted on each type (report viewed state, post like state,
// activity completion).
package domain

import "time"

// Situation identifies the daypart slot a planned activity belongs to.
// It is a closed enumeration; values outside the three constants are rejected
// at the service boundary.
type Situation string

// Daypart slots for behavior-activation activities.
const (
	SituationMorning Situation = "morning"
	SituationWork    Situation = "work"
	SituationEvening Situation = "evening"
)

// Valid reports whether s is one of the three known daypart slots.
func (s Situation) Valid() bool {
	switch s {
	case SituationMorning, SituationWork, SituationEvening:
		return true
	}
	return false
}

// MoodEntry is a single daily mood check-in on a 0–10 scale with a display
// emoji. One entry per calendar day is intended but not enforced. Entries are
// never mutated or deleted.
type MoodEntry struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Mood  int       `json:"mood"` // 0..10
	Emoji string    `json:"emoji"`
}

// Emotion is a named feeling tagged on a thought record together with its
// subjective intensity (1–10).
type Emotion struct {
	Name      string `json:"name"`
	Intensity int    `json:"intensity"` // 1..10
}

// ThoughtRecord captures one completed run of the thought-record wizard: the
// triggering situation, felt emotions, the automatic negative thought, the
// cognitive distortions recognized in it, and the alternative reframing.
//
// CognitiveDistortions entries follow the catalog format
// "<name> - <description>"; report aggregation keys on the name part only.
// AlternativeDistortions holds the alternative-thinking styles the user
// applied and may be empty.
type ThoughtRecord struct {
	ID                     string    `json:"id"`
	Date                   time.Time `json:"date"`
	Situation              string    `json:"situation"`
	Emotions               []Emotion `json:"emotions"`
	AutomaticThoughts      string    `json:"automatic_thoughts"`
	CognitiveDistortions   []string  `json:"cognitive_distortions"`
	AlternativeThought     string    `json:"alternative_thought"`
	AlternativeDistortions []string  `json:"alternative_distortions,omitempty"`
	SharedToCommunity      bool      `json:"shared_to_community"`
}

// PlannedActivity is one coping activity scheduled in a behavior record.
// Completed is toggled when the user confirms the activity happened.
type PlannedActivity struct {
	ID            string     `json:"id"`
	Situation     Situation  `json:"situation"`
	Activity      string     `json:"activity"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	ScheduledTime string     `json:"scheduled_time,omitempty"` // "HH:MM"
	Completed     bool       `json:"completed,omitempty"`
}

// BehaviorRecord captures one completed run of the behavior-activation wizard:
// mood per daypart plus the planned coping activities. The producing wizard
// caps activities at three per daypart slot.
type BehaviorRecord struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	MorningMood int               `json:"morning_mood"` // 0..10
	WorkMood    int               `json:"work_mood"`    // 0..10
	EveningMood int               `json:"evening_mood"` // 0..10
	Activities  []PlannedActivity `json:"activities"`
	Completed   bool              `json:"completed"`
}

// PHQ9Survey is one completed PHQ-9 questionnaire. Invariants (enforced by
// the scorer before a survey is ever constructed): len(Answers) == 9, each
// answer in [0,3], Score == sum(Answers).
type PHQ9Survey struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Score   int       `json:"score"` // 0..27
	Answers []int     `json:"answers"`
}

// WeeklyReport is a point-in-time snapshot of one week of journaling. The ID
// lists are by-value copies of record IDs captured at generation time, not
// live references; aggregation re-reads the referenced records on every view.
// IsViewed is the only mutable field and only ever transitions false → true.
type WeeklyReport struct {
	ID                string    `json:"id"`
	WeekLabel         string    `json:"week_label"` // e.g. "11월 1주"
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	CreatedAt         time.Time `json:"created_at"`
	PHQ9SurveyIDs     []string  `json:"phq9_survey_ids"`
	ThoughtRecordIDs  []string  `json:"thought_record_ids"`
	BehaviorRecordIDs []string  `json:"behavior_record_ids"`
	MoodEntryCount    int       `json:"mood_entry_count"`
	IsViewed          bool      `json:"is_viewed"`
}

// CommunityPost is one entry in the shared feed. Deletion rights belong
// exclusively to the author (UserID). Likes and IsLiked are viewer-relative
// state collapsed into the post object.
type CommunityPost struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Nickname     string    `json:"nickname"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	Likes        int       `json:"likes"`
	CommentCount int       `json:"comment_count"`
	IsLiked      bool      `json:"is_liked"`
}

// Package store provides the process-wide in-memory record container. It is
// an explicit, injectable dependency: constructed once at startup (optionally
// seeded), passed by reference to services and the scheduler, and torn down
// with the process. Nothing else in the application holds record state.
//
// The modeled domain is single-writer, but the HTTP server is not, so every
// method is guarded by a RWMutex and all reads return deep copies; callers
// can never alias internal state. A monotonic revision counter increments on
// every mutation and backs conditional GET handling in the HTTP layer.
package store

import (
	"sync"
	"time"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
)

// Store holds all journaling records for the process lifetime.
type Store struct {
	mu sync.RWMutex

	moods     []domain.MoodEntry
	thoughts  []domain.ThoughtRecord
	behaviors []domain.BehaviorRecord
	surveys   []domain.PHQ9Survey
	posts     []domain.CommunityPost
	reports   []domain.WeeklyReport

	revision uint64
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Revision returns the monotonic mutation counter. Two equal revisions imply
// identical store contents, which makes the value usable as a weak ETag.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func (s *Store) bump() { s.revision++ }

// ---------------------------------------------------------------------------
// Appends

// AddMoodEntry appends a mood check-in.
func (s *Store) AddMoodEntry(e domain.MoodEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moods = append(s.moods, e)
	s.bump()
}

// AddThoughtRecord appends a finalized thought record.
func (s *Store) AddThoughtRecord(r domain.ThoughtRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.thoughts = append(s.thoughts, cloneThought(r))
	s.bump()
}

// AddBehaviorRecord appends a finalized behavior record.
func (s *Store) AddBehaviorRecord(r domain.BehaviorRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.behaviors = append(s.behaviors, cloneBehavior(r))
	s.bump()
}

// AddPHQ9Survey appends a completed survey.
func (s *Store) AddPHQ9Survey(v domain.PHQ9Survey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surveys = append(s.surveys, cloneSurvey(v))
	s.bump()
}

// AddWeeklyReport appends a generated report snapshot.
func (s *Store) AddWeeklyReport(r domain.WeeklyReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, cloneReport(r))
	s.bump()
}

// AddCommunityPost prepends a post so the feed reads newest-first.
func (s *Store) AddCommunityPost(p domain.CommunityPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]domain.CommunityPost{p}, s.posts...)
	s.bump()
}

// ---------------------------------------------------------------------------
// Reads (deep copies)

// MoodEntries returns all mood entries in insertion (chronological) order.
func (s *Store) MoodEntries() []domain.MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.MoodEntry, len(s.moods))
	copy(out, s.moods)
	return out
}

// ThoughtRecords returns all thought records in insertion order.
func (s *Store) ThoughtRecords() []domain.ThoughtRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ThoughtRecord, len(s.thoughts))
	for i, r := range s.thoughts {
		out[i] = cloneThought(r)
	}
	return out
}

// BehaviorRecords returns all behavior records in insertion order.
func (s *Store) BehaviorRecords() []domain.BehaviorRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.BehaviorRecord, len(s.behaviors))
	for i, r := range s.behaviors {
		out[i] = cloneBehavior(r)
	}
	return out
}

// PHQ9Surveys returns all surveys in insertion order.
func (s *Store) PHQ9Surveys() []domain.PHQ9Survey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PHQ9Survey, len(s.surveys))
	for i, v := range s.surveys {
		out[i] = cloneSurvey(v)
	}
	return out
}

// CommunityPosts returns the feed, newest-first.
func (s *Store) CommunityPosts() []domain.CommunityPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CommunityPost, len(s.posts))
	copy(out, s.posts)
	return out
}

// WeeklyReports returns all reports in insertion order.
func (s *Store) WeeklyReports() []domain.WeeklyReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.WeeklyReport, len(s.reports))
	for i, r := range s.reports {
		out[i] = cloneReport(r)
	}
	return out
}

// WeeklyReport fetches one report by ID.
func (s *Store) WeeklyReport(id string) (domain.WeeklyReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reports {
		if r.ID == id {
			return cloneReport(r), true
		}
	}
	return domain.WeeklyReport{}, false
}

// Counts returns the lifetime record counts consumed by the eligibility
// predicates: mood entries and thought/behavior records.
func (s *Store) Counts() (moodEntries, thoughtRecords, behaviorRecords int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.moods), len(s.thoughts), len(s.behaviors)
}

// LatestSurveyDate returns the date of the most recently appended survey, or
// nil when none exists.
func (s *Store) LatestSurveyDate() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.surveys) == 0 {
		return nil
	}
	d := s.surveys[len(s.surveys)-1].Date
	return &d
}

// ---------------------------------------------------------------------------
// Toggles

// MarkReportViewed sets IsViewed on the report. The transition is idempotent:
// repeated calls after the first are no-ops that still report success. The
// revision only bumps on an actual state change.
func (s *Store) MarkReportViewed(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reports {
		if s.reports[i].ID == id {
			if !s.reports[i].IsViewed {
				s.reports[i].IsViewed = true
				s.bump()
			}
			return true
		}
	}
	return false
}

// TogglePostLike flips the viewer-relative like state of a post, adjusting the
// count and never letting it go negative. Returns the updated post.
func (s *Store) TogglePostLike(id string) (domain.CommunityPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		p := &s.posts[i]
		if p.IsLiked {
			p.IsLiked = false
			if p.Likes > 0 {
				p.Likes--
			}
		} else {
			p.IsLiked = true
			p.Likes++
		}
		s.bump()
		return *p, true
	}
	return domain.CommunityPost{}, false
}

// MoodEntry fetches one mood entry by ID.
func (s *Store) MoodEntry(id string) (domain.MoodEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.moods {
		if e.ID == id {
			return e, true
		}
	}
	return domain.MoodEntry{}, false
}

// ThoughtRecord fetches one thought record by ID.
func (s *Store) ThoughtRecord(id string) (domain.ThoughtRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.thoughts {
		if r.ID == id {
			return cloneThought(r), true
		}
	}
	return domain.ThoughtRecord{}, false
}

// BehaviorRecord fetches one behavior record by ID.
func (s *Store) BehaviorRecord(id string) (domain.BehaviorRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.behaviors {
		if r.ID == id {
			return cloneBehavior(r), true
		}
	}
	return domain.BehaviorRecord{}, false
}

// PHQ9Survey fetches one survey by ID.
func (s *Store) PHQ9Survey(id string) (domain.PHQ9Survey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.surveys {
		if v.ID == id {
			return cloneSurvey(v), true
		}
	}
	return domain.PHQ9Survey{}, false
}

// CommunityPost fetches one post by ID.
func (s *Store) CommunityPost(id string) (domain.CommunityPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.CommunityPost{}, false
}

// DeleteCommunityPost removes a post from the feed. Ownership is enforced by
// the service layer; the store only removes.
func (s *Store) DeleteCommunityPost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			s.bump()
			return true
		}
	}
	return false
}

// CompleteActivity marks one planned activity inside a behavior record as
// done. Idempotent once set. Returns the updated record.
func (s *Store) CompleteActivity(recordID, activityID string) (domain.BehaviorRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.behaviors {
		if s.behaviors[i].ID != recordID {
			continue
		}
		for j := range s.behaviors[i].Activities {
			if s.behaviors[i].Activities[j].ID != activityID {
				continue
			}
			if !s.behaviors[i].Activities[j].Completed {
				s.behaviors[i].Activities[j].Completed = true
				s.bump()
			}
			return cloneBehavior(s.behaviors[i]), true
		}
		return domain.BehaviorRecord{}, false
	}
	return domain.BehaviorRecord{}, false
}

// ---------------------------------------------------------------------------
// Clones. Inner slices are copied so callers and the store never share
// backing arrays; the toggle methods above mutate in place under the lock.

func cloneThought(r domain.ThoughtRecord) domain.ThoughtRecord {
	r.Emotions = append([]domain.Emotion(nil), r.Emotions...)
	r.CognitiveDistortions = append([]string(nil), r.CognitiveDistortions...)
	r.AlternativeDistortions = append([]string(nil), r.AlternativeDistortions...)
	return r
}

func cloneBehavior(r domain.BehaviorRecord) domain.BehaviorRecord {
	r.Activities = append([]domain.PlannedActivity(nil), r.Activities...)
	return r
}

func cloneSurvey(v domain.PHQ9Survey) domain.PHQ9Survey {
	v.Answers = append([]int(nil), v.Answers...)
	return v
}

func cloneReport(r domain.WeeklyReport) domain.WeeklyReport {
	r.PHQ9SurveyIDs = append([]string(nil), r.PHQ9SurveyIDs...)
	r.ThoughtRecordIDs = append([]string(nil), r.ThoughtRecordIDs...)
	r.BehaviorRecordIDs = append([]string(nil), r.BehaviorRecordIDs...)
	return r
}

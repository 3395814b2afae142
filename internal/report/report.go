// Package report computes the derived statistics bundle for a weekly report.
// It is a pure, deterministic aggregation layer: given a report's reference-ID
// lists and the full record stores, it recomputes the summary on every view
// and never mutates a report or record. Marking a report as viewed is a
// separate, explicit store operation.
//
// Determinism rules, applied throughout:
//   - Frequency rankings sort descending by count with a stable sort, so ties
//     keep first-encountered order.
//   - The least-used alternative keeps the first-encountered minimum.
//   - Behavior winners keep the first-encountered maximum improvement.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
)

// BeforeLabel is the fixed placeholder rendered as the "before" situation in
// behavior insights. The behavior wizard never captures the negative event
// text for a slot, so there is nothing real to substitute; callers that gain
// that data later can replace the field per insight.
const BeforeLabel = "상사 전화 받음"

// Ranking caps.
const (
	topEmotions     = 5
	topDistortions  = 3
	topAlternatives = 3
)

// ScorePoint is one PHQ-9 survey plotted on the report's trend chart.
type ScorePoint struct {
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
}

// Trend compares the two most recent surveys referenced by the report.
// Lower PHQ-9 scores are better, so Improving is true when Change < 0.
type Trend struct {
	Previous  int  `json:"previous"`
	Latest    int  `json:"latest"`
	Change    int  `json:"change"`
	Improving bool `json:"improving"`
}

// NameCount is a tallied name with its occurrence count.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// BehaviorInsight is the best mood improvement found for one daypart slot.
type BehaviorInsight struct {
	Situation   domain.Situation `json:"situation"`
	BeforeLabel string           `json:"before_label"`
	Activity    string           `json:"activity"`
	BeforeMood  int              `json:"before_mood"`
	AfterMood   int              `json:"after_mood"`
	Improvement int              `json:"improvement"`
}

// Summary is the derived statistics bundle for one weekly report.
type Summary struct {
	// PHQ9Points holds every referenced survey in date-ascending order; it
	// may chart even when Trend is absent (a single survey still plots).
	PHQ9Points []ScorePoint `json:"phq9_points"`
	// Trend is nil when fewer than two surveys are referenced.
	Trend *Trend `json:"trend,omitempty"`
	// Emotions is the top 5 emotion names by occurrence (not intensity).
	Emotions []NameCount `json:"emotions"`
	// Distortions is the top 3 cognitive distortions, keyed by the catalog
	// name before the first " - " delimiter.
	Distortions []NameCount `json:"distortions"`
	// Alternatives is the top 3 alternative-thinking styles (exact strings).
	Alternatives []NameCount `json:"alternatives"`
	// LeastUsedAlternative is the coaching suggestion: the alternative style
	// the user reached for least. Nil when no alternative was recorded.
	LeastUsedAlternative *NameCount `json:"least_used_alternative,omitempty"`
	// Behavior holds at most one insight per slot, in morning/work/evening
	// order; slots with no matching activity are omitted.
	Behavior []BehaviorInsight `json:"behavior"`
}

// Summarize selects the records referenced by rpt from the given stores and
// computes the full statistics bundle. Records missing from the stores are
// silently skipped (reference IDs are by-value snapshots and may outlive a
// record in synthetic setups); store order is preserved for tallying.
func Summarize(
	rpt domain.WeeklyReport,
	surveys []domain.PHQ9Survey,
	thoughts []domain.ThoughtRecord,
	behaviors []domain.BehaviorRecord,
) Summary {
	selSurveys := selectSurveys(surveys, rpt.PHQ9SurveyIDs)
	selThoughts := selectThoughts(thoughts, rpt.ThoughtRecordIDs)
	selBehaviors := selectBehaviors(behaviors, rpt.BehaviorRecordIDs)

	s := Summary{
		PHQ9Points:   scorePoints(selSurveys),
		Trend:        trendOf(selSurveys),
		Emotions:     emotionFrequency(selThoughts),
		Distortions:  distortionFrequency(selThoughts),
		Alternatives: nil,
		Behavior:     behaviorInsights(selBehaviors),
	}
	s.Alternatives, s.LeastUsedAlternative = alternativeFrequency(selThoughts)
	return s
}

// ---------------------------------------------------------------------------
// PHQ-9 trend

func selectSurveys(all []domain.PHQ9Survey, ids []string) []domain.PHQ9Survey {
	want := idSet(ids)
	out := make([]domain.PHQ9Survey, 0, len(ids))
	for _, s := range all {
		if _, ok := want[s.ID]; ok {
			out = append(out, s)
		}
	}
	// Date-ascending; stable so same-date surveys keep store order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func scorePoints(surveys []domain.PHQ9Survey) []ScorePoint {
	if len(surveys) == 0 {
		return nil
	}
	pts := make([]ScorePoint, len(surveys))
	for i, s := range surveys {
		pts[i] = ScorePoint{Date: s.Date, Score: s.Score}
	}
	return pts
}

func trendOf(surveys []domain.PHQ9Survey) *Trend {
	if len(surveys) < 2 {
		return nil
	}
	latest := surveys[len(surveys)-1]
	previous := surveys[len(surveys)-2]
	change := latest.Score - previous.Score
	return &Trend{
		Previous:  previous.Score,
		Latest:    latest.Score,
		Change:    change,
		Improving: change < 0,
	}
}

// ---------------------------------------------------------------------------
// Frequency tallies

// tally counts names while remembering first-encountered order, which is the
// tie-break for every ranking in this package.
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(name string) {
	if _, seen := t.counts[name]; !seen {
		t.order = append(t.order, name)
	}
	t.counts[name]++
}

// top returns up to n entries, descending by count, ties in first-encountered
// order.
func (t *tally) top(n int) []NameCount {
	if len(t.order) == 0 {
		return nil
	}
	out := make([]NameCount, len(t.order))
	for i, name := range t.order {
		out[i] = NameCount{Name: name, Count: t.counts[name]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// least returns the minimum-count entry, first-encountered on ties, or nil
// when nothing was counted.
func (t *tally) least() *NameCount {
	if len(t.order) == 0 {
		return nil
	}
	best := NameCount{Name: t.order[0], Count: t.counts[t.order[0]]}
	for _, name := range t.order[1:] {
		if c := t.counts[name]; c < best.Count {
			best = NameCount{Name: name, Count: c}
		}
	}
	return &best
}

func selectThoughts(all []domain.ThoughtRecord, ids []string) []domain.ThoughtRecord {
	want := idSet(ids)
	out := make([]domain.ThoughtRecord, 0, len(ids))
	for _, r := range all {
		if _, ok := want[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

func emotionFrequency(records []domain.ThoughtRecord) []NameCount {
	t := newTally()
	for _, r := range records {
		for _, e := range r.Emotions {
			t.add(e.Name)
		}
	}
	return t.top(topEmotions)
}

// distortionName reduces a catalog entry like "흑백논리 - 극단적 사고" to its
// name part. Entries without the delimiter are used whole.
func distortionName(s string) string {
	if name, _, found := strings.Cut(s, " - "); found {
		return name
	}
	return s
}

func distortionFrequency(records []domain.ThoughtRecord) []NameCount {
	t := newTally()
	for _, r := range records {
		for _, d := range r.CognitiveDistortions {
			t.add(distortionName(d))
		}
	}
	return t.top(topDistortions)
}

func alternativeFrequency(records []domain.ThoughtRecord) ([]NameCount, *NameCount) {
	t := newTally()
	for _, r := range records {
		for _, d := range r.AlternativeDistortions {
			t.add(d)
		}
	}
	return t.top(topAlternatives), t.least()
}

// ---------------------------------------------------------------------------
// Behavior improvement

func selectBehaviors(all []domain.BehaviorRecord, ids []string) []domain.BehaviorRecord {
	want := idSet(ids)
	out := make([]domain.BehaviorRecord, 0, len(ids))
	for _, r := range all {
		if _, ok := want[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

func clampMood(v int) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// slotActivity returns the first activity in r matching the slot, if any.
func slotActivity(r domain.BehaviorRecord, slot domain.Situation) (domain.PlannedActivity, bool) {
	for _, a := range r.Activities {
		if a.Situation == slot {
			return a, true
		}
	}
	return domain.PlannedActivity{}, false
}

// slotImprovement computes before/after for one record and slot. The "after"
// mood is the next daypart's mood when an activity exists; the evening slot
// has no next daypart, so a fixed +1 stands in, clamped to the scale.
func slotImprovement(r domain.BehaviorRecord, slot domain.Situation) (before, after int) {
	_, has := slotActivity(r, slot)
	switch slot {
	case domain.SituationMorning:
		before = clampMood(r.MorningMood)
		if has {
			after = clampMood(r.WorkMood)
		} else {
			after = before
		}
	case domain.SituationWork:
		before = clampMood(r.WorkMood)
		if has {
			after = clampMood(r.EveningMood)
		} else {
			after = before
		}
	case domain.SituationEvening:
		before = clampMood(r.EveningMood)
		if has {
			after = clampMood(r.EveningMood + 1)
		} else {
			after = before
		}
	}
	return before, after
}

// bestForSlot picks the record with the maximum improvement among those that
// planned an activity for the slot. Records without a matching activity are
// excluded entirely. Returns false when no record qualifies.
func bestForSlot(records []domain.BehaviorRecord, slot domain.Situation) (BehaviorInsight, bool) {
	var best BehaviorInsight
	found := false
	for _, r := range records {
		activity, has := slotActivity(r, slot)
		if !has {
			continue
		}
		before, after := slotImprovement(r, slot)
		improvement := after - before
		if !found || improvement > best.Improvement {
			best = BehaviorInsight{
				Situation:   slot,
				BeforeLabel: BeforeLabel,
				Activity:    activity.Activity,
				BeforeMood:  before,
				AfterMood:   after,
				Improvement: improvement,
			}
			found = true
		}
	}
	return best, found
}

func behaviorInsights(records []domain.BehaviorRecord) []BehaviorInsight {
	slots := []domain.Situation{
		domain.SituationMorning,
		domain.SituationWork,
		domain.SituationEvening,
	}
	var out []BehaviorInsight
	for _, slot := range slots {
		if insight, ok := bestForSlot(records, slot); ok {
			out = append(out, insight)
		}
	}
	return out
}

func idSet(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

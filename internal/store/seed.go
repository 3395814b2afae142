// Package store — demo seed data.
//
// Seeded mirrors the data set the mobile client ships with: a week of mood
// entries, four thought records, four behavior records, two PHQ-9 surveys two
// weeks apart, two community posts, and two weekly reports referencing the
// records by ID. Dates are relative to the supplied clock so the seeded state
// always looks freshly journaled.
package store

import (
	"time"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
)

// Seeded returns a store populated with the demo data set, anchored to now.
func Seeded(now time.Time) *Store {
	s := New()
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }
	hoursAgo := func(n int) time.Time { return now.Add(-time.Duration(n) * time.Hour) }

	moods := []domain.MoodEntry{
		{ID: "mood-1", Date: daysAgo(7), Mood: 6, Emoji: "😊"},
		{ID: "mood-2", Date: daysAgo(6), Mood: 5, Emoji: "😐"},
		{ID: "mood-3", Date: daysAgo(5), Mood: 7, Emoji: "😄"},
		{ID: "mood-4", Date: daysAgo(4), Mood: 4, Emoji: "😔"},
		{ID: "mood-5", Date: daysAgo(3), Mood: 6, Emoji: "😊"},
		{ID: "mood-6", Date: daysAgo(2), Mood: 7, Emoji: "😄"},
		{ID: "mood-7", Date: daysAgo(1), Mood: 8, Emoji: "😁"},
	}
	for _, m := range moods {
		s.AddMoodEntry(m)
	}

	thoughts := []domain.ThoughtRecord{
		{
			ID:        "thought-1",
			Date:      daysAgo(5),
			Situation: "팀 회의에서 내 의견이 받아들여지지 않았다",
			Emotions: []domain.Emotion{
				{Name: "불안", Intensity: 7},
				{Name: "좌절", Intensity: 6},
			},
			AutomaticThoughts: "내 의견은 항상 무시당해. 나는 무능한 사람이야.",
			CognitiveDistortions: []string{
				"흑백논리 - 극단적 사고",
				"과잉일반화 - 한 번의 경험을 모든 상황에 적용",
			},
			AlternativeThought:     "이번 회의에서 내 의견이 채택되지 않았지만, 그건 여러 요인 때문일 수 있어. 다음에 더 나은 방법으로 제안해볼 수 있어.",
			AlternativeDistortions: []string{"균형잡힌 사고", "증거 기반 평가"},
		},
		{
			ID:        "thought-2",
			Date:      daysAgo(4),
			Situation: "상사에게 프로젝트 진행 상황을 보고했다",
			Emotions: []domain.Emotion{
				{Name: "불안", Intensity: 8},
				{Name: "긴장", Intensity: 7},
			},
			AutomaticThoughts: "실수하면 큰일 날 거야. 다들 내가 못한다고 생각할 거야.",
			CognitiveDistortions: []string{
				"파국화 - 최악의 상황만 생각",
				"독심술 - 타인의 생각을 단정",
			},
			AlternativeThought:     "완벽하지 않아도 괜찮아. 최선을 다하고 있고, 질문이 있으면 도움을 요청할 수 있어.",
			AlternativeDistortions: []string{"현실적 평가", "자기격려"},
			SharedToCommunity:      true,
		},
		{
			ID:        "thought-3",
			Date:      daysAgo(3),
			Situation: "친구가 약속을 취소했다",
			Emotions: []domain.Emotion{
				{Name: "슬픔", Intensity: 6},
				{Name: "외로움", Intensity: 7},
			},
			AutomaticThoughts: "친구가 나를 싫어하는 것 같아. 나는 중요하지 않은 사람이야.",
			CognitiveDistortions: []string{
				"독심술 - 타인의 생각을 단정",
				"개인화 - 모든 것을 자신 탓으로 돌림",
			},
			AlternativeThought:     "친구에게도 사정이 있을 수 있어. 다음에 다시 만날 수 있어.",
			AlternativeDistortions: []string{"균형잡힌 사고", "증거 기반 평가"},
		},
		{
			ID:        "thought-4",
			Date:      daysAgo(2),
			Situation: "새로운 업무를 배정받았다",
			Emotions: []domain.Emotion{
				{Name: "불안", Intensity: 8},
				{Name: "두려움", Intensity: 7},
			},
			AutomaticThoughts: "이건 너무 어려워. 나는 절대 못할 거야.",
			CognitiveDistortions: []string{
				"흑백논리 - 극단적 사고",
				"과잉일반화 - 한 번의 경험을 모든 상황에 적용",
			},
			AlternativeThought:     "처음엔 어렵더라도 배우면서 익숙해질 수 있어. 한 단계씩 나아가면 돼.",
			AlternativeDistortions: []string{"현실적 평가", "자기격려"},
		},
	}
	for _, r := range thoughts {
		s.AddThoughtRecord(r)
	}

	behaviors := []domain.BehaviorRecord{
		{
			ID: "behavior-1", Date: daysAgo(6),
			MorningMood: 4, WorkMood: 6, EveningMood: 7,
			Activities: []domain.PlannedActivity{
				{ID: "activity-1-1", Situation: domain.SituationMorning, Activity: "15분 산책하기", ScheduledTime: "07:30"},
				{ID: "activity-1-2", Situation: domain.SituationWork, Activity: "심호흡 5분", ScheduledTime: "14:00"},
				{ID: "activity-1-3", Situation: domain.SituationEvening, Activity: "좋아하는 음악 듣기", ScheduledTime: "19:00"},
			},
			Completed: true,
		},
		{
			ID: "behavior-2", Date: daysAgo(5),
			MorningMood: 3, WorkMood: 5, EveningMood: 6,
			Activities: []domain.PlannedActivity{
				{ID: "activity-2-1", Situation: domain.SituationMorning, Activity: "스트레칭 10분", ScheduledTime: "08:00"},
				{ID: "activity-2-2", Situation: domain.SituationWork, Activity: "점심시간 산책", ScheduledTime: "12:30"},
				{ID: "activity-2-3", Situation: domain.SituationEvening, Activity: "일기 쓰기", ScheduledTime: "20:00"},
			},
			Completed: true,
		},
		{
			ID: "behavior-3", Date: daysAgo(4),
			MorningMood: 5, WorkMood: 7, EveningMood: 7,
			Activities: []domain.PlannedActivity{
				{ID: "activity-3-1", Situation: domain.SituationMorning, Activity: "명상 5분", ScheduledTime: "07:00"},
				{ID: "activity-3-2", Situation: domain.SituationWork, Activity: "동료와 가벼운 대화", ScheduledTime: "15:00"},
				{ID: "activity-3-3", Situation: domain.SituationEvening, Activity: "가족과 저녁식사", ScheduledTime: "18:30"},
			},
			Completed: true,
		},
		{
			ID: "behavior-4", Date: daysAgo(3),
			MorningMood: 4, WorkMood: 6, EveningMood: 6,
			Activities: []domain.PlannedActivity{
				{ID: "activity-4-1", Situation: domain.SituationMorning, Activity: "따뜻한 차 마시기", ScheduledTime: "07:30"},
				{ID: "activity-4-2", Situation: domain.SituationWork, Activity: "정리정돈 10분", ScheduledTime: "16:00"},
			},
			Completed: true,
		},
	}
	for _, r := range behaviors {
		s.AddBehaviorRecord(r)
	}

	s.AddPHQ9Survey(domain.PHQ9Survey{
		ID: "phq9-1", Date: daysAgo(14), Score: 15,
		Answers: []int{2, 2, 2, 1, 2, 2, 1, 2, 1},
	})
	s.AddPHQ9Survey(domain.PHQ9Survey{
		ID: "phq9-2", Date: daysAgo(1), Score: 10,
		Answers: []int{1, 1, 2, 1, 1, 1, 1, 1, 1},
	})

	// Feed reads newest-first; add the older post first so prepending keeps
	// the newer one on top.
	s.AddCommunityPost(domain.CommunityPost{
		ID: "post-2", UserID: "user-3", Nickname: "평온",
		Content:   "행동 활성화 기록을 2주째 하고 있는데, 확실히 루틴이 생기니까 마음이 안정되는 것 같아요.",
		CreatedAt: hoursAgo(5), Likes: 8, CommentCount: 2,
	})
	s.AddCommunityPost(domain.CommunityPost{
		ID: "post-1", UserID: "user-2", Nickname: "희망이",
		Content:   "오늘 부정적인 생각을 대안적 사고로 바꿔보니 기분이 조금 나아졌어요. 작은 변화지만 의미있네요.",
		CreatedAt: hoursAgo(2), Likes: 12, CommentCount: 3,
	})

	s.AddWeeklyReport(domain.WeeklyReport{
		ID: "report-1", WeekLabel: "11월 1주",
		StartDate: daysAgo(14), EndDate: daysAgo(7), CreatedAt: daysAgo(7),
		PHQ9SurveyIDs:     []string{"phq9-1"},
		ThoughtRecordIDs:  []string{"thought-1", "thought-2"},
		BehaviorRecordIDs: []string{"behavior-1", "behavior-2"},
		MoodEntryCount:    5,
		IsViewed:          true,
	})
	s.AddWeeklyReport(domain.WeeklyReport{
		ID: "report-2", WeekLabel: "11월 2주",
		StartDate: daysAgo(7), EndDate: now, CreatedAt: now,
		PHQ9SurveyIDs:     []string{"phq9-2"},
		ThoughtRecordIDs:  []string{"thought-3", "thought-4"},
		BehaviorRecordIDs: []string{"behavior-3", "behavior-4"},
		MoodEntryCount:    7,
	})

	return s
}

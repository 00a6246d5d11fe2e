package sm2_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/worriless09/sm2"
)

var now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func dueAt(id string, due time.Time) sm2.Snapshot {
	return sm2.Snapshot{CardID: id, EaseFactor: sm2.InitialEaseFactor, IntervalDays: 1, Due: due}
}

func TestDueCardsOrdering(t *testing.T) {
	yesterday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	cards := []sm2.Snapshot{
		dueAt("tomorrow", tomorrow),
		dueAt("today", today),
		dueAt("yesterday", yesterday),
	}

	due := sm2.DueCards(cards, now)

	assert.Len(t, due, 2)
	assert.Equal(t, "yesterday", due[0].CardID)
	assert.Equal(t, "today", due[1].CardID)
}

func TestDueCardsTiesKeepInputOrder(t *testing.T) {
	same := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	cards := []sm2.Snapshot{
		dueAt("first", same),
		dueAt("second", same),
		dueAt("third", same),
	}
	due := sm2.DueCards(cards, now)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{due[0].CardID, due[1].CardID, due[2].CardID})
}

func TestDueCardsEmpty(t *testing.T) {
	assert.Empty(t, sm2.DueCards(nil, now))
	assert.Empty(t, sm2.DueCards([]sm2.Snapshot{}, now))
}

func TestDueCardsDoesNotMutateInput(t *testing.T) {
	cards := []sm2.Snapshot{
		dueAt("b", time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)),
		dueAt("a", time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)),
	}
	_ = sm2.DueCards(cards, now)
	assert.Equal(t, "b", cards[0].CardID, "input order should be preserved")
}

func TestUpcomingReviewsGrouping(t *testing.T) {
	cards := []sm2.Snapshot{
		dueAt("a", now.Add(26*time.Hour)), // 2025-06-16
		dueAt("b", now.Add(32*time.Hour)), // 2025-06-16
		dueAt("c", now.AddDate(0, 0, 3)),  // 2025-06-18
		dueAt("d", now.AddDate(0, 0, 8)),  // beyond the 7-day horizon
		dueAt("e", now.Add(-time.Hour)),   // already past
	}

	upcoming := sm2.UpcomingReviews(cards, 7, now)

	assert.Equal(t, []sm2.UpcomingReview{
		{Date: "2025-06-16", Count: 2},
		{Date: "2025-06-18", Count: 1},
	}, upcoming)
}

func TestUpcomingReviewsDefaultHorizon(t *testing.T) {
	cards := []sm2.Snapshot{
		dueAt("in", now.AddDate(0, 0, 6)),
		dueAt("out", now.AddDate(0, 0, 9)),
	}
	upcoming := sm2.UpcomingReviews(cards, 0, now)
	assert.Len(t, upcoming, 1)
	assert.Equal(t, 1, upcoming[0].Count)
}

func TestUpcomingReviewsEmpty(t *testing.T) {
	assert.Empty(t, sm2.UpcomingReviews(nil, 7, now))
}

func TestPlanSessionNoDueCards(t *testing.T) {
	plan := sm2.PlanSession(nil, 0, now)
	// Minimum session size even when nothing is due.
	assert.Equal(t, 5, plan.RecommendedCards)
	assert.Equal(t, 3, plan.EstimatedDurationMinutes) // ceil(5*30s/60)
	assert.Equal(t, "Complete all cards in one focused session for best results.", plan.BreakRecommendation)
}

func TestPlanSessionSizing(t *testing.T) {
	tests := []struct {
		due  int
		want int
	}{
		{0, 5},
		{5, 5},
		{12, 12},
		{20, 20},
		{30, 20},
	}
	for _, tt := range tests {
		plan := sm2.PlanSession(overdue(tt.due), 0, now)
		assert.Equalf(t, tt.want, plan.RecommendedCards, "%d due cards", tt.due)
	}
}

func TestPlanSessionDuration(t *testing.T) {
	plan := sm2.PlanSession(overdue(10), 30000, now)
	assert.Equal(t, 5, plan.EstimatedDurationMinutes) // 10 * 30s = 5 min
}

func TestPlanSessionBreakTiers(t *testing.T) {
	// 20 cards at 90s each → exactly 30 min → single session.
	plan := sm2.PlanSession(overdue(20), 90000, now)
	assert.Equal(t, 30, plan.EstimatedDurationMinutes)
	assert.Equal(t, "Complete all cards in one focused session for best results.", plan.BreakRecommendation)

	// 20 cards at 100s each → 34 min → mid-session break.
	plan = sm2.PlanSession(overdue(20), 100000, now)
	assert.Equal(t, 34, plan.EstimatedDurationMinutes)
	assert.Equal(t, "Take a 5-minute break after every 15 cards to maintain focus.", plan.BreakRecommendation)

	// 20 cards at 150s each → 50 min → the split tier wins over the break tier.
	plan = sm2.PlanSession(overdue(20), 150000, now)
	assert.Equal(t, 50, plan.EstimatedDurationMinutes)
	assert.Equal(t, "Consider splitting this session into two shorter sessions.", plan.BreakRecommendation)
}

func overdue(n int) []sm2.Snapshot {
	past := now.AddDate(0, 0, -1)
	cards := make([]sm2.Snapshot, n)
	for i := range cards {
		cards[i] = dueAt("card", past)
	}
	return cards
}

package sm2

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// UpcomingReview is the number of cards due on a single calendar date.
type UpcomingReview struct {
	Date  string `json:"date"` // ISO date (UTC).
	Count int    `json:"count"`
}

// SessionPlan recommends a study session size and pacing.
type SessionPlan struct {
	RecommendedCards         int    `json:"recommended_cards"`
	EstimatedDurationMinutes int    `json:"estimated_duration_minutes"`
	BreakRecommendation      string `json:"break_recommendation"`
}

// Session sizing bounds: 5–20 cards drawn from at most 25 due.
const (
	sessionMinCards = 5
	sessionMaxCards = 20
	sessionDueCap   = 25
)

// DueCards returns the snapshots due at or before the start of today (local
// midnight of now), sorted ascending by due date. Ties keep input order.
// The input slice is not modified.
func DueCards(snapshots []Snapshot, now time.Time) []Snapshot {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	due := make([]Snapshot, 0, len(snapshots))
	for _, snap := range snapshots {
		if !snap.Due.After(startOfToday) {
			due = append(due, snap)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Due.Before(due[j].Due)
	})
	return due
}

// UpcomingReviews groups the snapshots due between now and now+days by
// calendar date (UTC), sorted ascending. Dates with no due cards are omitted.
// days ≤ 0 uses the default seven-day horizon.
func UpcomingReviews(snapshots []Snapshot, days int, now time.Time) []UpcomingReview {
	if days <= 0 {
		days = DefaultHorizonDays
	}
	end := now.AddDate(0, 0, days)

	counts := make(map[string]int)
	for _, snap := range snapshots {
		if snap.Due.Before(now) || snap.Due.After(end) {
			continue
		}
		counts[snap.Due.UTC().Format(time.DateOnly)]++
	}

	out := make([]UpcomingReview, 0, len(counts))
	for date, count := range counts {
		out = append(out, UpcomingReview{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// PlanSession sizes a study session from the currently due cards and the
// average time per card. avgResponseTimeMs ≤ 0 uses the 30-second default.
//
// The break tiers are checked highest first, so a session estimated over 45
// minutes always gets the split recommendation rather than the break one.
func PlanSession(snapshots []Snapshot, avgResponseTimeMs float64, now time.Time) SessionPlan {
	if avgResponseTimeMs <= 0 {
		avgResponseTimeMs = DefaultResponseTimeMs
	}

	due := DueCards(snapshots, now)
	cards := max(sessionMinCards, min(min(sessionDueCap, len(due)), sessionMaxCards))

	secondsPerCard := avgResponseTimeMs / 1000
	minutes := int(math.Ceil(float64(cards) * secondsPerCard / 60))

	var breakRec string
	switch {
	case minutes > 45:
		breakRec = "Consider splitting this session into two shorter sessions."
	case minutes > 30:
		breakRec = "Take a 5-minute break after every 15 cards to maintain focus."
	default:
		breakRec = "Complete all cards in one focused session for best results."
	}

	return SessionPlan{
		RecommendedCards:         cards,
		EstimatedDurationMinutes: minutes,
		BreakRecommendation:      breakRec,
	}
}

// String renders the plan as a one-line summary.
func (p SessionPlan) String() string {
	return fmt.Sprintf("%d cards, ~%d min: %s", p.RecommendedCards, p.EstimatedDurationMinutes, p.BreakRecommendation)
}

package sm2

import "time"

// Snapshot records the scheduling state of one (user, card) pair.
// IDs are opaque strings owned by the caller; the engine never inspects them.
type Snapshot struct {
	CardID            string     `json:"card_id"`
	UserID            string     `json:"user_id"`
	EaseFactor        float64    `json:"ease_factor"`
	IntervalDays      int        `json:"interval_days"`
	Repetitions       int        `json:"repetitions"`
	Due               time.Time  `json:"next_review_date"`
	LastReview        *time.Time `json:"last_reviewed_at"` // nil before first review.
	QualityHistory    []float64  `json:"quality_history"`  // last HistoryLimit adjusted scores, oldest first.
	TotalReviews      int        `json:"total_reviews"`
	SuccessRate       float64    `json:"success_rate"`
	AvgResponseTimeMs float64    `json:"average_response_time"`
	Trend             Trend      `json:"difficulty_trend"`
}

// NewSnapshot creates a fresh snapshot for a card that has never been
// reviewed. Due is set to now (immediately reviewable).
func NewSnapshot(cardID, userID string, now time.Time) Snapshot {
	return Snapshot{
		CardID:       cardID,
		UserID:       userID,
		EaseFactor:   InitialEaseFactor,
		IntervalDays: 1,
		Due:          now,
		Trend:        Stable,
	}
}

// clone returns a deep copy of the snapshot. The history slice and the
// LastReview pointer are copied by value.
func (s Snapshot) clone() Snapshot {
	out := s
	if s.QualityHistory != nil {
		out.QualityHistory = make([]float64, len(s.QualityHistory))
		copy(out.QualityHistory, s.QualityHistory)
	}
	if s.LastReview != nil {
		v := *s.LastReview
		out.LastReview = &v
	}
	return out
}

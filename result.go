package sm2

import "time"

// Feedback is the user-facing classification of a single review.
type Feedback struct {
	Level          FeedbackLevel `json:"level"`
	Message        string        `json:"message"`
	Recommendation string        `json:"next_session_recommendation"`
}

// Analytics summarizes study progress after a review.
// All values are rounded to two decimals.
type Analytics struct {
	RetentionRate  float64 `json:"retention_rate"`            // fraction of retained history ≥ SuccessThreshold.
	MasteryLevel   float64 `json:"mastery_level"`             // 0–1, recent quality weighted by repetitions.
	MemoryStrength float64 `json:"estimated_memory_strength"` // forgetting-curve recall estimate, floored at 0.1.
}

// Result is the outcome of processing one review. Due, IntervalDays, and
// EaseFactor duplicate fields of Snapshot for caller convenience.
type Result struct {
	Snapshot     Snapshot  `json:"updated_progress"`
	Due          time.Time `json:"next_review_date"`
	IntervalDays int       `json:"interval_days"`
	EaseFactor   float64   `json:"ease_factor"`
	Feedback     Feedback  `json:"performance_feedback"`
	Analytics    Analytics `json:"study_analytics"`
}

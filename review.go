package sm2

import "time"

// ReviewEvent describes a single recall attempt for a card.
type ReviewEvent struct {
	Quality        float64 `json:"quality"`          // raw 0–5 recall quality.
	ResponseTimeMs float64 `json:"response_time_ms"` // time to answer, milliseconds.
	Confidence     float64 `json:"confidence_level"` // self-reported, 0–1.
	HintsUsed      int     `json:"hints_used"`
	PartialCorrect bool    `json:"partial_correct"`
}

// normalized clamps caller-supplied fields into their documented ranges so
// out-of-range input cannot skew the quality arithmetic downstream.
func (e ReviewEvent) normalized() ReviewEvent {
	out := e
	out.Quality = clamp(e.Quality, 0, MaxQuality)
	out.Confidence = clamp(e.Confidence, 0, 1)
	if out.ResponseTimeMs < 0 {
		out.ResponseTimeMs = 0
	}
	if out.HintsUsed < 0 {
		out.HintsUsed = 0
	}
	return out
}

// TimedEvent pairs a review event with the card and time it happened.
// A sequence of timed events can rebuild a snapshot via Scheduler.Replay.
type TimedEvent struct {
	CardID     string      `json:"card_id"`
	Event      ReviewEvent `json:"event"`
	ReviewedAt time.Time   `json:"reviewed_at"`
}

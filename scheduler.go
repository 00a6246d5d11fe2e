package sm2

import (
	"encoding/json"
	"fmt"
	"time"
)

// SchedulerConfig configures a Scheduler.
// Zero values produce sensible defaults; see field comments.
type SchedulerConfig struct {
	MaxIntervalDays        int     `json:"max_interval_days"`        // zero → 365
	DefaultResponseTimeMs  float64 `json:"default_response_time_ms"` // zero → 30000
	DisableTrendAdjustment bool    `json:"disable_trend_adjustment"` // zero false → trend multiplier applied
}

// Scheduler schedules card reviews using the enhanced SM-2 algorithm.
type Scheduler struct {
	maxIntervalDays        int
	defaultResponseTimeMs  float64
	disableTrendAdjustment bool
}

// NewScheduler creates a Scheduler from the given config.
// Zero-value fields are filled with defaults; invalid values return an error.
func NewScheduler(cfg SchedulerConfig) (*Scheduler, error) {
	maxIvl := cfg.MaxIntervalDays
	if maxIvl == 0 {
		maxIvl = DefaultMaxIntervalDays
	}
	if maxIvl < 0 {
		return nil, fmt.Errorf("sm2: maximum interval %d must be positive", maxIvl)
	}

	rt := cfg.DefaultResponseTimeMs
	if rt == 0 {
		rt = DefaultResponseTimeMs
	}
	if rt < 0 {
		return nil, fmt.Errorf("sm2: default response time %.0f must be positive", rt)
	}

	return &Scheduler{
		maxIntervalDays:        maxIvl,
		defaultResponseTimeMs:  rt,
		disableTrendAdjustment: cfg.DisableTrendAdjustment,
	}, nil
}

// Review processes one review of a card at the given time. A nil prior
// snapshot is treated as the first review of a new card. The input snapshot
// is not mutated; the updated copy is returned inside the Result.
//
// Event fields outside their documented ranges are clamped at this boundary
// before any arithmetic.
func (s *Scheduler) Review(prior *Snapshot, event ReviewEvent, now time.Time) Result {
	var snap Snapshot
	if prior != nil {
		snap = prior.clone()
	} else {
		snap = NewSnapshot("", "", now)
	}
	e := event.normalized()

	q := adjustedQuality(e, snap.AvgResponseTimeMs, s.defaultResponseTimeMs)

	// Statistics update. The response-time mean runs over all reviews, so it
	// is weighted by the review count before this one; success rate covers
	// only the retained history window.
	priorTotal := snap.TotalReviews
	priorLast := snap.LastReview
	snap.QualityHistory = appendBounded(snap.QualityHistory, q)
	snap.TotalReviews++
	snap.SuccessRate = successRate(snap.QualityHistory)
	snap.AvgResponseTimeMs = (snap.AvgResponseTimeMs*float64(priorTotal) + e.ResponseTimeMs) / float64(priorTotal+1)
	snap.Trend = trendOf(snap.QualityHistory)

	// SM-2 core. The interval grows by the pre-update ease factor.
	interval, repetitions := sm2Step(snap.EaseFactor, snap.IntervalDays, snap.Repetitions, q)
	snap.EaseFactor = nextEase(snap.EaseFactor, q)
	if !s.disableTrendAdjustment {
		interval = applyTrend(interval, snap.Trend)
	}
	interval = clampInterval(interval, s.maxIntervalDays)

	snap.IntervalDays = interval
	snap.Repetitions = repetitions
	snap.Due = now.AddDate(0, 0, interval)
	reviewedAt := now
	snap.LastReview = &reviewedAt

	// Memory decay is measured from the review before this one.
	var elapsedDays float64
	if priorLast != nil {
		elapsedDays = now.Sub(*priorLast).Hours() / 24.0
	}

	return Result{
		Snapshot:     snap,
		Due:          snap.Due,
		IntervalDays: interval,
		EaseFactor:   snap.EaseFactor,
		Feedback:     feedbackFor(q, interval),
		Analytics: Analytics{
			RetentionRate:  round2(snap.SuccessRate),
			MasteryLevel:   round2(masteryLevel(snap.QualityHistory, repetitions)),
			MemoryStrength: round2(memoryStrength(snap.SuccessRate, elapsedDays, interval)),
		},
	}
}

// PreviewQuality returns the interval that each whole raw quality score
// 0 through 5 would schedule, without committing a review. The preview event
// carries neutral confidence and the card's own average response time, so
// only the quality score drives the result.
func (s *Scheduler) PreviewQuality(prior *Snapshot, now time.Time) map[int]int {
	rt := s.defaultResponseTimeMs
	if prior != nil && prior.AvgResponseTimeMs > 0 {
		rt = prior.AvgResponseTimeMs
	}
	result := make(map[int]int, int(MaxQuality)+1)
	for q := 0; q <= int(MaxQuality); q++ {
		r := s.Review(prior, ReviewEvent{Quality: float64(q), ResponseTimeMs: rt, Confidence: 0.5}, now)
		result[q] = r.IntervalDays
	}
	return result
}

// Replay applies the given timed events in order to rebuild the snapshot's
// scheduling state. Returns ErrCardMismatch if any event's CardID does not
// match the snapshot's CardID.
func (s *Scheduler) Replay(snap Snapshot, events []TimedEvent) (Snapshot, error) {
	c := snap.clone()
	for _, ev := range events {
		if ev.CardID != c.CardID {
			return Snapshot{}, fmt.Errorf("%w: card %q, event %q", ErrCardMismatch, c.CardID, ev.CardID)
		}
		c = s.Review(&c, ev.Event, ev.ReviewedAt).Snapshot
	}
	return c, nil
}

// Retention estimates the probability of recall for the snapshot at the given
// time using the forgetting-curve model, without recording a review.
// Returns 0 if the card has never been reviewed.
func (s *Scheduler) Retention(snap Snapshot, now time.Time) float64 {
	if snap.LastReview == nil {
		return 0
	}
	elapsedDays := now.Sub(*snap.LastReview).Hours() / 24.0
	return memoryStrength(snap.SuccessRate, elapsedDays, snap.IntervalDays)
}

// schedulerJSON is the serialized form of a Scheduler.
type schedulerJSON struct {
	MaxIntervalDays        int     `json:"max_interval_days"`
	DefaultResponseTimeMs  float64 `json:"default_response_time_ms"`
	DisableTrendAdjustment bool    `json:"disable_trend_adjustment"`
}

// MarshalJSON implements json.Marshaler.
func (s *Scheduler) MarshalJSON() ([]byte, error) {
	return json.Marshal(schedulerJSON{
		MaxIntervalDays:        s.maxIntervalDays,
		DefaultResponseTimeMs:  s.defaultResponseTimeMs,
		DisableTrendAdjustment: s.disableTrendAdjustment,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
// It revalidates the serialized config through NewScheduler.
func (s *Scheduler) UnmarshalJSON(data []byte) error {
	var j schedulerJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	rebuilt, err := NewScheduler(SchedulerConfig{
		MaxIntervalDays:        j.MaxIntervalDays,
		DefaultResponseTimeMs:  j.DefaultResponseTimeMs,
		DisableTrendAdjustment: j.DisableTrendAdjustment,
	})
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}

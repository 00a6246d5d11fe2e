package sm2

import "math"

// Algorithm constants. The ease and interval rules follow the classic SM-2
// definition; the quality adjustments are the enhancements layered on top.
const (
	InitialEaseFactor      = 2.5 // ease factor for a card that has never been reviewed
	MinEaseFactor          = 1.3 // SM-2 ease floor
	MaxQuality             = 5.0
	SuccessThreshold       = 3.0 // adjusted quality at or above this counts as a successful recall
	HistoryLimit           = 20  // retained quality_history entries
	DefaultMaxIntervalDays = 365
	DefaultResponseTimeMs  = 30000 // 30 seconds, used until a card has its own average
	DefaultHorizonDays     = 7
)

// Quality adjustment weights.
const (
	quickResponseBonus  = 0.3 // response faster than half the running average
	slowResponsePenalty = 0.2 // response slower than twice the running average
	confidenceWeight    = 0.4 // scales (confidence - 0.5)
	hintPenalty         = 0.3 // per hint used
	partialCreditBonus  = 0.5 // partial answer on an otherwise failed recall
)

// Trend detection and adjustment.
const (
	trendWindow          = 5   // entries per comparison window
	trendThreshold       = 0.3 // minimum mean difference to leave Stable
	improvingMultiplier  = 1.2
	decliningMultiplier  = 0.8
)

// adjustedQuality applies the response-time, confidence, hint, and
// partial-credit corrections to a raw quality score. avgResponseMs is the
// card's running average; zero (never reviewed) falls back to defaultMs.
// The result is clamped to [0, MaxQuality].
func adjustedQuality(e ReviewEvent, avgResponseMs, defaultMs float64) float64 {
	q := e.Quality

	avg := avgResponseMs
	if avg == 0 {
		avg = defaultMs
	}
	ratio := e.ResponseTimeMs / avg
	if ratio < 0.5 {
		q += quickResponseBonus
	} else if ratio > 2.0 {
		q -= slowResponsePenalty
	}

	q += (e.Confidence - 0.5) * confidenceWeight
	q -= float64(e.HintsUsed) * hintPenalty

	if e.PartialCorrect && e.Quality < SuccessThreshold {
		q += partialCreditBonus
	}

	return clamp(q, 0, MaxQuality)
}

// easeDelta is the SM-2 ease factor update term:
// 0.1 - (5-q) * (0.08 + (5-q) * 0.02)
func easeDelta(q float64) float64 {
	return 0.1 - (MaxQuality-q)*(0.08+(MaxQuality-q)*0.02)
}

// nextEase applies easeDelta and the 1.3 floor.
func nextEase(ease, q float64) float64 {
	return math.Max(MinEaseFactor, ease+easeDelta(q))
}

// sm2Step advances the interval and repetition count for one review.
// A failed recall (q < SuccessThreshold) resets the learning process; the
// first two successful repetitions schedule six days out, after which the
// interval grows by the ease factor. The caller clamps the result.
func sm2Step(ease float64, intervalDays, repetitions int, q float64) (int, int) {
	if q < SuccessThreshold {
		return 1, 0
	}
	repetitions++
	if repetitions <= 2 {
		return 6, repetitions
	}
	return int(math.Round(float64(intervalDays) * ease)), repetitions
}

// trendOf compares the mean of the last trendWindow history entries against
// the window before it. Fewer than 3 entries, or an empty older window,
// reads as Stable.
func trendOf(history []float64) Trend {
	n := len(history)
	if n < 3 {
		return Stable
	}
	recentStart := max(0, n-trendWindow)
	olderStart := max(0, n-2*trendWindow)
	recent := history[recentStart:]
	older := history[olderStart:recentStart]
	if len(older) == 0 {
		return Stable
	}
	diff := mean(recent) - mean(older)
	switch {
	case diff > trendThreshold:
		return Improving
	case diff < -trendThreshold:
		return Declining
	default:
		return Stable
	}
}

// applyTrend stretches or shrinks the interval by the trend multiplier.
func applyTrend(intervalDays int, t Trend) int {
	switch t {
	case Improving:
		return int(math.Round(float64(intervalDays) * improvingMultiplier))
	case Declining:
		return int(math.Round(float64(intervalDays) * decliningMultiplier))
	default:
		return intervalDays
	}
}

// clampInterval bounds the interval to [1, maxDays].
func clampInterval(intervalDays, maxDays int) int {
	return min(max(intervalDays, 1), maxDays)
}

// successRate is the fraction of retained history entries at or above
// SuccessThreshold. Empty history reads as 0.
func successRate(history []float64) float64 {
	if len(history) == 0 {
		return 0
	}
	successes := 0
	for _, q := range history {
		if q >= SuccessThreshold {
			successes++
		}
	}
	return float64(successes) / float64(len(history))
}

// masteryLevel combines the mean of the last ≤5 retained scores with the
// repetition count: min(1, mean/5 * repetitions/10). Empty history reads as 0.
func masteryLevel(history []float64, repetitions int) float64 {
	n := len(history)
	if n == 0 {
		return 0
	}
	recent := history[max(0, n-trendWindow):]
	return math.Min(1, mean(recent)/MaxQuality*float64(repetitions)/10)
}

// memoryStrength estimates recall probability from the forgetting curve:
// max(0.1, retention * e^(-elapsedDays / (intervalDays * 0.5))).
func memoryStrength(retention, elapsedDays float64, intervalDays int) float64 {
	decay := math.Exp(-elapsedDays / (float64(intervalDays) * 0.5))
	return math.Max(0.1, retention*decay)
}

// appendBounded appends q to history, evicting the oldest entries beyond
// HistoryLimit. Always returns a fresh slice.
func appendBounded(history []float64, q float64) []float64 {
	keep := history
	if len(keep) >= HistoryLimit {
		keep = keep[len(keep)-(HistoryLimit-1):]
	}
	out := make([]float64, 0, len(keep)+1)
	out = append(out, keep...)
	return append(out, q)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

package sm2

import "fmt"

// StreakType classifies the run of outcomes at the end of a quality history.
type StreakType int

const (
	SuccessStreak StreakType = iota + 1 // Trailing entries at or above SuccessThreshold.
	FailureStreak                       // Trailing entries below SuccessThreshold.
)

// String returns "success" or "failure"; "StreakType(n)" for invalid values.
func (t StreakType) String() string {
	switch t {
	case SuccessStreak:
		return "success"
	case FailureStreak:
		return "failure"
	default:
		return fmt.Sprintf("StreakType(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler, so StreakType serializes as
// a string through encoding/json.
func (t StreakType) MarshalText() ([]byte, error) {
	switch t {
	case SuccessStreak, FailureStreak:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("sm2: invalid streak type: %d", int(t))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *StreakType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "success":
		*t = SuccessStreak
	case "failure":
		*t = FailureStreak
	default:
		return fmt.Errorf("sm2: invalid streak type: %q", text)
	}
	return nil
}

// Streak summarizes consecutive review outcomes in a quality history.
type Streak struct {
	Current int        `json:"current_streak"`
	Longest int        `json:"longest_streak"` // longest run of successes anywhere in the history.
	Type    StreakType `json:"streak_type"`
}

// CalculateStreak scans the quality history for the trailing run matching the
// most recent entry's outcome, and for the longest success run overall.
// Failure runs are not tracked for Longest. Empty history returns
// {0, 0, SuccessStreak}.
func CalculateStreak(history []float64) Streak {
	if len(history) == 0 {
		return Streak{Type: SuccessStreak}
	}

	streakType := FailureStreak
	if history[len(history)-1] >= SuccessThreshold {
		streakType = SuccessStreak
	}

	current := 0
	for i := len(history) - 1; i >= 0; i-- {
		success := history[i] >= SuccessThreshold
		if (streakType == SuccessStreak) != success {
			break
		}
		current++
	}

	longest, run := 0, 0
	for _, q := range history {
		if q >= SuccessThreshold {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}

	return Streak{Current: current, Longest: longest, Type: streakType}
}

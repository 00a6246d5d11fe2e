package sm2

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// FeedbackLevel classifies a review's adjusted quality for the user.
type FeedbackLevel int

const (
	Poor      FeedbackLevel = iota + 1 // Adjusted quality below 2.5.
	Fair                               // At least 2.5.
	Good                               // At least 3.5.
	Excellent                          // At least 4.5.
)

var (
	feedbackNames = [...]string{Poor: "poor", Fair: "fair", Good: "good", Excellent: "excellent"}
	feedbackByName = map[string]FeedbackLevel{
		"poor":      Poor,
		"fair":      Fair,
		"good":      Good,
		"excellent": Excellent,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = FeedbackLevel(0)
	_ json.Marshaler           = FeedbackLevel(0)
	_ json.Unmarshaler         = (*FeedbackLevel)(nil)
	_ encoding.TextMarshaler   = FeedbackLevel(0)
	_ encoding.TextUnmarshaler = (*FeedbackLevel)(nil)
)

// IsValid reports whether l is a valid feedback level (Poor through Excellent).
func (l FeedbackLevel) IsValid() bool {
	return l >= Poor && l <= Excellent
}

// String returns the name of the level ("poor", "fair", "good", "excellent").
// For invalid values it returns "FeedbackLevel(n)".
func (l FeedbackLevel) String() string {
	if l.IsValid() {
		return feedbackNames[l]
	}
	return fmt.Sprintf("FeedbackLevel(%d)", int(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l FeedbackLevel) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFeedbackLevel, int(l))
	}
	return []byte(feedbackNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *FeedbackLevel) UnmarshalText(text []byte) error {
	v, ok := feedbackByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidFeedbackLevel, text)
	}
	*l = v
	return nil
}

// MarshalJSON implements json.Marshaler. FeedbackLevel serializes as a JSON string.
func (l FeedbackLevel) MarshalJSON() ([]byte, error) {
	text, err := l.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (l *FeedbackLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFeedbackLevel, data)
	}
	return l.UnmarshalText([]byte(s))
}

// feedbackFor builds the user-facing feedback for an adjusted quality score
// and the interval that was just scheduled.
func feedbackFor(quality float64, intervalDays int) Feedback {
	switch {
	case quality >= 4.5:
		return Feedback{
			Level:          Excellent,
			Message:        "Outstanding! You have mastered this concept.",
			Recommendation: fmt.Sprintf("Next review in %d days. Keep up the excellent work!", intervalDays),
		}
	case quality >= 3.5:
		return Feedback{
			Level:          Good,
			Message:        "Good recall! You're building strong memory traces.",
			Recommendation: fmt.Sprintf("Review again in %d days to reinforce learning.", intervalDays),
		}
	case quality >= 2.5:
		return Feedback{
			Level:          Fair,
			Message:        "Partial recall. Consider reviewing the concept again.",
			Recommendation: fmt.Sprintf("Shortened interval to %d days for better retention.", intervalDays),
		}
	default:
		return Feedback{
			Level:          Poor,
			Message:        "Difficulty recalling. Additional study recommended.",
			Recommendation: "Review tomorrow and consider studying related concepts.",
		}
	}
}

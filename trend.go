package sm2

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Trend describes the direction of a card's recent recall quality.
type Trend int

const (
	Improving Trend = iota + 1 // Recent quality meaningfully above the prior window.
	Stable                     // No meaningful change.
	Declining                  // Recent quality meaningfully below the prior window.
)

var (
	trendNames = [...]string{Improving: "improving", Stable: "stable", Declining: "declining"}
	trendByName = map[string]Trend{
		"improving": Improving,
		"stable":    Stable,
		"declining": Declining,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Trend(0)
	_ json.Marshaler           = Trend(0)
	_ json.Unmarshaler         = (*Trend)(nil)
	_ encoding.TextMarshaler   = Trend(0)
	_ encoding.TextUnmarshaler = (*Trend)(nil)
)

func (t Trend) isValid() bool {
	return t >= Improving && t <= Declining
}

// String returns the name of the trend ("improving", "stable", "declining").
// For invalid values it returns "Trend(n)".
func (t Trend) String() string {
	if t.isValid() {
		return trendNames[t]
	}
	return fmt.Sprintf("Trend(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t Trend) MarshalText() ([]byte, error) {
	if !t.isValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTrend, int(t))
	}
	return []byte(trendNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Trend) UnmarshalText(text []byte) error {
	v, ok := trendByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTrend, text)
	}
	*t = v
	return nil
}

// MarshalJSON implements json.Marshaler. Trend serializes as a JSON string.
func (t Trend) MarshalJSON() ([]byte, error) {
	text, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (t *Trend) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTrend, data)
	}
	return t.UnmarshalText([]byte(s))
}

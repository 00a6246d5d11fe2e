package sm2

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestFeedbackLevelString(t *testing.T) {
	tests := []struct {
		level FeedbackLevel
		want  string
	}{
		{Poor, "poor"},
		{Fair, "fair"},
		{Good, "good"},
		{Excellent, "excellent"},
		{FeedbackLevel(0), "FeedbackLevel(0)"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFeedbackLevelOrdering(t *testing.T) {
	if !(Poor < Fair && Fair < Good && Good < Excellent) {
		t.Error("feedback levels should be ordered Poor < Fair < Good < Excellent")
	}
}

func TestFeedbackLevelJSONRoundTrip(t *testing.T) {
	for _, level := range []FeedbackLevel{Poor, Fair, Good, Excellent} {
		data, err := json.Marshal(level)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", level, err)
		}
		var back FeedbackLevel
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if back != level {
			t.Errorf("round trip %v → %s → %v", level, data, back)
		}
	}
}

func TestFeedbackLevelUnmarshalInvalid(t *testing.T) {
	var l FeedbackLevel
	err := l.UnmarshalText([]byte("superb"))
	if !errors.Is(err, ErrInvalidFeedbackLevel) {
		t.Errorf("err = %v, want ErrInvalidFeedbackLevel", err)
	}
}

func TestFeedbackForThresholds(t *testing.T) {
	tests := []struct {
		quality float64
		want    FeedbackLevel
	}{
		{5.0, Excellent},
		{4.5, Excellent},
		{4.49, Good},
		{3.5, Good},
		{3.49, Fair},
		{2.5, Fair},
		{2.49, Poor},
		{0, Poor},
	}
	for _, tt := range tests {
		fb := feedbackFor(tt.quality, 6)
		if fb.Level != tt.want {
			t.Errorf("feedbackFor(%.2f) = %v, want %v", tt.quality, fb.Level, tt.want)
		}
		if fb.Message == "" {
			t.Errorf("feedbackFor(%.2f) has empty message", tt.quality)
		}
	}
}

func TestFeedbackRecommendationEmbedsInterval(t *testing.T) {
	for _, q := range []float64{5, 4, 3} {
		fb := feedbackFor(q, 17)
		if !strings.Contains(fb.Recommendation, "17 days") {
			t.Errorf("feedbackFor(%.0f, 17).Recommendation = %q, should mention 17 days", q, fb.Recommendation)
		}
	}
	// The poor tier always points at tomorrow instead.
	fb := feedbackFor(1, 17)
	if !strings.Contains(fb.Recommendation, "tomorrow") {
		t.Errorf("poor recommendation = %q, should mention tomorrow", fb.Recommendation)
	}
}

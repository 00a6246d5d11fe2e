package sm2

import (
	"fmt"
	"math"
	"time"
)

// RetentionBand is an ordinal presentation tier derived from a success rate.
type RetentionBand int

const (
	BandStrong RetentionBand = iota + 1 // success rate ≥ 0.8
	BandSteady                          // ≥ 0.6
	BandShaky                           // ≥ 0.4
	BandWeak                            // below 0.4
)

var bandNames = [...]string{BandStrong: "strong", BandSteady: "steady", BandShaky: "shaky", BandWeak: "weak"}

// String returns the band name; "RetentionBand(n)" for invalid values.
func (b RetentionBand) String() string {
	if b >= BandStrong && b <= BandWeak {
		return bandNames[b]
	}
	return fmt.Sprintf("RetentionBand(%d)", int(b))
}

// BandForSuccessRate maps a success rate onto its presentation band.
func BandForSuccessRate(rate float64) RetentionBand {
	switch {
	case rate >= 0.8:
		return BandStrong
	case rate >= 0.6:
		return BandSteady
	case rate >= 0.4:
		return BandShaky
	default:
		return BandWeak
	}
}

// FormatNextReview renders a due date relative to now ("Today", "Tomorrow",
// "3 days overdue", "In 2 weeks", ...). The calendar-day difference is
// ceil((due - now) / 24h), matching how callers display schedules.
func FormatNextReview(due, now time.Time) string {
	diffDays := int(math.Ceil(due.Sub(now).Hours() / 24))

	switch {
	case diffDays == 0:
		return "Today"
	case diffDays == 1:
		return "Tomorrow"
	case diffDays == -1:
		return "Yesterday (Overdue)"
	case diffDays < 0:
		return fmt.Sprintf("%d days overdue", -diffDays)
	case diffDays < 7:
		return fmt.Sprintf("In %d days", diffDays)
	case diffDays < 30:
		return fmt.Sprintf("In %d weeks", (diffDays+6)/7)
	default:
		return fmt.Sprintf("In %d months", (diffDays+29)/30)
	}
}

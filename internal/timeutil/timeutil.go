package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayWindow describes how far a target date sits from "now" in whole
// calendar days. Exactly one field is non-zero; both are zero when the
// target is today.
type DayWindow struct {
	DaysBack  int
	DaysAhead int
}

// CalculateDaysByDate computes the whole-day distance between now and the
// target date. Both instants are normalized to midnight in their own
// locations, then the zone-offset difference is folded back in so the
// count stays stable across daylight-saving transitions.
func CalculateDaysByDate(now, target time.Time) DayWindow {
	nowMidnight := midnight(now)
	targetMidnight := midnight(target)

	_, nowOffset := nowMidnight.Zone()
	_, targetOffset := targetMidnight.Zone()

	diff := targetMidnight.Sub(nowMidnight) + time.Duration(targetOffset-nowOffset)*time.Second
	days := int(diff / (24 * time.Hour))

	if days > 0 {
		return DayWindow{DaysAhead: days}
	}
	if days < 0 {
		return DayWindow{DaysBack: -days}
	}
	return DayWindow{}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Package period classifies a wall-clock instant into a meal sitting.
package period

import (
	"strings"
	"time"
)

type Period string

const (
	Lunch  Period = "lunch"
	Dinner Period = "dinner"
	None   Period = ""
)

func (p Period) String() string {
	return string(p)
}

// Windows describes the two serving windows in the form shown to the
// operator when a scan happens outside of them.
const Windows = "11:00 to 15:00 and 18:30 to 21:30"

// Classify maps a local time to the meal period being served:
//
//	lunch:  11:00:00 <= t < 15:00:00
//	dinner: 18:30:00 <= t <= 21:30:00
//
// Both dinner endpoints are inclusive; the lunch end is exclusive. Anything
// else is None. Classify looks only at the wall clock of t, in whatever
// location t carries.
func Classify(t time.Time) Period {
	hour, minute := t.Hour(), t.Minute()

	if hour >= 11 && hour < 15 {
		return Lunch
	}

	switch {
	case hour == 18 && minute >= 30:
		return Dinner
	case hour == 19 || hour == 20:
		return Dinner
	case hour == 21 && minute < 30:
		return Dinner
	case hour == 21 && minute == 30 && t.Second() == 0 && t.Nanosecond() == 0:
		return Dinner
	}

	return None
}

// Normalize lower-cases and trims a client-supplied period filter so that
// "Lunch " matches stored entries.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

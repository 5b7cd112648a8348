// Package quiet decides whether reminders fall inside the configured quiet hours.
package quiet

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidClock indicates a time-of-day string that is not "HH:MM".
var ErrInvalidClock = errors.New("invalid clock value")

// Hours and minutes may each be written with one or two digits.
const clockLayout = "15:4"

// ParseClock parses "HH:MM" into an offset from midnight.
func ParseClock(value string) (time.Duration, error) {
	parsed, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidClock, value, err)
	}
	return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute, nil
}

// Suppress reports whether now lies within the quiet window [start, end].
// Windows with start after end wrap midnight. A malformed start or end
// disables suppression.
func Suppress(now time.Time, enabled bool, start, end string) bool {
	if !enabled {
		return false
	}
	startOffset, err := ParseClock(start)
	if err != nil {
		return false
	}
	endOffset, err := ParseClock(end)
	if err != nil {
		return false
	}

	current := timeOfDay(now)
	if startOffset <= endOffset {
		return startOffset <= current && current <= endOffset
	}
	return current >= startOffset || current <= endOffset
}

func timeOfDay(now time.Time) time.Duration {
	hour, minute, second := now.Clock()
	return time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(now.Nanosecond())
}

package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is a half-open [Start, End) range in minutes from midnight.
// Start < End always holds; midnight-crossing intervals are rejected at
// construction. Every overlap comparison in the system goes through
// Interval.Overlaps; no call site compares "HH:MM" strings directly.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

const minutesPerDay = 24 * 60

// ParseClock converts a 24-hour "HH:MM" string to minutes from midnight.
func ParseClock(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, NewValidationError("invalid time %q: expected 24-hour HH:MM", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, NewValidationError("invalid time %q: hour out of range", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, NewValidationError("invalid time %q: minute out of range", hhmm)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// NewInterval builds an Interval from a wall-clock "HH:MM" pair.
func NewInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return IntervalFromMinutes(s, e)
}

// IntervalFromMinutes builds an Interval from minute-of-day bounds.
func IntervalFromMinutes(start, end int) (Interval, error) {
	if start < 0 || end > minutesPerDay {
		return Interval{}, NewValidationError("interval [%d, %d) out of day range", start, end)
	}
	if end <= start {
		return Interval{}, NewValidationError("interval end %s must be after start %s", FormatClock(end), FormatClock(start))
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps implements the canonical strict-overlap rule: two intervals
// overlap iff a.Start < b.End && a.End > b.Start. Touching intervals
// (a.End == b.Start) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// Contains reports whether inner lies entirely within iv, used for
// operating-hours containment checks.
func (iv Interval) Contains(inner Interval) bool {
	return iv.Start <= inner.Start && inner.End <= iv.End
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

func (iv Interval) String() string {
	return FormatClock(iv.Start) + "-" + FormatClock(iv.End)
}

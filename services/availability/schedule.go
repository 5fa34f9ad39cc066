package availability

import (
	"time"

	"courtside/models"
)

// weekdayNames is indexed by time.Weekday (0 = Sunday). Every day-of-week
// derivation in the system goes through DayOf.
var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// DayOf returns the lowercase weekday name for a date.
func DayOf(date time.Time) string {
	return weekdayNames[int(date.Weekday())]
}

type dayWindow struct {
	open   bool
	window Interval
}

// Schedule is a court's weekly operating hours with clock strings parsed once
// at construction. Read-only after construction.
type Schedule struct {
	days map[string]dayWindow
}

// NewSchedule validates and parses a stored weekly schedule. A weekday absent
// from ws is treated as closed, never as open. An available day with a
// malformed or empty window fails with a validation error.
func NewSchedule(ws models.WeeklySchedule) (Schedule, error) {
	days := make(map[string]dayWindow, len(weekdayNames))
	for _, name := range weekdayNames {
		hours, ok := ws[name]
		if !ok || !hours.IsAvailable {
			days[name] = dayWindow{open: false}
			continue
		}
		window, err := NewInterval(hours.Start, hours.End)
		if err != nil {
			return Schedule{}, NewValidationError("schedule for %s: %v", name, err)
		}
		days[name] = dayWindow{open: true, window: window}
	}
	return Schedule{days: days}, nil
}

// IsOpenOn reports whether the court operates at all on the given date.
func (s Schedule) IsOpenOn(date time.Time) bool {
	return s.days[DayOf(date)].open
}

// OperatingInterval returns the open window for a date, or a closed-day
// refusal when the court does not operate that day.
func (s Schedule) OperatingInterval(date time.Time) (Interval, error) {
	day := DayOf(date)
	dw := s.days[day]
	if !dw.open {
		return Interval{}, newReason(CodeClosedDay, "Court is closed on %s", day)
	}
	return dw.window, nil
}

package models

// DayHours describes a single weekday's operating window in wall-clock form.
// Start/End are "HH:MM" 24-hour strings and are only meaningful when
// IsAvailable is true.
type DayHours struct {
	IsAvailable bool   `bson:"is_available" json:"is_available"`
	Start       string `bson:"start,omitempty" json:"start,omitempty"` // e.g., "06:00"
	End         string `bson:"end,omitempty" json:"end,omitempty"`     // e.g., "22:00"
}

// WeeklySchedule maps lowercase weekday names ("sunday".."saturday") to that
// day's hours. A missing day is treated as closed, never as open.
type WeeklySchedule map[string]DayHours

package models

import "time"

// Block categories an owner can declare.
const (
	BlockMaintenance  = "maintenance"
	BlockPrivateEvent = "private_event"
	BlockHoliday      = "holiday"
)

// BlockedSlot is an owner-declared unavailability window on a single calendar
// date, independent of bookings. Stored dates may carry a time-of-day artifact
// from parsing; comparisons must be date-only (year/month/day).
type BlockedSlot struct {
	ID        string    `bson:"id" json:"id"`
	CourtID   string    `bson:"court_id" json:"court_id"`
	Date      time.Time `bson:"date" json:"date"`
	Start     int       `bson:"start" json:"start"` // Minutes from midnight
	End       int       `bson:"end" json:"end"`     // Minutes from midnight
	Reason    string    `bson:"reason" json:"reason"`
	Category  string    `bson:"category" json:"category"` // maintenance | private_event | holiday
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

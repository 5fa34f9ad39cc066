package models

// Slot grid statuses.
const (
	SlotAvailable = "available"
	SlotBooked    = "booked"
	SlotBlocked   = "blocked"
)

// GridSlot is one fixed-size step of a court's operating hours with its
// computed status. Detail carries the block reason or the booking holder's
// display name, depending on Status.
type GridSlot struct {
	Start  int    `json:"start"` // Minutes from midnight
	End    int    `json:"end"`   // Minutes from midnight
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// SlotGrid is the full discretized view of one court on one date.
type SlotGrid struct {
	Closed bool       `json:"closed"`
	Slots  []GridSlot `json:"slots"`
}

// Per-court statuses for the sport-level aggregation view.
const (
	CourtAvailable   = "available"
	CourtBooked      = "booked"
	CourtBlocked     = "blocked"
	CourtUnavailable = "unavailable" // Closed day or outside operating hours
)

// CourtStatus classifies one court for a requested date and interval.
type CourtStatus struct {
	Court              Court    `json:"court"`
	Status             string   `json:"status"`
	Reason             string   `json:"reason,omitempty"`
	BookedBy           string   `json:"booked_by,omitempty"`
	ConflictingBooking *Booking `json:"conflicting_booking,omitempty"`
}

// CourtStatusReport aggregates per-court statuses across a venue's courts of
// one sport type, plus summary counts for one-line UI strings.
type CourtStatusReport struct {
	Courts  []CourtStatus  `json:"courts"`
	Counts  map[string]int `json:"counts"`
	Summary string         `json:"summary"`
}

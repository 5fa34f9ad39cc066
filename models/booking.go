package models

import "time"

// Booking statuses. Only Pending and Confirmed occupy a slot for conflict
// purposes; PaymentPending does not hold the slot against other users.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusCancelled      = "cancelled"
	StatusCompleted      = "completed"
	StatusNoShow         = "no_show"
	StatusPaymentPending = "payment_pending"
)

// Booking represents a court reservation record.
type Booking struct {
	ID              string           `bson:"id" json:"id"`
	CourtID         string           `bson:"court_id" json:"court_id"`
	VenueID         string           `bson:"venue_id" json:"venue_id"`
	UserID          string           `bson:"user_id" json:"user_id"`
	UserName        string           `bson:"user_name" json:"user_name"` // Display name shown on schedule views
	Date            time.Time        `bson:"date" json:"date"`           // Calendar date; time component is an artifact
	Start           int              `bson:"start" json:"start"`         // Minutes from midnight
	End             int              `bson:"end" json:"end"`             // Minutes from midnight
	Status          string           `bson:"status" json:"status"`
	Pricing         PricingBreakdown `bson:"pricing" json:"pricing"`
	Equipment       []string         `bson:"equipment,omitempty" json:"equipment,omitempty"` // Honored equipment line names
	PaymentIntentID string           `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time        `bson:"created_at" json:"created_at"`
}

// Occupies reports whether this booking holds its slot for conflict checks.
func (b Booking) Occupies() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

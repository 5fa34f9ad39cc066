package models

import "time"

// Venue represents a sports facility that hosts one or more courts.
type Venue struct {
	ID            string    `bson:"id" json:"id"`                         // Unique venue identifier (UUID)
	OwnerID       string    `bson:"owner_id" json:"owner_id"`             // Facility owner managing this venue
	Name          string    `bson:"name" json:"name"`
	City          string    `bson:"city" json:"city"`
	Address       string    `bson:"address" json:"address"`
	SportTypes    []string  `bson:"sport_types" json:"sport_types"`       // e.g., ["badminton", "tennis"]
	Approved      bool      `bson:"approved" json:"approved"`             // Admin moderation flag
	TotalBookings int       `bson:"total_bookings" json:"total_bookings"` // Denormalized; recomputed by the aggregation job
	TotalRevenue  float64   `bson:"total_revenue" json:"total_revenue"`   // Denormalized; recomputed by the aggregation job
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// Court represents a single bookable court inside a venue.
type Court struct {
	ID          string         `bson:"id" json:"id"`
	VenueID     string         `bson:"venue_id" json:"venue_id"`
	Name        string         `bson:"name" json:"name"`
	SportType   string         `bson:"sport_type" json:"sport_type"`     // e.g., "badminton"
	CourtNumber int            `bson:"court_number" json:"court_number"` // Display/aggregation ordering key
	HourlyRate  float64        `bson:"hourly_rate" json:"hourly_rate"`
	Active      bool           `bson:"active" json:"active"`
	Schedule    WeeklySchedule `bson:"schedule" json:"schedule"`
	Equipment   []Equipment    `bson:"equipment,omitempty" json:"equipment,omitempty"`
	CreatedAt   time.Time      `bson:"created_at" json:"created_at"`
}

// Equipment is one rentable item offered with a court.
type Equipment struct {
	Name      string  `bson:"name" json:"name"`
	Available bool    `bson:"available" json:"available"`
	RentPrice float64 `bson:"rent_price" json:"rent_price"` // Per booking, not per hour
}

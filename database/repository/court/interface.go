package courtRepo

import (
	"context"

	"courtside/database"
	"courtside/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CourtRepository is the court, schedule and blocked-slot provider consumed
// by the availability engine's callers. Equipment catalogues ride on the
// court document itself.
type CourtRepository interface {
	GetCourtByID(ctx context.Context, courtID string) (*models.Court, error)
	GetVenueByID(ctx context.Context, venueID string) (*models.Venue, error)
	GetCourtsByVenueAndSport(ctx context.Context, venueID, sportType string) ([]models.Court, error)

	UpdateSchedule(ctx context.Context, courtID string, schedule models.WeeklySchedule) error

	GetBlockedSlots(ctx context.Context, courtID string) ([]models.BlockedSlot, error)
	AddBlockedSlot(ctx context.Context, slot *models.BlockedSlot) error
	RemoveBlockedSlot(ctx context.Context, courtID, blockID string) error

	ListVenueIDs(ctx context.Context) ([]string, error)
	UpdateVenueAggregates(ctx context.Context, venueID string, totalBookings int, totalRevenue float64) error
}

type mongoCourtRepo struct {
	courtColl   *mongo.Collection
	venueColl   *mongo.Collection
	blockedColl *mongo.Collection
}

// NewMongoCourtRepo constructs a CourtRepository over the courtside database.
func NewMongoCourtRepo() CourtRepository {
	db := database.MongoClient.Database("courtside")
	return &mongoCourtRepo{
		courtColl:   db.Collection("courts"),
		venueColl:   db.Collection("venues"),
		blockedColl: db.Collection("blocked_slots"),
	}
}

package bookingRepo

import (
	"context"
	"time"

	"courtside/database"
	"courtside/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the booking-ledger provider: ledger snapshots for the
// availability engine plus the atomic reserve-if-available mutation.
type BookingRepository interface {
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetByPaymentIntent(ctx context.Context, intentID string) (*models.Booking, error)

	// GetByCourtAndDate returns the ledger snapshot for one court on one
	// calendar date, every status included; the engine decides occupancy.
	GetByCourtAndDate(ctx context.Context, courtID string, date time.Time) ([]models.Booking, error)

	// ReserveTransactionally re-reads the court's ledger inside a Mongo
	// session transaction, runs validate against that snapshot, and inserts
	// the booking only when validate returns nil. Callers serialize per
	// court around this; the transaction closes the remaining
	// read-validate-insert window.
	ReserveTransactionally(ctx context.Context, booking *models.Booking, validate func(snapshot []models.Booking) error) error

	UpdateStatus(ctx context.Context, bookingID, status string) error
	SetPaymentIntent(ctx context.Context, bookingID, intentID string) error

	// CancelStalePaymentPending cancels payment_pending bookings created
	// before the cutoff, returning how many were reaped.
	CancelStalePaymentPending(ctx context.Context, cutoff time.Time) (int64, error)

	// VenueTotals recomputes the denormalized booking count and revenue for
	// a venue from the ledger (confirmed and completed bookings only).
	VenueTotals(ctx context.Context, venueID string) (int, float64, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository over the courtside database.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("courtside")
	return &mongoBookingRepo{coll: db.Collection("bookings")}
}

package booking

import (
	"context"
	"time"

	bookingRepo "courtside/database/repository/booking"
	courtRepo "courtside/database/repository/court"
	"courtside/models"
	"courtside/services/payment"

	"github.com/go-redis/redis/v8"
)

// ReserveRequest is the typed, validated-once booking payload. Start and End
// are 24-hour "HH:MM" strings; everything downstream works in minutes.
type ReserveRequest struct {
	CourtID   string                      `json:"court_id" binding:"required"`
	UserID    string                      `json:"user_id" binding:"required"`
	UserName  string                      `json:"user_name"`
	Date      string                      `json:"date" binding:"required"` // "2006-01-02"
	Start     string                      `json:"start" binding:"required"`
	End       string                      `json:"end" binding:"required"`
	Equipment []models.EquipmentSelection `json:"equipment,omitempty"`
}

// BlockRequest declares an owner unavailability window. CourtID comes from
// the route path, not the body.
type BlockRequest struct {
	CourtID  string `json:"-"`
	Date     string `json:"date" binding:"required"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
	Category string `json:"category" binding:"required"` // maintenance | private_event | holiday
}

// BookingService is the write-path and query surface over the availability
// engine. Reserve is the conflict guard: it re-validates against a fresh
// ledger snapshot inside the court's critical section before persisting.
type BookingService interface {
	Reserve(ctx context.Context, req ReserveRequest) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID, userID string) error
	ConfirmPayment(ctx context.Context, intentID string) error
	FailPayment(ctx context.Context, intentID string) error

	SlotGrid(ctx context.Context, courtID string, date time.Time, granularity int) (models.SlotGrid, error)
	SportTypeStatus(ctx context.Context, venueID, sportType string, date time.Time, start, end string) (models.CourtStatusReport, error)
	Quote(ctx context.Context, courtID, start, end string, selections []models.EquipmentSelection) (models.PricingBreakdown, []string, error)

	AddBlock(ctx context.Context, req BlockRequest) (*models.BlockedSlot, error)
	RemoveBlock(ctx context.Context, courtID, blockID string) error
	UpdateSchedule(ctx context.Context, courtID string, schedule models.WeeklySchedule) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	CourtRepo   courtRepo.CourtRepository
	BookingRepo bookingRepo.BookingRepository
	Payments    payment.Processor
	CacheClient *redis.Client
	Locks       *CourtLocks
	Clock       func() time.Time // defaults to time.Now
}

func (s *DefaultBookingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"courtside/models"
	"courtside/services/availability"
	"courtside/services/pricing"
	"courtside/utils"
)

// ParseDate parses the wire "2006-01-02" date format used by every handler.
func ParseDate(date string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, availability.NewValidationError("invalid date %q: expected YYYY-MM-DD", date)
	}
	return d, nil
}

// courtInputs assembles the engine snapshot for one court: parsed schedule,
// current blocks, and the booking ledger for the date.
func (s *DefaultBookingService) courtInputs(ctx context.Context, court *models.Court, date time.Time) (availability.CourtInputs, error) {
	sched, err := availability.NewSchedule(court.Schedule)
	if err != nil {
		return availability.CourtInputs{}, err
	}
	blocks, err := s.CourtRepo.GetBlockedSlots(ctx, court.ID)
	if err != nil {
		return availability.CourtInputs{}, err
	}
	bookings, err := s.BookingRepo.GetByCourtAndDate(ctx, court.ID, date)
	if err != nil {
		return availability.CourtInputs{}, err
	}
	return availability.CourtInputs{
		Schedule: sched,
		Blocks:   availability.NewBlockedSlotSet(blocks),
		Ledger:   availability.NewLedger(bookings),
	}, nil
}

// Reserve validates and persists a reservation. The court, its schedule and
// its block set are all read while the court's lock is held, and the booking
// ledger is re-read inside the repository transaction, so a block or booking
// landing concurrently cannot slip past the validate closure.
func (s *DefaultBookingService) Reserve(ctx context.Context, req ReserveRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	iv, err := availability.NewInterval(req.Start, req.End)
	if err != nil {
		return nil, err
	}
	durationHours := float64(iv.Duration()) / 60
	if err := pricing.ValidateDuration(durationHours); err != nil {
		return nil, err
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	unlock := s.Locks.Lock(req.CourtID)
	defer unlock()

	court, err := s.CourtRepo.GetCourtByID(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}
	if !court.Active {
		return nil, availability.NewValidationError("court %s is not accepting bookings", court.Name)
	}
	sched, err := availability.NewSchedule(court.Schedule)
	if err != nil {
		return nil, err
	}
	blocks, err := s.CourtRepo.GetBlockedSlots(ctx, court.ID)
	if err != nil {
		return nil, err
	}

	breakdown, honored := pricing.Price(court.HourlyRate, durationHours, req.Equipment, court.Equipment)

	booking := &models.Booking{
		ID:        uuid.New().String(),
		CourtID:   court.ID,
		VenueID:   court.VenueID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Date:      date,
		Start:     iv.Start,
		End:       iv.End,
		Status:    models.StatusPaymentPending,
		Pricing:   breakdown,
		Equipment: honored,
		CreatedAt: s.now(),
	}

	slotReq := availability.SlotRequest{Date: date, Interval: iv, UserID: req.UserID}
	blockSet := availability.NewBlockedSlotSet(blocks)

	err = s.BookingRepo.ReserveTransactionally(ctx, booking, func(snapshot []models.Booking) error {
		in := availability.CourtInputs{
			Schedule: sched,
			Blocks:   blockSet,
			Ledger:   availability.NewLedger(snapshot),
		}
		return availability.ValidateRequestedSlot(in, slotReq, s.now())
	})
	if err != nil {
		return nil, err
	}

	if s.Payments != nil {
		intentID, payErr := s.Payments.CreateIntent(ctx, booking)
		if payErr != nil {
			logger.Error("payment intent creation failed, cancelling booking",
				zap.String("bookingID", booking.ID), zap.Error(payErr))
			_ = s.BookingRepo.UpdateStatus(ctx, booking.ID, models.StatusCancelled)
			return nil, fmt.Errorf("payment setup failed: %w", payErr)
		}
		booking.PaymentIntentID = intentID
		if err := s.BookingRepo.SetPaymentIntent(ctx, booking.ID, intentID); err != nil {
			logger.Error("failed to persist payment intent id",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	s.invalidateGrid(ctx, court.ID, date)
	logger.Info("booking reserved",
		zap.String("bookingID", booking.ID),
		zap.String("courtID", court.ID),
		zap.String("slot", iv.String()))
	return booking, nil
}

// Cancel releases a booking held by the given user.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID, userID string) error {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return availability.NewValidationError("booking %s does not belong to this user", bookingID)
	}
	if booking.Status == models.StatusCancelled || booking.Status == models.StatusCompleted {
		return availability.NewValidationError("booking %s is already %s", bookingID, booking.Status)
	}
	if err := s.BookingRepo.UpdateStatus(ctx, bookingID, models.StatusCancelled); err != nil {
		return err
	}
	s.invalidateGrid(ctx, booking.CourtID, booking.Date)
	return nil
}

// ConfirmPayment transitions payment_pending to confirmed on gateway success.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, intentID string) error {
	return s.settlePayment(ctx, intentID, models.StatusConfirmed)
}

// FailPayment cancels the booking on gateway failure or timeout.
func (s *DefaultBookingService) FailPayment(ctx context.Context, intentID string) error {
	return s.settlePayment(ctx, intentID, models.StatusCancelled)
}

func (s *DefaultBookingService) settlePayment(ctx context.Context, intentID, status string) error {
	booking, err := s.BookingRepo.GetByPaymentIntent(ctx, intentID)
	if err != nil {
		return err
	}
	if booking.Status != models.StatusPaymentPending {
		// Webhook retries after the terminal transition are a no-op.
		return nil
	}
	if err := s.BookingRepo.UpdateStatus(ctx, booking.ID, status); err != nil {
		return err
	}
	s.invalidateGrid(ctx, booking.CourtID, booking.Date)
	utils.GetLogger().Info("payment settled",
		zap.String("bookingID", booking.ID), zap.String("status", status))
	return nil
}

// SportTypeStatus classifies every active court of a sport at a venue for
// the requested window.
func (s *DefaultBookingService) SportTypeStatus(ctx context.Context, venueID, sportType string, date time.Time, start, end string) (models.CourtStatusReport, error) {
	iv, err := availability.NewInterval(start, end)
	if err != nil {
		return models.CourtStatusReport{}, err
	}
	if _, err := s.CourtRepo.GetVenueByID(ctx, venueID); err != nil {
		return models.CourtStatusReport{}, err
	}
	courts, err := s.CourtRepo.GetCourtsByVenueAndSport(ctx, venueID, sportType)
	if err != nil {
		return models.CourtStatusReport{}, err
	}

	snapshots := make([]availability.CourtSnapshot, 0, len(courts))
	for i := range courts {
		court := courts[i]
		if !court.Active {
			continue
		}
		in, err := s.courtInputs(ctx, &court, date)
		if err != nil {
			return models.CourtStatusReport{}, err
		}
		snapshots = append(snapshots, availability.CourtSnapshot{Court: court, Inputs: in})
	}

	return availability.CourtStatusForSportType(snapshots, sportType, date, iv), nil
}

// Quote prices a proposed booking without reserving anything.
func (s *DefaultBookingService) Quote(ctx context.Context, courtID, start, end string, selections []models.EquipmentSelection) (models.PricingBreakdown, []string, error) {
	iv, err := availability.NewInterval(start, end)
	if err != nil {
		return models.PricingBreakdown{}, nil, err
	}
	durationHours := float64(iv.Duration()) / 60
	if err := pricing.ValidateDuration(durationHours); err != nil {
		return models.PricingBreakdown{}, nil, err
	}
	court, err := s.CourtRepo.GetCourtByID(ctx, courtID)
	if err != nil {
		return models.PricingBreakdown{}, nil, err
	}
	breakdown, honored := pricing.Price(court.HourlyRate, durationHours, selections, court.Equipment)
	return breakdown, honored, nil
}

// AddBlock declares an owner unavailability window. Maintenance cannot be
// scheduled over a live reservation, and the check shares the court's lock
// with Reserve since it is itself a read-then-write sequence.
func (s *DefaultBookingService) AddBlock(ctx context.Context, req BlockRequest) (*models.BlockedSlot, error) {
	iv, err := availability.NewInterval(req.Start, req.End)
	if err != nil {
		return nil, err
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	switch req.Category {
	case models.BlockMaintenance, models.BlockPrivateEvent, models.BlockHoliday:
	default:
		return nil, availability.NewValidationError("unknown block category %q", req.Category)
	}
	unlock := s.Locks.Lock(req.CourtID)
	defer unlock()

	court, err := s.CourtRepo.GetCourtByID(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	existing, err := s.CourtRepo.GetBlockedSlots(ctx, court.ID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.BookingRepo.GetByCourtAndDate(ctx, court.ID, date)
	if err != nil {
		return nil, err
	}

	slot := models.BlockedSlot{
		ID:        uuid.New().String(),
		CourtID:   court.ID,
		Date:      date,
		Start:     iv.Start,
		End:       iv.End,
		Reason:    req.Reason,
		Category:  req.Category,
		CreatedAt: s.now(),
	}
	set := availability.NewBlockedSlotSet(existing)
	if err := set.Add(slot, availability.NewLedger(bookings)); err != nil {
		return nil, err
	}
	if err := s.CourtRepo.AddBlockedSlot(ctx, &slot); err != nil {
		return nil, err
	}
	s.invalidateGrid(ctx, court.ID, date)
	return &slot, nil
}

// RemoveBlock deletes an owner-declared block.
func (s *DefaultBookingService) RemoveBlock(ctx context.Context, courtID, blockID string) error {
	return s.CourtRepo.RemoveBlockedSlot(ctx, courtID, blockID)
}

// UpdateSchedule validates the full 7-day schedule once at the boundary and
// persists it under the court's lock, so an in-flight Reserve never validates
// against hours that are being replaced. Bad clock strings never reach storage.
func (s *DefaultBookingService) UpdateSchedule(ctx context.Context, courtID string, schedule models.WeeklySchedule) error {
	if _, err := availability.NewSchedule(schedule); err != nil {
		return err
	}

	unlock := s.Locks.Lock(courtID)
	defer unlock()

	if _, err := s.CourtRepo.GetCourtByID(ctx, courtID); err != nil {
		return err
	}
	return s.CourtRepo.UpdateSchedule(ctx, courtID, schedule)
}

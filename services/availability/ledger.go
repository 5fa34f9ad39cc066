package availability

import (
	"sort"
	"time"

	"courtside/models"
)

// Ledger is a read-only snapshot of one court's bookings around a date.
// Only pending and confirmed bookings occupy slots; cancelled, completed,
// no-show and payment_pending bookings never block a new reservation.
type Ledger struct {
	bookings []models.Booking
}

// NewLedger wraps a booking snapshot supplied by the persistence layer.
func NewLedger(bookings []models.Booking) Ledger {
	return Ledger{bookings: bookings}
}

// OccupyingBookings returns the occupying bookings on the date that overlap
// the interval, ascending by start time (stable).
func (l Ledger) OccupyingBookings(date time.Time, iv Interval) []models.Booking {
	var out []models.Booking
	for _, b := range l.bookings {
		if !b.Occupies() || !SameDate(b.Date, date) {
			continue
		}
		if iv.Overlaps(Interval{Start: b.Start, End: b.End}) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// HasConflict reports whether any occupying booking overlaps the interval.
func (l Ledger) HasConflict(date time.Time, iv Interval) bool {
	return l.FirstConflict(date, iv) != nil
}

// FirstConflict returns the earliest-starting occupying booking overlapping
// the interval, or nil. Full booking detail is returned so callers can show
// the user which reservation caused the refusal.
func (l Ledger) FirstConflict(date time.Time, iv Interval) *models.Booking {
	hits := l.OccupyingBookings(date, iv)
	if len(hits) == 0 {
		return nil
	}
	return &hits[0]
}

// DuplicateForUser reports whether the user already holds an occupying
// booking for the exact same start and end on the date. Overlapping-but-not-
// identical intervals are not duplicates: a user may book the adjacent slot.
func (l Ledger) DuplicateForUser(userID string, date time.Time, iv Interval) bool {
	if userID == "" {
		return false
	}
	for _, b := range l.bookings {
		if b.UserID == userID && b.Occupies() && SameDate(b.Date, date) &&
			b.Start == iv.Start && b.End == iv.End {
			return true
		}
	}
	return false
}

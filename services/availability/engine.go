package availability

import (
	"time"
)

// SlotRequest is one caller's proposed reservation window. UserID is optional;
// the duplicate check only runs when a user context is supplied.
type SlotRequest struct {
	Date     time.Time
	Interval Interval
	UserID   string
}

// CourtInputs bundles everything the engine needs to reason about one court.
// All three are snapshots: the engine performs no I/O and is safe for any
// number of concurrent readers.
type CourtInputs struct {
	Schedule Schedule
	Blocks   BlockedSlotSet
	Ledger   Ledger
}

// ValidateRequestedSlot checks a proposed interval against operating hours,
// blocks and existing bookings, short-circuiting on the first failure. Check
// order is fixed: past date, closed day, operating-hours containment, blocked
// slot, duplicate booking (same user, exact interval), slot conflict.
//
// now is passed explicitly so the decision is a pure function of its inputs.
func ValidateRequestedSlot(in CourtInputs, req SlotRequest, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	reqDay := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location())
	if reqDay.Before(today) {
		return newReason(CodePastDate, "Cannot book a slot on a past date")
	}

	if !in.Schedule.IsOpenOn(req.Date) {
		return newReason(CodeClosedDay, "Court is closed on %s", DayOf(req.Date))
	}

	open, err := in.Schedule.OperatingInterval(req.Date)
	if err != nil {
		return err
	}
	if !open.Contains(req.Interval) {
		return newReason(CodeOutsideHours, "Court operates from %s to %s",
			FormatClock(open.Start), FormatClock(open.End))
	}

	if block := in.Blocks.BlocksOn(req.Date, req.Interval); block != nil {
		return &ReasonError{
			Code:    CodeBlocked,
			Message: "Slot is unavailable: " + block.Reason,
			Block:   block,
		}
	}

	if req.UserID != "" && in.Ledger.DuplicateForUser(req.UserID, req.Date, req.Interval) {
		return newReason(CodeDuplicateBooking, "You already have a booking for this exact slot")
	}

	if hit := in.Ledger.FirstConflict(req.Date, req.Interval); hit != nil {
		return &ReasonError{
			Code: CodeSlotConflict,
			Message: "Slot conflicts with an existing booking from " +
				FormatClock(hit.Start) + " to " + FormatClock(hit.End),
			Conflict: hit,
		}
	}

	return nil
}

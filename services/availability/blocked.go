package availability

import (
	"time"

	"courtside/models"
)

// SameDate compares two timestamps by calendar date only. Stored dates can
// carry a time-of-day artifact from parsing, so full timestamp equality is
// never used for slot matching.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// BlockedSlotSet holds a court's owner-declared unavailability windows in
// insertion order.
type BlockedSlotSet struct {
	slots []models.BlockedSlot
}

// NewBlockedSlotSet wraps the court's current blocks, preserving order.
func NewBlockedSlotSet(slots []models.BlockedSlot) BlockedSlotSet {
	return BlockedSlotSet{slots: slots}
}

// BlocksOn returns the first block (by insertion order) on the given date
// that overlaps the interval, or nil. Callers needing every overlapping
// block use AllBlocksOn.
func (s BlockedSlotSet) BlocksOn(date time.Time, iv Interval) *models.BlockedSlot {
	for i := range s.slots {
		b := &s.slots[i]
		if SameDate(b.Date, date) && iv.Overlaps(Interval{Start: b.Start, End: b.End}) {
			return b
		}
	}
	return nil
}

// AllBlocksOn returns every block on the date overlapping the interval, in
// insertion order.
func (s BlockedSlotSet) AllBlocksOn(date time.Time, iv Interval) []models.BlockedSlot {
	var out []models.BlockedSlot
	for _, b := range s.slots {
		if SameDate(b.Date, date) && iv.Overlaps(Interval{Start: b.Start, End: b.End}) {
			out = append(out, b)
		}
	}
	return out
}

// Add appends a new block after checking the booking ledger: maintenance
// cannot be scheduled over a live reservation. The caller must hold the
// court's mutation lock, since this is a read-then-write sequence.
func (s *BlockedSlotSet) Add(slot models.BlockedSlot, ledger Ledger) error {
	iv, err := IntervalFromMinutes(slot.Start, slot.End)
	if err != nil {
		return err
	}
	if hit := ledger.FirstConflict(slot.Date, iv); hit != nil {
		return &ReasonError{
			Code: CodeConflict,
			Message: "cannot block slot: existing booking from " +
				FormatClock(hit.Start) + " to " + FormatClock(hit.End),
			Conflict: hit,
		}
	}
	s.slots = append(s.slots, slot)
	return nil
}

// Remove deletes a block by ID, reporting whether it was present.
func (s *BlockedSlotSet) Remove(slotID string) bool {
	for i, b := range s.slots {
		if b.ID == slotID {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return true
		}
	}
	return false
}

// Slots exposes the current blocks in insertion order.
func (s BlockedSlotSet) Slots() []models.BlockedSlot {
	return s.slots
}

package availability

import (
	"fmt"
	"sort"
	"time"

	"courtside/models"
)

// DefaultGranularity is the step size used by schedule views. Booking
// creation passes 60 instead; granularity is a parameter so both call sites
// share one implementation.
const DefaultGranularity = 30

// GenerateSlotGrid discretizes a court's operating hours on a date into
// fixed-size candidate slots with per-slot status. Closed days yield an empty
// grid with Closed set. The result is a pure function of the inputs: calling
// it twice with identical snapshots yields identical output.
func GenerateSlotGrid(in CourtInputs, date time.Time, granularity int) (models.SlotGrid, error) {
	if granularity <= 0 {
		granularity = DefaultGranularity
	}

	if !in.Schedule.IsOpenOn(date) {
		return models.SlotGrid{Closed: true}, nil
	}
	open, err := in.Schedule.OperatingInterval(date)
	if err != nil {
		return models.SlotGrid{}, err
	}

	var slots []models.GridSlot
	for start := open.Start; start+granularity <= open.End; start += granularity {
		step := Interval{Start: start, End: start + granularity}
		slot := models.GridSlot{Start: step.Start, End: step.End, Status: models.SlotAvailable}

		if block := in.Blocks.BlocksOn(date, step); block != nil {
			slot.Status = models.SlotBlocked
			slot.Detail = block.Reason
		} else if hit := in.Ledger.FirstConflict(date, step); hit != nil {
			slot.Status = models.SlotBooked
			slot.Detail = hit.UserName
		}
		slots = append(slots, slot)
	}

	return models.SlotGrid{Slots: slots}, nil
}

// CourtSnapshot pairs a court with the engine inputs for that court, as
// assembled by the caller from the persistence layer.
type CourtSnapshot struct {
	Court  models.Court
	Inputs CourtInputs
}

// CourtStatusForSportType classifies every active court of a sport type at a
// venue for the requested date and interval, in the same check order as
// ValidateRequestedSlot but reporting the reason instead of failing. Courts
// are ordered ascending by court number for deterministic pagination.
func CourtStatusForSportType(snapshots []CourtSnapshot, sportType string, date time.Time, iv Interval) models.CourtStatusReport {
	var picked []CourtSnapshot
	for _, snap := range snapshots {
		if snap.Court.Active && snap.Court.SportType == sportType {
			picked = append(picked, snap)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Court.CourtNumber < picked[j].Court.CourtNumber
	})

	counts := map[string]int{
		models.CourtAvailable:   0,
		models.CourtBooked:      0,
		models.CourtBlocked:     0,
		models.CourtUnavailable: 0,
	}
	courts := make([]models.CourtStatus, 0, len(picked))

	for _, snap := range picked {
		cs := classifyCourt(snap, date, iv)
		counts[cs.Status]++
		courts = append(courts, cs)
	}

	summary := fmt.Sprintf("%d available, %d booked, %d blocked, %d unavailable",
		counts[models.CourtAvailable], counts[models.CourtBooked],
		counts[models.CourtBlocked], counts[models.CourtUnavailable])

	return models.CourtStatusReport{Courts: courts, Counts: counts, Summary: summary}
}

func classifyCourt(snap CourtSnapshot, date time.Time, iv Interval) models.CourtStatus {
	cs := models.CourtStatus{Court: snap.Court}

	if !snap.Inputs.Schedule.IsOpenOn(date) {
		cs.Status = models.CourtUnavailable
		cs.Reason = "Closed on " + DayOf(date)
		return cs
	}
	open, err := snap.Inputs.Schedule.OperatingInterval(date)
	if err != nil {
		cs.Status = models.CourtUnavailable
		cs.Reason = err.Error()
		return cs
	}
	if !open.Contains(iv) {
		cs.Status = models.CourtUnavailable
		cs.Reason = fmt.Sprintf("Operates from %s to %s", FormatClock(open.Start), FormatClock(open.End))
		return cs
	}

	if block := snap.Inputs.Blocks.BlocksOn(date, iv); block != nil {
		cs.Status = models.CourtBlocked
		cs.Reason = block.Reason
		return cs
	}

	if hit := snap.Inputs.Ledger.FirstConflict(date, iv); hit != nil {
		cs.Status = models.CourtBooked
		cs.BookedBy = hit.UserName
		cs.ConflictingBooking = hit
		return cs
	}

	cs.Status = models.CourtAvailable
	return cs
}

package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/models"
)

func TestGenerateSlotGrid(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday

	ws := openAllWeek("09:00", "12:00")
	blocks := []models.BlockedSlot{
		{ID: "b1", Date: date, Start: 600, End: 630, Reason: "net repair"},
	}
	bookings := []models.Booking{
		{ID: "bk1", UserID: "u1", UserName: "Asha", Date: date, Start: 660, End: 720, Status: models.StatusConfirmed},
	}
	in := engineInputs(t, ws, blocks, bookings)

	t.Run("default granularity walks the open window", func(t *testing.T) {
		grid, err := GenerateSlotGrid(in, date, 0)
		require.NoError(t, err)
		assert.False(t, grid.Closed)
		require.Len(t, grid.Slots, 6) // 09:00-12:00 in 30-minute steps

		assert.Equal(t, models.SlotAvailable, grid.Slots[0].Status) // 09:00-09:30
		assert.Equal(t, models.SlotBlocked, grid.Slots[2].Status)   // 10:00-10:30
		assert.Equal(t, "net repair", grid.Slots[2].Detail)
		assert.Equal(t, models.SlotBooked, grid.Slots[4].Status) // 11:00-11:30
		assert.Equal(t, "Asha", grid.Slots[4].Detail)
		assert.Equal(t, models.SlotBooked, grid.Slots[5].Status) // 11:30-12:00
	})

	t.Run("hourly granularity shares the same implementation", func(t *testing.T) {
		grid, err := GenerateSlotGrid(in, date, 60)
		require.NoError(t, err)
		require.Len(t, grid.Slots, 3)
		assert.Equal(t, 540, grid.Slots[0].Start)
		assert.Equal(t, 600, grid.Slots[0].End)
		assert.Equal(t, models.SlotBlocked, grid.Slots[1].Status)
		assert.Equal(t, models.SlotBooked, grid.Slots[2].Status)
	})

	t.Run("closed day yields empty grid with closed flag", func(t *testing.T) {
		closedSunday := openAllWeek("09:00", "12:00")
		closedSunday["sunday"] = models.DayHours{IsAvailable: false}
		inClosed := engineInputs(t, closedSunday, nil, nil)

		sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		grid, err := GenerateSlotGrid(inClosed, sunday, 30)
		require.NoError(t, err)
		assert.True(t, grid.Closed)
		assert.Empty(t, grid.Slots)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		first, err := GenerateSlotGrid(in, date, 30)
		require.NoError(t, err)
		second, err := GenerateSlotGrid(in, date, 30)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestCourtStatusForSportType(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	iv := mustInterval(t, "10:00", "11:00")

	open := openAllWeek("06:00", "22:00")
	closedMonday := openAllWeek("06:00", "22:00")
	closedMonday["monday"] = models.DayHours{IsAvailable: false}

	court := func(id string, num int, sport string, active bool) models.Court {
		return models.Court{ID: id, CourtNumber: num, SportType: sport, Active: active}
	}

	snapshots := []CourtSnapshot{
		{Court: court("c3", 3, "badminton", true), Inputs: engineInputs(t, open, nil, []models.Booking{
			{ID: "bk1", UserID: "u9", UserName: "Ravi", Date: date, Start: 630, End: 690, Status: models.StatusPending},
		})},
		{Court: court("c1", 1, "badminton", true), Inputs: engineInputs(t, open, nil, nil)},
		{Court: court("c2", 2, "badminton", true), Inputs: engineInputs(t, closedMonday, nil, nil)},
		{Court: court("c4", 4, "badminton", true), Inputs: engineInputs(t, open, []models.BlockedSlot{
			{ID: "b1", Date: date, Start: 540, End: 720, Reason: "league practice"},
		}, nil)},
		{Court: court("c5", 5, "tennis", true), Inputs: engineInputs(t, open, nil, nil)},
		{Court: court("c6", 6, "badminton", false), Inputs: engineInputs(t, open, nil, nil)},
	}

	report := CourtStatusForSportType(snapshots, "badminton", date, iv)

	require.Len(t, report.Courts, 4, "tennis and inactive courts are excluded")
	assert.Equal(t, "c1", report.Courts[0].Court.ID, "ascending by court number")
	assert.Equal(t, models.CourtAvailable, report.Courts[0].Status)

	assert.Equal(t, "c2", report.Courts[1].Court.ID)
	assert.Equal(t, models.CourtUnavailable, report.Courts[1].Status)
	assert.Contains(t, report.Courts[1].Reason, "monday")

	assert.Equal(t, "c3", report.Courts[2].Court.ID)
	assert.Equal(t, models.CourtBooked, report.Courts[2].Status)
	assert.Equal(t, "Ravi", report.Courts[2].BookedBy)
	require.NotNil(t, report.Courts[2].ConflictingBooking)
	assert.Equal(t, "bk1", report.Courts[2].ConflictingBooking.ID)

	assert.Equal(t, "c4", report.Courts[3].Court.ID)
	assert.Equal(t, models.CourtBlocked, report.Courts[3].Status)
	assert.Equal(t, "league practice", report.Courts[3].Reason)

	assert.Equal(t, 1, report.Counts[models.CourtAvailable])
	assert.Equal(t, 1, report.Counts[models.CourtBooked])
	assert.Equal(t, 1, report.Counts[models.CourtBlocked])
	assert.Equal(t, 1, report.Counts[models.CourtUnavailable])
	assert.Equal(t, "1 available, 1 booked, 1 blocked, 1 unavailable", report.Summary)
}

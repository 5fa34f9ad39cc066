package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/models"
)

// Fixed clock for deterministic validation. 2026-03-02 is a Monday,
// 2026-03-01 a Sunday.
var (
	testNow    = time.Date(2026, 2, 20, 15, 0, 0, 0, time.UTC)
	testMonday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	testSunday = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
)

func engineInputs(t *testing.T, ws models.WeeklySchedule, blocks []models.BlockedSlot, bookings []models.Booking) CourtInputs {
	t.Helper()
	sched, err := NewSchedule(ws)
	require.NoError(t, err)
	return CourtInputs{
		Schedule: sched,
		Blocks:   NewBlockedSlotSet(blocks),
		Ledger:   NewLedger(bookings),
	}
}

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	iv, err := NewInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestValidateRequestedSlot(t *testing.T) {
	weekdaysOnly := openAllWeek("06:00", "22:00")
	weekdaysOnly["sunday"] = models.DayHours{IsAvailable: false}

	t.Run("ok on an open future day", func(t *testing.T) {
		in := engineInputs(t, weekdaysOnly, nil, nil)
		err := ValidateRequestedSlot(in, SlotRequest{
			Date:     testMonday,
			Interval: mustInterval(t, "09:00", "10:00"),
			UserID:   "u1",
		}, testNow)
		assert.NoError(t, err)
	})

	t.Run("past date rejected before anything else", func(t *testing.T) {
		in := engineInputs(t, weekdaysOnly, nil, nil)
		err := ValidateRequestedSlot(in, SlotRequest{
			Date:     testNow.AddDate(0, 0, -1),
			Interval: mustInterval(t, "09:00", "10:00"),
		}, testNow)
		assert.Equal(t, CodePastDate, CodeOf(err))
	})

	t.Run("today is not a past date", func(t *testing.T) {
		in := engineInputs(t, weekdaysOnly, nil, nil)
		err := ValidateRequestedSlot(in, SlotRequest{
			Date:     testNow,
			Interval: mustInterval(t, "09:00", "10:00"),
		}, testNow)
		assert.NoError(t, err)
	})

	t.Run("closed day rejected regardless of interval", func(t *testing.T) {
		in := engineInputs(t, weekdaysOnly, nil, nil)
		err := ValidateRequestedSlot(in, SlotRequest{
			Date:     testSunday,
			Interval: mustInterval(t, "09:00", "10:00"),
		}, testNow)
		assert.Equal(t, CodeClosedDay, CodeOf(err))
	})

	t.Run("outside operating hours names the open window", func(t *testing.T) {
		in := engineInputs(t, weekdaysOnly, nil, nil)
		err := ValidateRequestedSlot(in, SlotRequest{
			Date:     testMonday,
			Interval: mustInterval(t, "21:00", "23:00"),
		}, testNow)
		require.Equal(t, CodeOutsideHours, CodeOf(err))
		assert.Contains(t, err.Error(), "06:00")
		assert.Contains(t, err.Error(), "22:00")
	})

	t.Run("blocked slot names the reason", func(t *testing.T) {
		blocks := []models.BlockedSlot{
			{ID: "b1", Date: testMonday, Start: 540, End: 660, Reason: "floor resurfacing", Category: models.BlockMaintenance},
		}
		in := engineInputs(t, weekdaysOnly, blocks, nil)
		err := ValidateRequestedSlot(in, SlotRequest{
			Date:     testMonday,
			Interval: mustInterval(t, "10:00", "11:00"),
		}, testNow)
		require.Equal(t, CodeBlocked, CodeOf(err))
		assert.Contains(t, err.Error(), "floor resurfacing")
	})

	t.Run("duplicate beats conflict for the same user and exact slot", func(t *testing.T) {
		bookings := []models.Booking{
			{ID: "bk1", UserID: "u1", Date: testMonday, Start: 540, End: 600, Status: models.StatusConfirmed},
		}
		in := engineInputs(t, weekdaysOnly, nil, bookings)
		err := ValidateRequestedSlot(in, SlotRequest{
			Date:     testMonday,
			Interval: mustInterval(t, "09:00", "10:00"),
			UserID:   "u1",
		}, testNow)
		assert.Equal(t, CodeDuplicateBooking, CodeOf(err))
	})

	t.Run("overlapping but not identical interval is a conflict, not a duplicate", func(t *testing.T) {
		bookings := []models.Booking{
			{ID: "bk1", UserID: "u1", UserName: "Asha", Date: testMonday, Start: 540, End: 600, Status: models.StatusConfirmed},
		}
		in := engineInputs(t, weekdaysOnly, nil, bookings)

		err := ValidateRequestedSlot(in, SlotRequest{
			Date:     testMonday,
			Interval: mustInterval(t, "09:30", "10:30"),
			UserID:   "u2",
		}, testNow)
		require.Equal(t, CodeSlotConflict, CodeOf(err))
		assert.Contains(t, err.Error(), "09:00")
		assert.Contains(t, err.Error(), "10:00")

		var re *ReasonError
		require.ErrorAs(t, err, &re)
		require.NotNil(t, re.Conflict)
		assert.Equal(t, "bk1", re.Conflict.ID)
	})

	t.Run("duplicate check skipped without user context", func(t *testing.T) {
		bookings := []models.Booking{
			{ID: "bk1", UserID: "u1", Date: testMonday, Start: 540, End: 600, Status: models.StatusConfirmed},
		}
		in := engineInputs(t, weekdaysOnly, nil, bookings)
		err := ValidateRequestedSlot(in, SlotRequest{
			Date:     testMonday,
			Interval: mustInterval(t, "09:00", "10:00"),
		}, testNow)
		assert.Equal(t, CodeSlotConflict, CodeOf(err))
	})

	t.Run("payment_pending booking does not hold the slot", func(t *testing.T) {
		bookings := []models.Booking{
			{ID: "bk1", UserID: "u1", Date: testMonday, Start: 600, End: 660, Status: models.StatusPaymentPending},
		}
		in := engineInputs(t, weekdaysOnly, nil, bookings)
		err := ValidateRequestedSlot(in, SlotRequest{
			Date:     testMonday,
			Interval: mustInterval(t, "10:00", "11:00"),
			UserID:   "u2",
		}, testNow)
		assert.NoError(t, err, "a second user can reserve while the first payment is outstanding")
	})
}

func TestValidateThenConflictScenario(t *testing.T) {
	// Open Mon-Sun 06:00-22:00, no blocks, no bookings.
	in := engineInputs(t, openAllWeek("06:00", "22:00"), nil, nil)
	req := SlotRequest{Date: testMonday, Interval: mustInterval(t, "09:00", "10:00"), UserID: "u1"}
	require.NoError(t, ValidateRequestedSlot(in, req, testNow))

	// Commit that booking as confirmed, then request an overlapping slot.
	in.Ledger = NewLedger([]models.Booking{
		{ID: "bk1", UserID: "u1", UserName: "Asha", Date: testMonday, Start: 540, End: 600, Status: models.StatusConfirmed},
	})
	err := ValidateRequestedSlot(in, SlotRequest{
		Date:     testMonday,
		Interval: mustInterval(t, "09:30", "10:30"),
		UserID:   "u2",
	}, testNow)
	require.Equal(t, CodeSlotConflict, CodeOf(err))
	assert.Contains(t, err.Error(), "09:00")
	assert.Contains(t, err.Error(), "10:00")
}

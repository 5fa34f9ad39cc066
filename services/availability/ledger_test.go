package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/models"
)

func TestOccupyingBookings(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	ledger := NewLedger([]models.Booking{
		{ID: "late", UserID: "u3", Date: date, Start: 720, End: 780, Status: models.StatusPending},
		{ID: "early", UserID: "u1", Date: date, Start: 600, End: 660, Status: models.StatusConfirmed},
		{ID: "cancelled", UserID: "u2", Date: date, Start: 600, End: 780, Status: models.StatusCancelled},
		{ID: "unpaid", UserID: "u4", Date: date, Start: 600, End: 780, Status: models.StatusPaymentPending},
		{ID: "done", UserID: "u5", Date: date, Start: 600, End: 780, Status: models.StatusCompleted},
		{ID: "noshow", UserID: "u6", Date: date, Start: 600, End: 780, Status: models.StatusNoShow},
	})

	iv, _ := NewInterval("10:00", "13:00")
	got := ledger.OccupyingBookings(date, iv)
	require.Len(t, got, 2, "only pending and confirmed bookings occupy")
	assert.Equal(t, "early", got[0].ID, "ascending by start time")
	assert.Equal(t, "late", got[1].ID)

	assert.True(t, ledger.HasConflict(date, iv))
	first := ledger.FirstConflict(date, iv)
	require.NotNil(t, first)
	assert.Equal(t, "early", first.ID)
}

func TestPaymentPendingDoesNotOccupy(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	ledger := NewLedger([]models.Booking{
		{ID: "a", UserID: "u1", Date: date, Start: 600, End: 660, Status: models.StatusPaymentPending},
	})

	iv, _ := NewInterval("10:00", "11:00")
	assert.False(t, ledger.HasConflict(date, iv),
		"a not-yet-paid booking does not reserve the slot against other users")
}

func TestDuplicateForUser(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	ledger := NewLedger([]models.Booking{
		{ID: "a", UserID: "u1", Date: date, Start: 600, End: 660, Status: models.StatusPending},
	})

	exact, _ := NewInterval("10:00", "11:00")
	overlapping, _ := NewInterval("10:30", "11:30")
	adjacent, _ := NewInterval("11:00", "12:00")

	assert.True(t, ledger.DuplicateForUser("u1", date, exact))
	assert.False(t, ledger.DuplicateForUser("u1", date, overlapping),
		"only the exact same start and end counts as a duplicate")
	assert.False(t, ledger.DuplicateForUser("u1", date, adjacent))
	assert.False(t, ledger.DuplicateForUser("u2", date, exact))
	assert.False(t, ledger.DuplicateForUser("", date, exact))
}

package availability

import (
	"errors"
	"fmt"

	"courtside/models"
)

// ReasonCode identifies why a slot request was refused.
type ReasonCode string

const (
	CodeValidation       ReasonCode = "validation_error"
	CodePastDate         ReasonCode = "past_date"
	CodeClosedDay        ReasonCode = "closed_day"
	CodeOutsideHours     ReasonCode = "outside_operating_hours"
	CodeBlocked          ReasonCode = "blocked"
	CodeDuplicateBooking ReasonCode = "duplicate_booking"
	CodeSlotConflict     ReasonCode = "slot_conflict"
	CodeConflict         ReasonCode = "conflict"
)

// ReasonError is a typed, user-facing refusal. Message is rendered to the end
// user verbatim, so constructors must include the operating hours, block
// reason, or conflicting times the caller needs to display.
type ReasonError struct {
	Code     ReasonCode
	Message  string
	Block    *models.BlockedSlot // set when Code == CodeBlocked
	Conflict *models.Booking     // set when Code == CodeSlotConflict
}

func (e *ReasonError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newReason(code ReasonCode, format string, args ...any) *ReasonError {
	return &ReasonError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewValidationError reports malformed input (bad time string, zero-length
// interval, out-of-range duration).
func NewValidationError(format string, args ...any) error {
	return newReason(CodeValidation, format, args...)
}

// CodeOf extracts the reason code from err, or "" if err is not a ReasonError.
func CodeOf(err error) ReasonCode {
	var re *ReasonError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}

// IsReason reports whether err carries the given reason code.
func IsReason(err error, code ReasonCode) bool {
	return CodeOf(err) == code
}

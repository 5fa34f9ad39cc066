package payment

import (
	"context"

	"courtside/models"
)

// Processor creates a payment intent for a freshly reserved booking. The
// booking stays payment_pending until the gateway webhook confirms or fails
// the charge; the availability engine itself never touches payments.
type Processor interface {
	CreateIntent(ctx context.Context, booking *models.Booking) (string, error)
}

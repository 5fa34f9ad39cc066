package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"courtside/models"
)

// StripeProcessor implements Processor over Stripe payment intents.
type StripeProcessor struct {
	currency string
}

// NewStripeProcessor sets the global Stripe key and returns a processor
// charging in the given ISO currency code.
func NewStripeProcessor(apiKey, currency string) *StripeProcessor {
	stripe.Key = apiKey
	return &StripeProcessor{currency: currency}
}

func (p *StripeProcessor) CreateIntent(ctx context.Context, booking *models.Booking) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(booking.Pricing.TotalAmount * 100))),
		Currency: stripe.String(p.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("booking_id", booking.ID)
	params.AddMetadata("court_id", booking.CourtID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent for booking %s: %w", booking.ID, err)
	}
	return pi.ID, nil
}

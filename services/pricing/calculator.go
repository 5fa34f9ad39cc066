package pricing

import (
	"math"

	"courtside/models"
	"courtside/services/availability"
)

// TaxRate is applied to base price plus equipment rental.
const TaxRate = 0.18

// Booking duration bounds in hours, enforced at the booking layer. The
// calculator itself never clamps.
const (
	MinDurationHours = 0.5
	MaxDurationHours = 12
)

// ValidateDuration checks booking-layer duration bounds.
func ValidateDuration(durationHours float64) error {
	if durationHours < MinDurationHours || durationHours > MaxDurationHours {
		return availability.NewValidationError(
			"duration must be between %.1f and %.0f hours, got %.2f",
			MinDurationHours, float64(MaxDurationHours), durationHours)
	}
	return nil
}

// Price derives the full breakdown from a court's hourly rate, a duration and
// the requested equipment lines. An equipment line is honored only when the
// item exists in the court's catalogue and is marked available; unknown or
// unavailable items are silently dropped, never an error. The honored line
// names are returned alongside the breakdown.
func Price(hourlyRate, durationHours float64, selections []models.EquipmentSelection, catalogue []models.Equipment) (models.PricingBreakdown, []string) {
	base := round2(hourlyRate * durationHours)

	byName := make(map[string]models.Equipment, len(catalogue))
	for _, item := range catalogue {
		byName[item.Name] = item
	}

	var rental float64
	var honored []string
	for _, sel := range selections {
		item, ok := byName[sel.Name]
		if !ok || !item.Available {
			continue
		}
		qty := sel.Quantity
		if qty < 1 {
			qty = 1
		}
		rental += item.RentPrice * float64(qty)
		honored = append(honored, sel.Name)
	}
	rental = round2(rental)

	taxes := round2((base + rental) * TaxRate)
	breakdown := models.PricingBreakdown{
		BasePrice:       base,
		EquipmentRental: rental,
		Taxes:           taxes,
		Discount:        0,
	}
	breakdown.TotalAmount = round2(breakdown.BasePrice + breakdown.EquipmentRental + breakdown.Taxes - breakdown.Discount)
	return breakdown, honored
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

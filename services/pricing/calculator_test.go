package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/models"
	"courtside/services/availability"
)

func TestPrice(t *testing.T) {
	catalogue := []models.Equipment{
		{Name: "racket", Available: true, RentPrice: 50},
		{Name: "shoes", Available: false, RentPrice: 80},
	}

	t.Run("base round trip", func(t *testing.T) {
		got, honored := Price(500, 2, nil, nil)
		assert.Equal(t, 1000.0, got.BasePrice)
		assert.Equal(t, 0.0, got.EquipmentRental)
		assert.Equal(t, 180.0, got.Taxes)
		assert.Equal(t, 0.0, got.Discount)
		assert.Equal(t, 1180.0, got.TotalAmount)
		assert.Empty(t, honored)
	})

	t.Run("available equipment is charged", func(t *testing.T) {
		got, honored := Price(500, 1, []models.EquipmentSelection{
			{Name: "racket", Quantity: 2},
		}, catalogue)
		assert.Equal(t, 500.0, got.BasePrice)
		assert.Equal(t, 100.0, got.EquipmentRental)
		assert.Equal(t, 108.0, got.Taxes)
		assert.Equal(t, 708.0, got.TotalAmount)
		assert.Equal(t, []string{"racket"}, honored)
	})

	t.Run("unknown and unavailable equipment silently dropped", func(t *testing.T) {
		got, honored := Price(500, 1, []models.EquipmentSelection{
			{Name: "shoes", Quantity: 1},     // unavailable
			{Name: "shuttles", Quantity: 3},  // not in catalogue
		}, catalogue)
		assert.Equal(t, 0.0, got.EquipmentRental)
		assert.Empty(t, honored)
	})

	t.Run("zero quantity treated as one", func(t *testing.T) {
		got, honored := Price(500, 1, []models.EquipmentSelection{
			{Name: "racket"},
		}, catalogue)
		assert.Equal(t, 50.0, got.EquipmentRental)
		assert.Equal(t, []string{"racket"}, honored)
	})

	t.Run("half hour duration", func(t *testing.T) {
		got, _ := Price(400, 0.5, nil, nil)
		assert.Equal(t, 200.0, got.BasePrice)
		assert.Equal(t, 36.0, got.Taxes)
		assert.Equal(t, 236.0, got.TotalAmount)
	})
}

func TestValidateDuration(t *testing.T) {
	tests := []struct {
		name    string
		hours   float64
		wantErr bool
	}{
		{name: "minimum", hours: 0.5},
		{name: "maximum", hours: 12},
		{name: "typical", hours: 2},
		{name: "below minimum", hours: 0.25, wantErr: true},
		{name: "above maximum", hours: 12.5, wantErr: true},
		{name: "zero", hours: 0, wantErr: true},
		{name: "negative", hours: -1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDuration(tt.hours)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, availability.CodeValidation, availability.CodeOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agromarket-cm/agromarket/internal/tax"
)

// The canonical storefront case: TVA on a 50 000 FCFA subtotal is exactly
// 9 625 FCFA at 19.25%.
func Test_PercentageCalculator_VATOnFreeDeliveryThreshold(t *testing.T) {
	calc := tax.NewPercentageCalculator(tax.VATRate)

	result := calc.Calculate(50000)

	assert.Equal(t, int64(9625), result.TaxCents)
	assert.Equal(t, tax.VATRate, result.Rate)
}

func Test_PercentageCalculator_RoundsHalfUpOnce(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		subtotal int64
		expected int64
	}{
		{
			name:     "exact product needs no rounding",
			rate:     0.1925,
			subtotal: 40000,
			expected: 7700,
		},
		{
			name:     "fraction below half rounds down",
			rate:     0.1925,
			subtotal: 101, // 19.4425
			expected: 19,
		},
		{
			name:     "fraction at half rounds up",
			rate:     0.5,
			subtotal: 101, // 50.5
			expected: 51,
		},
		{
			name:     "fraction above half rounds up",
			rate:     0.1925,
			subtotal: 102, // 19.635
			expected: 20,
		},
		{
			name:     "zero subtotal yields zero tax",
			rate:     0.1925,
			subtotal: 0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := tax.NewPercentageCalculator(tt.rate)
			result := calc.Calculate(tt.subtotal)
			assert.Equal(t, tt.expected, result.TaxCents)
		})
	}
}

func Test_PercentageCalculator_NoFloatDrift(t *testing.T) {
	// 0.1925 is not representable in binary floating point; a float64
	// multiply of large subtotals can land a franc off. The decimal path
	// must stay exact.
	calc := tax.NewPercentageCalculator(tax.VATRate)

	result := calc.Calculate(10_000_000)

	assert.Equal(t, int64(1_925_000), result.TaxCents)
}

func Test_NoTaxCalculator(t *testing.T) {
	calc := tax.NewNoTaxCalculator()

	result := calc.Calculate(123456)

	assert.Zero(t, result.TaxCents)
	assert.Zero(t, result.Rate)
}

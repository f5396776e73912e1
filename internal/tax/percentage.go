package tax

import "github.com/shopspring/decimal"

// VATRate is the fixed Cameroonian TVA rate applied to every order.
// The storefront has exactly one tax policy; per-region variation is out of
// scope, so the rate is a named constant rather than configuration.
const VATRate = 0.1925

// PercentageCalculator calculates tax using a simple percentage rate.
type PercentageCalculator struct {
	rate decimal.Decimal
}

// NewPercentageCalculator creates a percentage-based tax calculator.
// Rate is a fraction, e.g. 0.1925 for 19.25%.
func NewPercentageCalculator(rate float64) *PercentageCalculator {
	return &PercentageCalculator{rate: decimal.NewFromFloat(rate)}
}

// Calculate computes subtotal * rate, rounded half-up to the nearest whole
// currency unit. Rounding happens exactly once, here: callers sum the
// rounded tax line into the grand total so the displayed breakdown always
// adds up exactly.
func (c *PercentageCalculator) Calculate(subtotalCents int64) Result {
	tax := decimal.NewFromInt(subtotalCents).Mul(c.rate).Round(0)
	rate, _ := c.rate.Float64()
	return Result{
		TaxCents: tax.IntPart(),
		Rate:     rate,
	}
}

// NoTaxCalculator returns zero tax for all calculations.
// Used for tax-exempt flows and as a neutral element in tests.
type NoTaxCalculator struct{}

// NewNoTaxCalculator creates a new no-tax calculator.
func NewNoTaxCalculator() *NoTaxCalculator {
	return &NoTaxCalculator{}
}

// Calculate always returns zero tax.
func (c *NoTaxCalculator) Calculate(subtotalCents int64) Result {
	return Result{}
}

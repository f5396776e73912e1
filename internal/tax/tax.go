package tax

// Calculator defines the interface for tax calculation.
// Implementations: PercentageCalculator, NoTaxCalculator.
type Calculator interface {
	// Calculate computes tax on a subtotal expressed in the smallest
	// currency unit. Returns the tax amount in the same unit.
	Calculate(subtotalCents int64) Result
}

// Result contains the calculated tax amount and the rate that produced it.
type Result struct {
	TaxCents int64
	Rate     float64
}

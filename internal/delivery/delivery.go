// Package delivery prices order delivery. The storefront ships everywhere in
// the country at a single flat rate, waived above a spend threshold.
package delivery

// Pricing thresholds in FCFA. Hard-coded for this catalog and currency;
// they do not generalize without an explicit configuration surface.
const (
	// FreeDeliveryThresholdCents is the subtotal at or above which
	// delivery is free.
	FreeDeliveryThresholdCents int64 = 50000

	// FlatRateCents is the delivery fee charged below the threshold.
	FlatRateCents int64 = 2500
)

// Provider quotes a delivery fee for an order subtotal.
type Provider interface {
	Quote(subtotalCents int64) Quote
}

// Quote is a priced delivery option.
type Quote struct {
	FeeCents int64
	Free     bool

	// RemainingForFreeCents is how much more the customer would need to
	// spend to reach free delivery. Zero once the threshold is met.
	RemainingForFreeCents int64
}

// ThresholdProvider returns a flat delivery rate waived at a subtotal
// threshold. An empty cart still quotes the flat rate; the checkout layer
// rejects empty carts before a quote is ever shown.
type ThresholdProvider struct {
	thresholdCents int64
	flatRateCents  int64
}

// NewThresholdProvider creates a threshold-based flat-rate provider.
func NewThresholdProvider(thresholdCents, flatRateCents int64) *ThresholdProvider {
	return &ThresholdProvider{
		thresholdCents: thresholdCents,
		flatRateCents:  flatRateCents,
	}
}

// NewDefaultProvider returns the storefront's standard pricing.
func NewDefaultProvider() *ThresholdProvider {
	return NewThresholdProvider(FreeDeliveryThresholdCents, FlatRateCents)
}

// Quote prices delivery for the given subtotal.
func (p *ThresholdProvider) Quote(subtotalCents int64) Quote {
	if subtotalCents >= p.thresholdCents {
		return Quote{Free: true}
	}
	return Quote{
		FeeCents:              p.flatRateCents,
		RemainingForFreeCents: p.thresholdCents - subtotalCents,
	}
}

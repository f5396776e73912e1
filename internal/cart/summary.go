package cart

import (
	"github.com/agromarket-cm/agromarket/internal/delivery"
	"github.com/agromarket-cm/agromarket/internal/tax"
)

// Totals is the priced view of a cart.
type Totals struct {
	SubtotalCents   int64
	DeliveryCents   int64
	TaxCents        int64
	TaxRate         float64
	GrandTotalCents int64
	ItemCount       int64 // Σ quantity, drives the header badge
	FreeDelivery    bool
	// RemainingForFreeCents is the extra spend needed to unlock free
	// delivery; zero once reached.
	RemainingForFreeCents int64
}

// Item is a cart line with its computed line total, as handed to view
// consumers.
type Item struct {
	ProductID      string
	ProductName    string
	Category       string
	ImageURL       string
	UnitPriceCents int64
	Quantity       int64
	LineTotalCents int64
	MaxQuantity    int64 // product stock, caps the quantity stepper
}

// Summary aggregates the cart's lines with calculated totals.
type Summary struct {
	Items  []Item
	Totals Totals
}

// Pricer turns a cart into totals using the configured tax and delivery
// policies.
type Pricer struct {
	tax      tax.Calculator
	delivery delivery.Provider
}

// NewPricer creates a pricer from a tax calculator and delivery provider.
func NewPricer(taxCalc tax.Calculator, deliveryProvider delivery.Provider) *Pricer {
	return &Pricer{tax: taxCalc, delivery: deliveryProvider}
}

// Totals computes subtotal, delivery fee, tax, and grand total for the
// cart. Tax is rounded to the whole franc inside the calculator; the grand
// total sums the already-rounded parts so the identity
// grand == subtotal + delivery + tax holds exactly.
func (p *Pricer) Totals(c *Cart) Totals {
	var subtotal, count int64
	for _, line := range c.Items() {
		subtotal += line.Product.PriceCents * line.Quantity
		count += line.Quantity
	}

	quote := p.delivery.Quote(subtotal)
	taxed := p.tax.Calculate(subtotal)

	return Totals{
		SubtotalCents:         subtotal,
		DeliveryCents:         quote.FeeCents,
		TaxCents:              taxed.TaxCents,
		TaxRate:               taxed.Rate,
		GrandTotalCents:       subtotal + quote.FeeCents + taxed.TaxCents,
		ItemCount:             count,
		FreeDelivery:          quote.Free,
		RemainingForFreeCents: quote.RemainingForFreeCents,
	}
}

// Summarize builds the full priced view of the cart, lines in insertion
// order.
func (p *Pricer) Summarize(c *Cart) Summary {
	lines := c.Items()
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, Item{
			ProductID:      line.Product.ID,
			ProductName:    line.Product.Name,
			Category:       line.Product.Category,
			ImageURL:       line.Product.ImageURL,
			UnitPriceCents: line.Product.PriceCents,
			Quantity:       line.Quantity,
			LineTotalCents: line.Product.PriceCents * line.Quantity,
			MaxQuantity:    line.Product.Stock,
		})
	}
	return Summary{Items: items, Totals: p.Totals(c)}
}

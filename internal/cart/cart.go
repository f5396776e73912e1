// Package cart implements the shopping cart: an identifier-keyed set of
// product lines with stock-clamped quantities, plus totals aggregation.
package cart

import (
	"sync"

	"github.com/agromarket-cm/agromarket/internal/domain"
)

// Line pairs a borrowed catalog product with a quantity. The cart never
// copies or mutates catalog data; the product pointer stays read-only.
type Line struct {
	Product  *domain.Product
	Quantity int64
}

// Cart holds the lines of one session. A product is either absent or
// present with quantity in [1, stock]; no other state is ever observable.
// All mutations serialize through an internal mutex so concurrent callers
// on the same session cannot race past the stock ceiling.
type Cart struct {
	mu    sync.Mutex
	lines map[string]*Line
	order []string // insertion order, display only
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{lines: make(map[string]*Line)}
}

// AddResult reports the outcome of an add: the line's resulting quantity
// and whether the request was clamped against stock. Clamping is a
// deliberate UX decision, never an error.
type AddResult struct {
	Quantity int64
	Clamped  bool
}

// AddItem adds quantity units of product to the cart, creating the line on
// first add. The resulting quantity never exceeds product.Stock; requests
// beyond stock clamp silently. Non-positive quantities are ignored.
func (c *Cart) AddItem(product *domain.Product, quantity int64) AddResult {
	if product == nil || quantity <= 0 {
		return AddResult{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.lines[product.ID]
	if !ok {
		if product.Stock <= 0 {
			// Nothing to sell; a zero-quantity line must never exist.
			return AddResult{Clamped: true}
		}
		qty := min(quantity, product.Stock)
		c.lines[product.ID] = &Line{Product: product, Quantity: qty}
		c.order = append(c.order, product.ID)
		return AddResult{Quantity: qty, Clamped: qty < quantity}
	}

	want := line.Quantity + quantity
	line.Quantity = min(want, product.Stock)
	return AddResult{Quantity: line.Quantity, Clamped: line.Quantity < want}
}

// UpdateQuantity sets the line's quantity, clamped to the product's stock.
// A quantity of zero or below removes the line entirely. Unknown product
// identifiers are a no-op, not an error.
func (c *Cart) UpdateQuantity(productID string, quantity int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.lines[productID]
	if !ok {
		return
	}
	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}
	line.Quantity = min(quantity, line.Product.Stock)
}

// RemoveItem deletes the line if present; no-op otherwise.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) {
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[string]*Line)
	c.order = nil
}

// Items returns the lines in insertion order. The returned slice holds
// copies of the line values, so callers cannot mutate cart state through it.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.lines[id])
	}
	return items
}

// Quantity returns the current quantity for a product, zero when absent.
func (c *Cart) Quantity(productID string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[productID]; ok {
		return line.Quantity
	}
	return 0
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

package domain

// =============================================================================
// CATALOG DOMAIN TYPES
// =============================================================================

// Product represents a single sellable catalog entry. Products are loaded
// once at startup and never mutated; every consumer shares them by reference.
type Product struct {
	ID            string
	Name          string
	Description   string
	PriceCents    int64 // smallest FCFA unit; the currency has no sub-units
	OriginalPrice int64 // 0 when the product has never been discounted
	ImageURL      string
	ImageURLs     []string
	Category      string // category slug, matches exactly one Category.Slug
	Subcategory   string
	Stock         int64
	Rating        float64 // aggregate rating in [0, 5]
	ReviewCount   int
	Specs         map[string]string
	Features      []string
	IsNew         bool
	IsFeatured    bool
	IsOnSale      bool
}

// InStock reports whether the product can currently be added to a cart.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// DiscountedFrom returns the original price when the product is on sale.
func (p *Product) DiscountedFrom() (int64, bool) {
	if p.IsOnSale && p.OriginalPrice > p.PriceCents {
		return p.OriginalPrice, true
	}
	return 0, false
}

// Validate checks the invariants the catalog feed promises. Violations are
// programmer/data errors, not user-facing conditions.
func (p *Product) Validate() error {
	const op = "product.validate"
	if p.ID == "" {
		return Invalid(op, "product ID is required")
	}
	if p.Name == "" {
		return Invalid(op, "product name is required")
	}
	if p.PriceCents <= 0 {
		return Invalid(op, "price must be positive")
	}
	if p.Stock < 0 {
		return Invalid(op, "stock cannot be negative")
	}
	if p.Rating < 0 || p.Rating > 5 {
		return Invalid(op, "rating must be within [0, 5]")
	}
	if p.IsOnSale && p.OriginalPrice <= p.PriceCents {
		return Invalid(op, "on-sale product requires an original price above the current price")
	}
	return nil
}

// Category groups products for browsing. Slug is the URL-safe identifier
// product records reference.
type Category struct {
	ID            string
	Name          string
	Slug          string
	Description   string
	ImageURL      string
	Subcategories []string
}

// HasSubcategory reports whether label belongs to this category.
func (c *Category) HasSubcategory(label string) bool {
	for _, s := range c.Subcategories {
		if s == label {
			return true
		}
	}
	return false
}

// ProductListItem is the listing projection handed to view consumers.
type ProductListItem struct {
	ID            string
	Name          string
	PriceCents    int64
	OriginalPrice int64
	ImageURL      string
	Category      string
	Subcategory   string
	Rating        float64
	ReviewCount   int
	Stock         int64
	LowStock      bool
	IsNew         bool
	IsFeatured    bool
	IsOnSale      bool
}

// Product-specific errors.
var (
	ErrProductNotFound  = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrCategoryNotFound = &Error{Code: ENOTFOUND, Message: "Category not found"}
)

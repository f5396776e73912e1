package catalog

import (
	"log/slog"

	"github.com/agromarket-cm/agromarket/internal/domain"
)

// LowStockThreshold is the stock level at or below which a product is
// surfaced with a low-stock badge. Hard-coded for this catalog size; not a
// configuration surface.
const LowStockThreshold = 10

// Store holds the immutable catalog loaded at startup. It is freely shared
// by reference: nothing mutates products or categories after New returns,
// so no locking is needed.
type Store struct {
	products   []*domain.Product
	categories []*domain.Category
	byID       map[string]*domain.Product
	bySlug     map[string]*domain.Category
}

// New builds a Store from an already-loaded product feed. Structural
// violations (bad price, rating out of range) are rejected; cross-reference
// violations between products and categories are data-quality warnings, not
// errors, since the source feed does not strictly enforce them.
func New(products []*domain.Product, categories []*domain.Category, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		products:   products,
		categories: categories,
		byID:       make(map[string]*domain.Product, len(products)),
		bySlug:     make(map[string]*domain.Category, len(categories)),
	}

	for _, c := range categories {
		if _, dup := s.bySlug[c.Slug]; dup {
			return nil, domain.Conflict("catalog.load", "duplicate category slug: "+c.Slug)
		}
		s.bySlug[c.Slug] = c
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, domain.Conflict("catalog.load", "duplicate product ID: "+p.ID)
		}
		s.byID[p.ID] = p

		cat, ok := s.bySlug[p.Category]
		if !ok {
			logger.Warn("product references unknown category",
				"product_id", p.ID, "category", p.Category)
			continue
		}
		if p.Subcategory != "" && !cat.HasSubcategory(p.Subcategory) {
			logger.Warn("product references unknown subcategory",
				"product_id", p.ID, "category", p.Category, "subcategory", p.Subcategory)
		}
	}

	return s, nil
}

// Products returns the full catalog in feed order. Callers must treat the
// slice and its entries as read-only.
func (s *Store) Products() []*domain.Product {
	return s.products
}

// Categories returns every category in feed order.
func (s *Store) Categories() []*domain.Category {
	return s.categories
}

// Product looks up a catalog entry by identifier.
func (s *Store) Product(id string) (*domain.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// Category looks up a category by slug.
func (s *Store) Category(slug string) (*domain.Category, error) {
	c, ok := s.bySlug[slug]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return c, nil
}

// Normalize clamps the criteria and reconciles the subcategory with the
// selected category: a subcategory filter is only meaningful inside its
// owning category, so it is cleared whenever no category is selected, the
// category is unknown, or the label does not belong to it.
func (s *Store) Normalize(c Criteria) Criteria {
	c = c.Clamp()
	if c.Subcategory == "" {
		return c
	}
	cat, ok := s.bySlug[c.Category]
	if !ok || !cat.HasSubcategory(c.Subcategory) {
		c.Subcategory = ""
	}
	return c
}

// Search runs the query engine over the full catalog with normalized
// criteria and projects the result into listing items.
func (s *Store) Search(c Criteria, key SortKey) ([]domain.ProductListItem, Criteria) {
	c = s.Normalize(c)
	entries := Query(s.products, c, key)

	items := make([]domain.ProductListItem, 0, len(entries))
	for _, p := range entries {
		items = append(items, ListItem(p))
	}
	return items, c
}

// ListItem projects a product into its listing view.
func ListItem(p *domain.Product) domain.ProductListItem {
	return domain.ProductListItem{
		ID:            p.ID,
		Name:          p.Name,
		PriceCents:    p.PriceCents,
		OriginalPrice: p.OriginalPrice,
		ImageURL:      p.ImageURL,
		Category:      p.Category,
		Subcategory:   p.Subcategory,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Stock:         p.Stock,
		LowStock:      p.Stock > 0 && p.Stock <= LowStockThreshold,
		IsNew:         p.IsNew,
		IsFeatured:    p.IsFeatured,
		IsOnSale:      p.IsOnSale,
	}
}

// Facets describes the filter metadata the storefront sidebar renders:
// overall price bounds and stock availability counts.
type Facets struct {
	MinPriceCents int64
	MaxPriceCents int64
	InStock       int
	OutOfStock    int
}

// Facets computes filter metadata over the full catalog.
func (s *Store) Facets() Facets {
	var f Facets
	for i, p := range s.products {
		if i == 0 || p.PriceCents < f.MinPriceCents {
			f.MinPriceCents = p.PriceCents
		}
		if p.PriceCents > f.MaxPriceCents {
			f.MaxPriceCents = p.PriceCents
		}
		if p.InStock() {
			f.InStock++
		} else {
			f.OutOfStock++
		}
	}
	return f
}

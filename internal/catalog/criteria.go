package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// SortKey selects the ordering rule applied after filtering.
type SortKey string

const (
	SortFeatured  SortKey = "featured"   // featured products first (default)
	SortPriceAsc  SortKey = "price-low"  // price ascending
	SortPriceDesc SortKey = "price-high" // price descending
	SortName      SortKey = "name"       // name A-Z, French collation
	SortRating    SortKey = "rating"     // rating descending
	SortNewest    SortKey = "newest"     // new arrivals first
)

// ParseSortKey maps a query-string value to a SortKey. Empty or unknown
// values fall back to SortFeatured, matching the forgiving clamp policy
// applied to the rest of the criteria.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortName, SortRating, SortNewest:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// Criteria is the combined set of filter predicates plus search text for a
// single query. The zero value means "no filter" on every dimension.
type Criteria struct {
	Category    string // category slug, exact match
	Subcategory string // label within the selected category
	MinPrice    int64  // inclusive lower bound
	MaxPrice    int64  // inclusive upper bound; 0 means unbounded
	MinRating   float64
	InStockOnly bool
	Search      string
}

// Clamp brings every dimension back to its nearest valid bound. Invalid
// ranges never error; the storefront favors forgiving inputs over strict
// validation. Category/subcategory reconciliation needs category data and
// lives on Store.Normalize.
func (c Criteria) Clamp() Criteria {
	c.Search = strings.TrimSpace(c.Search)
	if c.MinPrice < 0 {
		c.MinPrice = 0
	}
	if c.MaxPrice < 0 {
		c.MaxPrice = 0
	}
	if c.MaxPrice > 0 && c.MinPrice > c.MaxPrice {
		c.MinPrice = c.MaxPrice
	}
	if c.MinRating < 0 {
		c.MinRating = 0
	}
	if c.MinRating > 5 {
		c.MinRating = 5
	}
	return c
}

// Query-string keys for the shareable filter state.
const (
	paramCategory    = "category"
	paramSubcategory = "subcategory"
	paramMinPrice    = "minPrice"
	paramMaxPrice    = "maxPrice"
	paramMinRating   = "minRating"
	paramInStock     = "inStock"
	paramSearch      = "search"
	paramSort        = "sort"
)

// Encode renders the criteria and sort key as a flat query-string mapping
// suitable for a bookmarkable link. Defaults are omitted so that an
// all-default query encodes to an empty mapping.
func Encode(c Criteria, sort SortKey) url.Values {
	v := url.Values{}
	if c.Category != "" {
		v.Set(paramCategory, c.Category)
	}
	if c.Subcategory != "" {
		v.Set(paramSubcategory, c.Subcategory)
	}
	if c.MinPrice > 0 {
		v.Set(paramMinPrice, strconv.FormatInt(c.MinPrice, 10))
	}
	if c.MaxPrice > 0 {
		v.Set(paramMaxPrice, strconv.FormatInt(c.MaxPrice, 10))
	}
	if c.MinRating > 0 {
		v.Set(paramMinRating, strconv.FormatFloat(c.MinRating, 'f', -1, 64))
	}
	if c.InStockOnly {
		v.Set(paramInStock, "true")
	}
	if c.Search != "" {
		v.Set(paramSearch, c.Search)
	}
	if sort != "" && sort != SortFeatured {
		v.Set(paramSort, string(sort))
	}
	return v
}

// Decode parses the shareable mapping back into criteria and a sort key.
// Absent keys mean "default/no filter"; unparseable numbers are treated as
// absent. Decode(Encode(c, s)) reproduces c and s for all clamped criteria.
func Decode(v url.Values) (Criteria, SortKey) {
	c := Criteria{
		Category:    v.Get(paramCategory),
		Subcategory: v.Get(paramSubcategory),
		Search:      v.Get(paramSearch),
	}
	if n, err := strconv.ParseInt(v.Get(paramMinPrice), 10, 64); err == nil {
		c.MinPrice = n
	}
	if n, err := strconv.ParseInt(v.Get(paramMaxPrice), 10, 64); err == nil {
		c.MaxPrice = n
	}
	if f, err := strconv.ParseFloat(v.Get(paramMinRating), 64); err == nil {
		c.MinRating = f
	}
	if b, err := strconv.ParseBool(v.Get(paramInStock)); err == nil {
		c.InStockOnly = b
	}
	return c.Clamp(), ParseSortKey(v.Get(paramSort))
}

package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/agromarket-cm/agromarket/internal/domain"
)

// Query produces an ordered, filtered view of entries. It is a pure function
// of its inputs: entries are never mutated, the result is a fresh slice of
// the same borrowed product references, and repeated calls with the same
// inputs return the same view. Cheap enough to run on every keystroke at
// catalog sizes this storefront carries.
func Query(entries []*domain.Product, c Criteria, key SortKey) []*domain.Product {
	c = c.Clamp()

	matched := make([]*domain.Product, 0, len(entries))
	for _, p := range entries {
		if matches(p, c) {
			matched = append(matched, p)
		}
	}

	sortEntries(matched, key)
	return matched
}

// matches evaluates every filter predicate; all must pass. Predicates are
// independent and side-effect free, so evaluation order is unobservable.
func matches(p *domain.Product, c Criteria) bool {
	if c.Search != "" && !matchesSearch(p, c.Search) {
		return false
	}
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if c.Subcategory != "" && p.Subcategory != c.Subcategory {
		return false
	}
	if p.PriceCents < c.MinPrice {
		return false
	}
	if c.MaxPrice > 0 && p.PriceCents > c.MaxPrice {
		return false
	}
	if c.MinRating > 0 && p.Rating < c.MinRating {
		return false
	}
	if c.InStockOnly && !p.InStock() {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match over the product's
// searchable text: name, description, category, subcategory, feature tags.
// Not tokenized, not fuzzy.
func matchesSearch(p *domain.Product, search string) bool {
	needle := strings.ToLower(search)

	if strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle) ||
		strings.Contains(strings.ToLower(p.Subcategory), needle) {
		return true
	}
	for _, f := range p.Features {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// sortEntries orders entries in place. Every key uses a stable sort so ties
// preserve original catalog order.
func sortEntries(entries []*domain.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].PriceCents < entries[j].PriceCents
		})
	case SortPriceDesc:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].PriceCents > entries[j].PriceCents
		})
	case SortName:
		// French collation so accented names sort where a native speaker
		// expects them, not by raw code point.
		col := collate.New(language.French)
		sort.SliceStable(entries, func(i, j int) bool {
			return col.CompareString(entries[i].Name, entries[j].Name) < 0
		})
	case SortRating:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Rating > entries[j].Rating
		})
	case SortNewest:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].IsNew && !entries[j].IsNew
		})
	default: // SortFeatured
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].IsFeatured && !entries[j].IsFeatured
		})
	}
}

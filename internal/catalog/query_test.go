package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromarket-cm/agromarket/internal/catalog"
	"github.com/agromarket-cm/agromarket/internal/domain"
)

func seed() []*domain.Product {
	return catalog.SeedProducts()
}

func ids(entries []*domain.Product) []string {
	out := make([]string, 0, len(entries))
	for _, p := range entries {
		out = append(out, p.ID)
	}
	return out
}

func TestQuery_NoCriteriaReturnsAll(t *testing.T) {
	entries := seed()
	result := catalog.Query(entries, catalog.Criteria{}, catalog.SortFeatured)

	assert.Len(t, result, len(entries))
	// Featured products surface first, ties keep catalog order.
	assert.Equal(t, []string{"1", "2", "4", "5", "8", "3", "6", "7"}, ids(result))
}

func TestQuery_SearchIsCaseAndAccentFaithful(t *testing.T) {
	result := catalog.Query(seed(), catalog.Criteria{Search: "maïs"}, catalog.SortFeatured)

	require.Len(t, result, 1)
	assert.Equal(t, "Graines de Maïs Hybride", result[0].Name)
}

func TestQuery_SearchCoversFeatureTags(t *testing.T) {
	// "télescopique" appears only in the sprayer's specs/description text
	// and feature list, not in any product name.
	result := catalog.Query(seed(), catalog.Criteria{Search: "lance réglable"}, catalog.SortFeatured)

	require.Len(t, result, 1)
	assert.Equal(t, "7", result[0].ID)
}

func TestQuery_WhitespaceSearchMeansNoFilter(t *testing.T) {
	result := catalog.Query(seed(), catalog.Criteria{Search: "   "}, catalog.SortFeatured)
	assert.Len(t, result, len(seed()))
}

func TestQuery_CategoryFilter(t *testing.T) {
	result := catalog.Query(seed(), catalog.Criteria{Category: "engrais"}, catalog.SortFeatured)

	require.Len(t, result, 3)
	// NPK and the compost carry the featured flag; stability keeps their
	// relative catalog order, the neem insecticide follows.
	assert.Equal(t, []string{"2", "8", "6"}, ids(result))
	assert.Equal(t, "Engrais NPK 20-10-10", result[0].Name)
}

func TestQuery_SubcategoryFilter(t *testing.T) {
	result := catalog.Query(seed(), catalog.Criteria{
		Category:    "graines",
		Subcategory: "céréales",
	}, catalog.SortFeatured)

	require.Len(t, result, 1)
	assert.Equal(t, "4", result[0].ID)
}

func TestQuery_PriceRangeInclusive(t *testing.T) {
	// 2500 and 4500 sit exactly on and inside the bounds.
	result := catalog.Query(seed(), catalog.Criteria{MinPrice: 2500, MaxPrice: 4500}, catalog.SortPriceAsc)

	assert.Equal(t, []string{"1", "8"}, ids(result))
}

func TestQuery_MinRating(t *testing.T) {
	result := catalog.Query(seed(), catalog.Criteria{MinRating: 4.7}, catalog.SortRating)

	assert.Equal(t, []string{"5", "2", "4"}, ids(result))
}

func TestQuery_InStockOnly(t *testing.T) {
	soldOut := &domain.Product{
		ID: "99", Name: "Brouette", PriceCents: 30000, Category: "outils", Rating: 4.0,
	}
	entries := append(seed(), soldOut)

	result := catalog.Query(entries, catalog.Criteria{InStockOnly: true}, catalog.SortFeatured)
	assert.NotContains(t, ids(result), "99")

	result = catalog.Query(entries, catalog.Criteria{}, catalog.SortFeatured)
	assert.Contains(t, ids(result), "99")
}

func TestQuery_SortPrice(t *testing.T) {
	asc := catalog.Query(seed(), catalog.Criteria{}, catalog.SortPriceAsc)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].PriceCents, asc[i].PriceCents)
	}

	desc := catalog.Query(seed(), catalog.Criteria{}, catalog.SortPriceDesc)
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].PriceCents, desc[i].PriceCents)
	}
}

func TestQuery_SortNameUsesFrenchCollation(t *testing.T) {
	entries := []*domain.Product{
		{ID: "a", Name: "Zèbre", PriceCents: 100, Stock: 1},
		{ID: "b", Name: "Épinard", PriceCents: 100, Stock: 1},
		{ID: "c", Name: "Ail", PriceCents: 100, Stock: 1},
	}

	result := catalog.Query(entries, catalog.Criteria{}, catalog.SortName)

	// A raw byte comparison would push "Épinard" past "Zèbre".
	assert.Equal(t, []string{"c", "b", "a"}, ids(result))
}

func TestQuery_SortNewestFirst(t *testing.T) {
	result := catalog.Query(seed(), catalog.Criteria{}, catalog.SortNewest)

	// New arrivals in catalog order, then the rest in catalog order.
	assert.Equal(t, []string{"1", "3", "5", "2", "4", "6", "7", "8"}, ids(result))
}

func TestQuery_SortStabilityOnTies(t *testing.T) {
	entries := []*domain.Product{
		{ID: "x", Name: "Un", PriceCents: 500, Rating: 4.0, Stock: 1},
		{ID: "y", Name: "Deux", PriceCents: 500, Rating: 4.0, Stock: 1},
		{ID: "z", Name: "Trois", PriceCents: 500, Rating: 4.0, Stock: 1},
	}

	for _, key := range []catalog.SortKey{
		catalog.SortFeatured, catalog.SortPriceAsc, catalog.SortPriceDesc,
		catalog.SortRating, catalog.SortNewest,
	} {
		result := catalog.Query(entries, catalog.Criteria{}, key)
		assert.Equal(t, []string{"x", "y", "z"}, ids(result), "sort %s must be stable", key)
	}
}

func TestQuery_Idempotent(t *testing.T) {
	c := catalog.Criteria{Category: "graines", MinPrice: 1000, MaxPrice: 20000}

	once := catalog.Query(seed(), c, catalog.SortPriceAsc)
	twice := catalog.Query(once, c, catalog.SortPriceAsc)

	assert.Equal(t, ids(once), ids(twice))
}

func TestQuery_PriceRangeWideningIsMonotonic(t *testing.T) {
	narrow := catalog.Query(seed(), catalog.Criteria{MinPrice: 0, MaxPrice: 5000}, catalog.SortFeatured)
	wide := catalog.Query(seed(), catalog.Criteria{MinPrice: 0, MaxPrice: 20000}, catalog.SortFeatured)

	assert.GreaterOrEqual(t, len(wide), len(narrow))
	wideIDs := ids(wide)
	for _, id := range ids(narrow) {
		assert.Contains(t, wideIDs, id)
	}
}

func TestQuery_EmptyInputs(t *testing.T) {
	assert.Empty(t, catalog.Query(nil, catalog.Criteria{}, catalog.SortFeatured))
	assert.Empty(t, catalog.Query(seed(), catalog.Criteria{Search: "introuvable"}, catalog.SortFeatured))
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	entries := seed()
	before := ids(entries)

	catalog.Query(entries, catalog.Criteria{}, catalog.SortPriceDesc)

	assert.Equal(t, before, ids(entries))
}

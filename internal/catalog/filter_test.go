package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestApplyFiltersEmptySpecReturnsAll(t *testing.T) {
	all := DefaultCatalog()
	got := ApplyFilters(all, FilterSpec{})
	assert.Equal(t, all, got)
}

func TestApplyFiltersCategoryAllIsSkipped(t *testing.T) {
	all := DefaultCatalog()
	got := ApplyFilters(all, FilterSpec{Category: CategoryAll})
	assert.Equal(t, all, got)
}

func TestApplyFiltersByCategory(t *testing.T) {
	got := ApplyFilters(DefaultCatalog(), FilterSpec{Category: CategoryBass})

	require.Len(t, got, 2)
	assert.Equal(t, "10", got[0].ID)
	assert.Equal(t, "12", got[1].ID)
}

func TestApplyFiltersByQuery(t *testing.T) {
	got := ApplyFilters(DefaultCatalog(), FilterSpec{Query: "yAmAhA"})

	require.Len(t, got, 2)
	assert.Equal(t, "8", got[0].ID)
	assert.Equal(t, "11", got[1].ID)
}

func TestApplyFiltersQueryDoesNotMatchDescription(t *testing.T) {
	// "booming" appears only in the Martin D-28 description; the browse
	// filter matches name/brand/model only.
	got := ApplyFilters(DefaultCatalog(), FilterSpec{Query: "booming"})
	assert.Empty(t, got)
}

func TestApplyFiltersPriceBounds(t *testing.T) {
	got := ApplyFilters(DefaultCatalog(), FilterSpec{MinPrice: ptr(299), MaxPrice: ptr(449)})

	ids := []string{}
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Price, 299.0)
		assert.LessOrEqual(t, p.Price, 449.0)
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "2", "4", "8"}, ids)
}

func TestApplyFiltersMinAboveMaxYieldsEmpty(t *testing.T) {
	// No swap, no validation: both bounds apply independently.
	got := ApplyFilters(DefaultCatalog(), FilterSpec{MinPrice: ptr(1000), MaxPrice: ptr(500)})
	assert.Empty(t, got)
}

func TestApplyFiltersNaNBoundsAreIgnored(t *testing.T) {
	all := DefaultCatalog()
	got := ApplyFilters(all, FilterSpec{MinPrice: ptr(math.NaN()), MaxPrice: ptr(math.NaN())})
	assert.Equal(t, all, got)
}

func TestApplyFiltersInStockOnly(t *testing.T) {
	got := ApplyFilters(DefaultCatalog(), FilterSpec{InStockOnly: true})
	for _, p := range got {
		assert.True(t, p.InStock)
	}
	// the StingRay is the one out-of-stock fixture entry
	assert.Len(t, got, 11)
}

// TestApplyFiltersComposition checks the subset property: output is drawn
// from the input in order, and every item satisfies all active predicates.
func TestApplyFiltersComposition(t *testing.T) {
	all := DefaultCatalog()
	spec := FilterSpec{
		Category: CategoryElectric,
		Query:    "ibanez",
		MinPrice: ptr(200),
		MaxPrice: ptr(400),
	}
	got := ApplyFilters(all, spec)

	index := map[string]int{}
	for i, p := range all {
		index[p.ID] = i
	}

	last := -1
	for _, p := range got {
		pos, ok := index[p.ID]
		require.True(t, ok, "item %s not in input", p.ID)
		assert.Greater(t, pos, last, "input order not preserved")
		last = pos

		assert.Equal(t, CategoryElectric, p.Category)
		assert.Equal(t, "Ibanez", p.Brand)
		assert.GreaterOrEqual(t, p.Price, 200.0)
		assert.LessOrEqual(t, p.Price, 400.0)
	}
	assert.Len(t, got, 2)
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	all := DefaultCatalog()
	want := DefaultCatalog()

	_ = ApplyFilters(all, FilterSpec{Category: CategoryBass, Query: "fender"})
	assert.Equal(t, want, all)
}

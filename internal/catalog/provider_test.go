package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestProvider serves the stock catalog with the delay disabled.
func newTestProvider() *MemoryProvider {
	return NewMemoryProvider(DefaultCatalog(), 0)
}

func TestListAllReturnsFullCatalog(t *testing.T) {
	products, err := newTestProvider().ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 12)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "12", products[11].ID)
}

func TestGetByIDFound(t *testing.T) {
	p, err := newTestProvider().GetByID(context.Background(), "9")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Martin D-28 Standard Series", p.Name)
	assert.Equal(t, 3199.0, p.Price)
}

func TestGetByIDUnknownReturnsNilNil(t *testing.T) {
	p, err := newTestProvider().GetByID(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestFilterByCategoryElectric(t *testing.T) {
	products, err := newTestProvider().FilterByCategory(context.Background(), CategoryElectric)
	require.NoError(t, err)
	assert.Len(t, products, 8)
	for _, p := range products {
		assert.Equal(t, CategoryElectric, p.Category)
	}
}

func TestFilterByCategoryBass(t *testing.T) {
	products, err := newTestProvider().FilterByCategory(context.Background(), CategoryBass)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "10", products[0].ID)
	assert.Equal(t, "12", products[1].ID)
}

func TestFilterByPriceRangeInclusiveBounds(t *testing.T) {
	// 149 and 299 are exact fixture prices; both ends must be included.
	products, err := newTestProvider().FilterByPriceRange(context.Background(), 149, 299)
	require.NoError(t, err)

	ids := []string{}
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "3", "5", "6", "11"}, ids)
}

func TestSearchMatchesDescription(t *testing.T) {
	products, err := newTestProvider().Search(context.Background(), "BOOMING")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "9", products[0].ID)
}

func TestSearchEmptyQueryMatchesEverything(t *testing.T) {
	products, err := newTestProvider().Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, products, 12)
}

func TestSearchNoMatches(t *testing.T) {
	products, err := newTestProvider().Search(context.Background(), "theremin")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFeaturedCapAndThreshold(t *testing.T) {
	products, err := newTestProvider().Featured(context.Background())
	require.NoError(t, err)

	assert.LessOrEqual(t, len(products), 6)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Rating, 4.5)
	}

	ids := []string{}
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"2", "4", "8", "9", "10", "12"}, ids)
}

func TestFeaturedCapsAtSix(t *testing.T) {
	// A catalog where more than six products qualify.
	products := make([]Product, 10)
	for i := range products {
		products[i] = Product{ID: string(rune('a' + i)), Rating: 5}
	}

	got, err := NewMemoryProvider(products, 0).Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 6)
}

func TestProviderHonorsContextCancellation(t *testing.T) {
	p := NewMemoryProvider(DefaultCatalog(), time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.ListAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProviderAppliesConfiguredDelay(t *testing.T) {
	p := NewMemoryProvider(DefaultCatalog(), 30*time.Millisecond)

	start := time.Now()
	_, err := p.ListAll(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

// internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReturnsIndependentCopies(t *testing.T) {
	source := NewSource()

	first := source.Load()
	require.Len(t, first, 15)

	first[0].Name = "mutated"
	second := source.Load()
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestLoadRecordsAreWellFormed(t *testing.T) {
	source := NewSource()

	seenIDs := make(map[string]bool)
	seenSlugs := make(map[string]bool)
	for _, p := range source.Load() {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Slug)
		assert.NotEmpty(t, p.Series)
		assert.NotEmpty(t, p.Type)
		assert.False(t, p.DateAdded.IsZero())
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Popularity, 0)
		assert.LessOrEqual(t, p.Popularity, 100)
		assert.NotEmpty(t, p.Images, "every product needs at least one gallery image")

		assert.False(t, seenIDs[p.ID], "duplicate id %s", p.ID)
		assert.False(t, seenSlugs[p.Slug], "duplicate slug %s", p.Slug)
		seenIDs[p.ID] = true
		seenSlugs[p.Slug] = true
	}
}

func TestGetBySlug(t *testing.T) {
	source := NewSource()

	p, err := source.GetBySlug("labubu-forest-fairy-bloom")
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "Forest Fairy", p.Series)

	_, err = source.GetBySlug("no-such-labubu")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByID(t *testing.T) {
	source := NewSource()

	p, err := source.GetByID("5")
	require.NoError(t, err)
	assert.Equal(t, "labubu-mini-forest-sprite", p.Slug)

	_, err = source.GetByID("999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRelatedSharesSeriesAndExcludesSelf(t *testing.T) {
	source := NewSource()

	related := source.Related("labubu-forest-fairy-bloom", 4)
	require.NotEmpty(t, related)
	for _, p := range related {
		assert.Equal(t, "Forest Fairy", p.Series)
		assert.NotEqual(t, "labubu-forest-fairy-bloom", p.Slug)
	}

	assert.Len(t, source.Related("labubu-forest-fairy-bloom", 2), 2)
	assert.Empty(t, source.Related("no-such-labubu", 4))
}

func TestFeaturedIsMostPopularFirst(t *testing.T) {
	source := NewSource()

	featured := source.Featured(4)
	require.Len(t, featured, 4)
	for i := 1; i < len(featured); i++ {
		assert.GreaterOrEqual(t, featured[i-1].Popularity, featured[i].Popularity)
	}
	assert.Equal(t, "13", featured[0].ID)

	assert.Len(t, source.Featured(0), 15, "non-positive limit returns everything")
}

func TestHeroBanners(t *testing.T) {
	source := NewSource()

	banners := source.HeroBanners()
	require.Len(t, banners, 2)
	assert.Equal(t, "banner1", banners[0].ID)
	assert.NotEmpty(t, banners[0].CtaLink)
}

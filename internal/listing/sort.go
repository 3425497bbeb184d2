// internal/listing/sort.go
package listing

import (
	"golang.org/x/text/collate"

	"github.com/labubu-world/storefront/internal/models"
)

// SortKey selects one of the fixed listing orders.
type SortKey string

const (
	SortPopularityDesc SortKey = "popularity-desc"
	SortDateDesc       SortKey = "date-desc"
	SortPriceAsc       SortKey = "price-asc"
	SortPriceDesc      SortKey = "price-desc"
	SortNameAsc        SortKey = "name-asc"
	SortNameDesc       SortKey = "name-desc"
)

// DefaultSortKey is the order a fresh listing session starts with.
const DefaultSortKey = SortPopularityDesc

type lessFunc func(c *collate.Collator, a, b models.Product) bool

// comparators dispatches sort keys to their ordering. Every comparator is
// strict so sort.SliceStable keeps catalog order on ties.
var comparators = map[SortKey]lessFunc{
	SortPopularityDesc: func(_ *collate.Collator, a, b models.Product) bool {
		return a.Popularity > b.Popularity
	},
	SortDateDesc: func(_ *collate.Collator, a, b models.Product) bool {
		return a.DateAdded.After(b.DateAdded)
	},
	SortPriceAsc: func(_ *collate.Collator, a, b models.Product) bool {
		return a.Price < b.Price
	},
	SortPriceDesc: func(_ *collate.Collator, a, b models.Product) bool {
		return a.Price > b.Price
	},
	SortNameAsc: func(c *collate.Collator, a, b models.Product) bool {
		return c.CompareString(a.Name, b.Name) < 0
	},
	SortNameDesc: func(c *collate.Collator, a, b models.Product) bool {
		return c.CompareString(a.Name, b.Name) > 0
	},
}

// ValidSortKey reports whether key names a known listing order.
func ValidSortKey(key SortKey) bool {
	_, ok := comparators[key]
	return ok
}

// SortKeys returns every recognized key, for the sort dropdown.
func SortKeys() []SortKey {
	return []SortKey{
		SortPopularityDesc,
		SortDateDesc,
		SortPriceAsc,
		SortPriceDesc,
		SortNameAsc,
		SortNameDesc,
	}
}

// internal/listing/selection.go
package listing

import "github.com/labubu-world/storefront/internal/models"

// Dimension names a filterable product attribute.
type Dimension string

const (
	DimensionSeries Dimension = "series"
	DimensionType   Dimension = "type"
)

// Selection holds the chosen filter values, one value list per dimension. An
// empty list leaves that dimension unrestricted; it never means "match
// nothing". Values keep the order they were first selected in.
type Selection struct {
	Series []string `json:"series"`
	Types  []string `json:"types"`
}

// Count is the number of selected values across both dimensions, used for the
// filter badge on the display surface.
func (s Selection) Count() int {
	return len(s.Series) + len(s.Types)
}

func (s Selection) clone() Selection {
	return Selection{
		Series: append([]string(nil), s.Series...),
		Types:  append([]string(nil), s.Types...),
	}
}

// matches reports whether p passes the selection. Dimensions compose with
// AND; values within one dimension compose with OR.
func (s Selection) matches(p models.Product) bool {
	if len(s.Series) > 0 && !contains(s.Series, p.Series) {
		return false
	}
	if len(s.Types) > 0 && !contains(s.Types, p.Type) {
		return false
	}
	return true
}

// set adds or removes value on the given dimension. Adding a value already
// present or removing one that is absent is a no-op, not an error.
func (s *Selection) set(dimension Dimension, value string, included bool) error {
	switch dimension {
	case DimensionSeries:
		s.Series = setValue(s.Series, value, included)
	case DimensionType:
		s.Types = setValue(s.Types, value, included)
	default:
		return ErrInvalidDimension
	}
	return nil
}

func setValue(values []string, value string, included bool) []string {
	if included {
		if contains(values, value) {
			return values
		}
		return append(values, value)
	}
	out := values[:0:0]
	for _, v := range values {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

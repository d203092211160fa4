package reconcile

import (
	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
)

// Criteria is an in-memory property filter. Zero values mean "unset": an
// empty location matches everything, a zero max bound is unbounded, and a
// zero room count matches any room count. A non-zero room count is an exact
// match; 5 means exactly 5, not "5 or more".
type Criteria struct {
	Location  string
	PriceMin  float64
	PriceMax  float64
	AreaMin   int
	AreaMax   int
	RoomCount int
}

// Matches reports whether the property passes every set criterion. Range
// bounds are inclusive.
func (c Criteria) Matches(p entity.Property) bool {
	if c.Location != "" && p.Location != c.Location {
		return false
	}
	if p.Price < c.PriceMin {
		return false
	}
	if c.PriceMax > 0 && p.Price > c.PriceMax {
		return false
	}
	if p.SquareMeters < c.AreaMin {
		return false
	}
	if c.AreaMax > 0 && p.SquareMeters > c.AreaMax {
		return false
	}
	if c.RoomCount != 0 && p.RoomCount != c.RoomCount {
		return false
	}
	return true
}

// Apply returns the properties matching the criteria, preserving order. Pure:
// the input slice is never mutated.
func (c Criteria) Apply(properties []entity.Property) []entity.Property {
	filtered := make([]entity.Property, 0, len(properties))
	for _, p := range properties {
		if c.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

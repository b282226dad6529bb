package models

import "strings"

// SortKey selects the ordering applied to a result list.
type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortRating    SortKey = "rating"
	SortDistance  SortKey = "distance"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// DefaultSortKey is used when the caller does not ask for an order.
const DefaultSortKey = SortPopular

// ParseSortKey normalises the raw value. Unknown keys are returned as-is;
// sorting by them leaves the list in input order.
func ParseSortKey(s string) SortKey {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSortKey
	}
	return SortKey(s)
}

func (k SortKey) Known() bool {
	switch k {
	case SortPopular, SortRating, SortDistance, SortPriceLow, SortPriceHigh:
		return true
	default:
		return false
	}
}

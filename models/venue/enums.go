package venue

import (
	"fmt"
	"strings"
)

// Category is the closed set of venue kinds.
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryCafe       Category = "cafe"
	CategoryAttraction Category = "attraction"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryRestaurant, CategoryCafe, CategoryAttraction}

func (c Category) Valid() bool {
	switch c {
	case CategoryRestaurant, CategoryCafe, CategoryAttraction:
		return true
	default:
		return false
	}
}

// ParseCategory accepts the canonical names case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q, expected one of %v", s, Categories)
	}
	return c, nil
}

// DietaryOption is the closed vocabulary of dietary tags.
type DietaryOption string

const (
	DietaryVegetarian DietaryOption = "vegetarian"
	DietaryVegan      DietaryOption = "vegan"
	DietaryHalal      DietaryOption = "halal"
)

var DietaryOptions = []DietaryOption{DietaryVegetarian, DietaryVegan, DietaryHalal}

func (d DietaryOption) Valid() bool {
	switch d {
	case DietaryVegetarian, DietaryVegan, DietaryHalal:
		return true
	default:
		return false
	}
}

func ParseDietaryOption(s string) (DietaryOption, error) {
	d := DietaryOption(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown dietary option %q, expected one of %v", s, DietaryOptions)
	}
	return d, nil
}

// PriceLevel is the price symbol as shown to users, "$" through "$$$$".
type PriceLevel string

const (
	PriceBudget    PriceLevel = "$"
	PriceModerate  PriceLevel = "$$"
	PriceExpensive PriceLevel = "$$$"
	PriceLuxury    PriceLevel = "$$$$"
)

// Tier maps the symbol to 1..4. Unknown symbols map to 0 so that any
// price range starting above 0 excludes them.
func (p PriceLevel) Tier() int {
	switch p {
	case PriceBudget:
		return 1
	case PriceModerate:
		return 2
	case PriceExpensive:
		return 3
	case PriceLuxury:
		return 4
	default:
		return 0
	}
}

package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"venue-discovery/models/venue"
)

// Query argument names shared by the HTTP handlers and SearchFilters.ToValues.
const (
	QueryArg       = "q"
	CategoryArg    = "category"
	PriceMinArg    = "price_min"
	PriceMaxArg    = "price_max"
	MinRatingArg   = "min_rating"
	MaxDistanceArg = "max_distance"
	OpenNowArg     = "open_now"
	Open24HoursArg = "open_24h"
	DietaryArg     = "dietary"
	SortArg        = "sort"
)

const (
	DefaultPriceMin      = 1
	DefaultPriceMax      = 4
	DefaultMaxDistanceKm = 50.0
	DefaultMinRating     = 0.0
)

// SearchFilters is a query over the venue catalog. Empty Categories or
// Dietary mean no restriction; non-empty ones match any member.
type SearchFilters struct {
	Query       string                `json:"query"`
	Categories  []venue.Category      `json:"categories"`
	PriceRange  [2]int                `json:"price_range"`
	MinRating   float64               `json:"min_rating"`
	MaxDistance float64               `json:"max_distance"`
	OpenNow     bool                  `json:"open_now"`
	Open24Hours bool                  `json:"open_24_hours"`
	Dietary     []venue.DietaryOption `json:"dietary"`
}

// DefaultSearchFilters returns the filters of a cleared search.
func DefaultSearchFilters() SearchFilters {
	return SearchFilters{
		Query:       "",
		Categories:  []venue.Category{},
		PriceRange:  [2]int{DefaultPriceMin, DefaultPriceMax},
		MinRating:   DefaultMinRating,
		MaxDistance: DefaultMaxDistanceKm,
		OpenNow:     false,
		Open24Hours: false,
		Dietary:     []venue.DietaryOption{},
	}
}

// ParseSearchFilters overlays query arguments on DefaultSearchFilters.
// Numbers that do not parse and values outside the category or dietary
// vocabularies are rejected; out-of-range numbers are passed through.
func ParseSearchFilters(vals url.Values) (SearchFilters, error) {
	f := DefaultSearchFilters()
	var err error

	f.Query = strings.TrimSpace(vals.Get(QueryArg))

	for _, raw := range splitList(vals[CategoryArg]) {
		c, err := venue.ParseCategory(raw)
		if err != nil {
			return f, err
		}
		f.Categories = append(f.Categories, c)
	}
	for _, raw := range splitList(vals[DietaryArg]) {
		d, err := venue.ParseDietaryOption(raw)
		if err != nil {
			return f, err
		}
		f.Dietary = append(f.Dietary, d)
	}

	if f.PriceRange[0], err = intArg(vals, PriceMinArg, f.PriceRange[0]); err != nil {
		return f, err
	}
	if f.PriceRange[1], err = intArg(vals, PriceMaxArg, f.PriceRange[1]); err != nil {
		return f, err
	}
	if f.MinRating, err = floatArg(vals, MinRatingArg, f.MinRating); err != nil {
		return f, err
	}
	if f.MaxDistance, err = floatArg(vals, MaxDistanceArg, f.MaxDistance); err != nil {
		return f, err
	}
	if f.OpenNow, err = boolArg(vals, OpenNowArg, f.OpenNow); err != nil {
		return f, err
	}
	if f.Open24Hours, err = boolArg(vals, Open24HoursArg, f.Open24Hours); err != nil {
		return f, err
	}
	return f, nil
}

// ToValues renders the filters as query arguments, omitting defaults.
func (f SearchFilters) ToValues() url.Values {
	q := url.Values{}
	def := DefaultSearchFilters()

	if f.Query != "" {
		q.Set(QueryArg, f.Query)
	}
	if len(f.Categories) > 0 {
		names := make([]string, len(f.Categories))
		for i, c := range f.Categories {
			names[i] = string(c)
		}
		q.Set(CategoryArg, strings.Join(names, ","))
	}
	if f.PriceRange[0] != def.PriceRange[0] {
		q.Set(PriceMinArg, strconv.Itoa(f.PriceRange[0]))
	}
	if f.PriceRange[1] != def.PriceRange[1] {
		q.Set(PriceMaxArg, strconv.Itoa(f.PriceRange[1]))
	}
	if f.MinRating != def.MinRating {
		q.Set(MinRatingArg, ftoa(f.MinRating))
	}
	if f.MaxDistance != def.MaxDistance {
		q.Set(MaxDistanceArg, ftoa(f.MaxDistance))
	}
	if f.OpenNow {
		q.Set(OpenNowArg, strconv.FormatBool(f.OpenNow))
	}
	if f.Open24Hours {
		q.Set(Open24HoursArg, strconv.FormatBool(f.Open24Hours))
	}
	if len(f.Dietary) > 0 {
		names := make([]string, len(f.Dietary))
		for i, d := range f.Dietary {
			names[i] = string(d)
		}
		q.Set(DietaryArg, strings.Join(names, ","))
	}
	return q
}

// splitList accepts both repeated arguments and comma-separated lists.
func splitList(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func intArg(vals url.Values, name string, def int) (int, error) {
	s := vals.Get(name)
	if s == "" {
		return def, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def, fmt.Errorf("invalid argument %s: %w", name, err)
	}
	return i, nil
}

func floatArg(vals url.Values, name string, def float64) (float64, error) {
	s := vals.Get(name)
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def, fmt.Errorf("invalid argument %s: %w", name, err)
	}
	return f, nil
}

func boolArg(vals url.Values, name string, def bool) (bool, error) {
	s := vals.Get(name)
	if s == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def, fmt.Errorf("invalid argument %s: %w", name, err)
	}
	return b, nil
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

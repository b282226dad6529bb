package discovery

import (
	"strings"
	"time"

	"venue-discovery/models"
	"venue-discovery/models/venue"
)

// FilterVenues returns the venues matching every constraint in filters,
// keeping input order. The distance constraint applies only when
// userLocation is non-nil; now feeds the open-now check. Ill-formed
// filters (e.g. an inverted price range) simply match nothing.
func FilterVenues(venues []venue.Venue, filters models.SearchFilters, userLocation *venue.Coordinates, now time.Time) []venue.Venue {
	query := strings.ToLower(filters.Query)

	out := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		if !matchesQuery(v, query) {
			continue
		}
		if !matchesCategory(v, filters.Categories) {
			continue
		}
		if tier := v.PriceLevel.Tier(); tier < filters.PriceRange[0] || tier > filters.PriceRange[1] {
			continue
		}
		if v.Rating < filters.MinRating {
			continue
		}
		if userLocation != nil && !(CalculateDistance(*userLocation, v.Coordinates) <= filters.MaxDistance) {
			continue
		}
		if filters.OpenNow && !IsVenueOpen(v.OpeningHours, v.IsOpen24Hours, now) {
			continue
		}
		if filters.Open24Hours && !v.IsOpen24Hours {
			continue
		}
		if !matchesDietary(v, filters.Dietary) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// matchesQuery expects an already lower-cased query.
func matchesQuery(v venue.Venue, query string) bool {
	if query == "" {
		return true
	}
	fields := []string{v.VenueName, v.Description, v.VenueAddress, v.CuisineType}
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func matchesCategory(v venue.Venue, categories []venue.Category) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if v.Category == c {
			return true
		}
	}
	return false
}

func matchesDietary(v venue.Venue, dietary []venue.DietaryOption) bool {
	if len(dietary) == 0 {
		return true
	}
	for _, d := range dietary {
		if v.HasDietaryOption(d) {
			return true
		}
	}
	return false
}

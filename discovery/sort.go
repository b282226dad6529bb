package discovery

import (
	"math"
	"sort"

	"venue-discovery/models"
	"venue-discovery/models/venue"
)

// SortVenues returns a reordered copy of venues. Every ordering is stable.
// Distance sorting without a userLocation and unknown keys return the copy
// in input order.
func SortVenues(venues []venue.Venue, sortBy models.SortKey, userLocation *venue.Coordinates) []venue.Venue {
	out := make([]venue.Venue, len(venues))
	copy(out, venues)

	switch sortBy {
	case models.SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ReviewCount > out[j].ReviewCount
		})
	case models.SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Rating != out[j].Rating {
				return out[i].Rating > out[j].Rating
			}
			return out[i].ReviewCount > out[j].ReviewCount
		})
	case models.SortDistance:
		if userLocation == nil {
			return out
		}
		keyed := make([]withDistance, len(out))
		for i, v := range out {
			keyed[i] = withDistance{item: v, km: CalculateDistance(*userLocation, v.Coordinates)}
		}
		// NaN distances go last, keeping their relative order.
		sort.SliceStable(keyed, func(i, j int) bool {
			a, b := keyed[i].km, keyed[j].km
			if math.IsNaN(a) {
				return false
			}
			return math.IsNaN(b) || a < b
		})
		for i := range keyed {
			out[i] = keyed[i].item
		}
	case models.SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AvgCostPerPerson < out[j].AvgCostPerPerson
		})
	case models.SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AvgCostPerPerson > out[j].AvgCostPerPerson
		})
	}
	return out
}

type withDistance struct {
	item venue.Venue
	km   float64
}

package discovery

import (
	"time"

	"venue-discovery/models"
	"venue-discovery/models/venue"
)

// Annotate attaches per-caller values to each venue, keeping order.
func Annotate(venues []venue.Venue, userLocation *venue.Coordinates, now time.Time) []models.VenueResult {
	out := make([]models.VenueResult, len(venues))
	for i, v := range venues {
		out[i] = models.VenueResult{
			Venue:  v,
			IsOpen: IsVenueOpen(v.OpeningHours, v.IsOpen24Hours, now),
		}
		if userLocation != nil {
			km := CalculateDistance(*userLocation, v.Coordinates)
			out[i].DistanceKm = &km
			out[i].Distance = FormatDistance(km)
		}
	}
	return out
}

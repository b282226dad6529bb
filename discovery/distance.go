package discovery

import (
	"fmt"
	"math"

	"venue-discovery/models/venue"
)

const earthRadiusKm = 6371.0

// CalculateDistance returns the great-circle distance in kilometres between
// two points using the haversine formula. NaN inputs yield NaN.
func CalculateDistance(from, to venue.Coordinates) float64 {
	lat1Rad := degreesToRadians(from.Lat)
	lat2Rad := degreesToRadians(to.Lat)
	deltaLat := degreesToRadians(to.Lat - from.Lat)
	deltaLng := degreesToRadians(to.Lng - from.Lng)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FormatDistance renders sub-kilometre distances in metres and the rest
// in kilometres with one decimal.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1fkm", km)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

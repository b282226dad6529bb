package models

import "venue-discovery/models/venue"

// BoundingBox frames a set of coordinates, used by clients to fit the map.
type BoundingBox struct {
	Lat    float64 `json:"lat"`
	LatMax float64 `json:"lat_max"`
	LatMin float64 `json:"lat_min"`
	Lng    float64 `json:"lng"`
	LngMax float64 `json:"lng_max"`
	LngMin float64 `json:"lng_min"`
}

// NewBoundingBox returns nil for an empty slice. Lat and Lng hold the centre.
func NewBoundingBox(coords []venue.Coordinates) *BoundingBox {
	if len(coords) == 0 {
		return nil
	}
	b := &BoundingBox{
		LatMin: coords[0].Lat, LatMax: coords[0].Lat,
		LngMin: coords[0].Lng, LngMax: coords[0].Lng,
	}
	for _, c := range coords[1:] {
		if c.Lat < b.LatMin {
			b.LatMin = c.Lat
		}
		if c.Lat > b.LatMax {
			b.LatMax = c.Lat
		}
		if c.Lng < b.LngMin {
			b.LngMin = c.Lng
		}
		if c.Lng > b.LngMax {
			b.LngMax = c.Lng
		}
	}
	b.Lat = (b.LatMin + b.LatMax) / 2
	b.Lng = (b.LngMin + b.LngMax) / 2
	return b
}

package models

import "venue-discovery/models/venue"

// VenueResult pairs a venue with the values computed for the current caller.
type VenueResult struct {
	Venue      venue.Venue `json:"venue"`
	DistanceKm *float64    `json:"distance_km,omitempty"`
	Distance   string      `json:"distance,omitempty"`
	IsOpen     bool        `json:"is_open"`
}

// SearchResponse is the body of GET /v1/venues/search.
type SearchResponse struct {
	Filters      SearchFilters      `json:"filters"`
	SortBy       SortKey            `json:"sort_by"`
	UserLocation *venue.Coordinates `json:"user_location,omitempty"`
	Total        int                `json:"total"`
	Venues       []VenueResult      `json:"venues"`
	BoundingBox  *BoundingBox       `json:"bounding_box,omitempty"`
}

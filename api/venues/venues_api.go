package venues

import "venue-discovery/models/venue"

// VenuesAPI is the upstream source of the venue catalog.
type VenuesAPI interface {
	ListVenues() ([]venue.Venue, error)
	GetVenue(venueID string) (*venue.Venue, error)
}

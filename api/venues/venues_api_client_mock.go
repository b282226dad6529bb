package venues

import (
	"fmt"
	"log"

	"venue-discovery/models/venue"
	"venue-discovery/util"
)

// VenuesApiClientMock serves the catalog from a JSON fixture on disk.
type VenuesApiClientMock struct {
	path string
}

// NewVenuesApiClientMock creates a mock reading the fixture at path.
func NewVenuesApiClientMock(path string) *VenuesApiClientMock {
	return &VenuesApiClientMock{path: path}
}

func (c *VenuesApiClientMock) ListVenues() ([]venue.Venue, error) {
	venues, err := util.ReadVenuesFromJSON(c.path)
	if err != nil {
		log.Println("[VenuesApiClientMock] Could not read venues from json")
		return nil, err
	}
	return venues, nil
}

func (c *VenuesApiClientMock) GetVenue(venueID string) (*venue.Venue, error) {
	venues, err := c.ListVenues()
	if err != nil {
		return nil, err
	}
	for i := range venues {
		if venues[i].VenueID == venueID {
			return &venues[i], nil
		}
	}
	return nil, fmt.Errorf("venue %s not in fixture", venueID)
}

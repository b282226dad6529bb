package venues

import (
	"fmt"
	"net/url"

	"venue-discovery/api"
	"venue-discovery/models/venue"
)

// VenuesApiClient embeds the common HTTPClient
type VenuesApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewVenuesApiClient creates a new instance of VenuesApiClient
func NewVenuesApiClient(httpClient *api.HTTPClient) *VenuesApiClient {
	return &VenuesApiClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey sets the key sent as X-Api-Key on every request.
func (c *VenuesApiClient) SetAPIKey(key string) {
	c.apiKey = key
}

func (c *VenuesApiClient) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"X-Api-Key": c.apiKey}
}

// ListVenues retrieves the whole catalog.
func (c *VenuesApiClient) ListVenues() ([]venue.Venue, error) {
	var response []venue.Venue
	if err := c.Request("GET", "/venues", c.headers(), nil, &response); err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return response, nil
}

// GetVenue retrieves a venue given a venue id
func (c *VenuesApiClient) GetVenue(venueID string) (*venue.Venue, error) {
	var response venue.Venue
	if err := c.Request("GET", "/venues/"+url.PathEscape(venueID), c.headers(), nil, &response); err != nil {
		return nil, fmt.Errorf("get venue %s: %w", venueID, err)
	}
	return &response, nil
}

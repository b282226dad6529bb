package util

import (
	"encoding/json"
	"fmt"
	"os"

	"venue-discovery/models/venue"
)

// ReadVenuesFromJSON loads a venue list from JSON on disk.
func ReadVenuesFromJSON(filePath string) ([]venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var venues []venue.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues: %w", err)
	}
	return venues, nil
}

// PrintVenuesPartially prints key fields of the first few venues.
func PrintVenuesPartially(venues []venue.Venue, limit int) {
	fmt.Printf("Venues: %d\n", len(venues))
	for i, v := range venues {
		if i >= limit {
			break
		}
		fmt.Printf("  %s (%s, %s, rating %.1f) at %s\n", v.VenueName, v.Category, v.PriceLevel, v.Rating, v.VenueAddress)
	}
}

package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-discovery/models/venue"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp(t.TempDir(), "test*.json")
	require.NoError(t, err)
	_, err = tempFile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tempFile.Close())
	return tempFile.Name()
}

func TestReadVenuesFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{
			"id": "pho-2000",
			"name": "Pho 2000",
			"category": "restaurant",
			"rating": 4.5,
			"review_count": 1200,
			"price_level": "$",
			"coordinates": {"lat": 10.7719, "lng": 106.6983},
			"opening_hours": {"monday": "06:00 - 22:00", "sunday": "Closed"},
			"dietary_options": ["halal"]
		},
		{"id": "museum", "name": "Museum", "category": "attraction", "is_open_24_hours": true}
	]`
	path := createTempFile(t, content)

	// Act
	venues, err := ReadVenuesFromJSON(path)

	// Assert
	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, "pho-2000", venues[0].VenueID)
	assert.Equal(t, venue.CategoryRestaurant, venues[0].Category)
	assert.Equal(t, 1, venues[0].PriceLevel.Tier())
	assert.Equal(t, venue.Coordinates{Lat: 10.7719, Lng: 106.6983}, venues[0].Coordinates)
	assert.Equal(t, "Closed", venues[0].OpeningHours["sunday"])
	assert.True(t, venues[0].HasDietaryOption(venue.DietaryHalal))
	assert.True(t, venues[1].IsOpen24Hours)
	assert.Empty(t, venues[1].CuisineType)
}

func TestReadVenuesFromJSON_Errors(t *testing.T) {
	_, err := ReadVenuesFromJSON("does-not-exist.json")
	assert.Error(t, err)

	_, err = ReadVenuesFromJSON(createTempFile(t, `{"not": "a list"}`))
	assert.Error(t, err)
}

func TestReadVenuesFromJSON_BundledCatalog(t *testing.T) {
	venues, err := ReadVenuesFromJSON("../resources/venues.json")

	require.NoError(t, err)
	require.NotEmpty(t, venues)
	seen := map[string]bool{}
	for _, v := range venues {
		assert.False(t, seen[v.VenueID], "duplicate id %s", v.VenueID)
		seen[v.VenueID] = true
		assert.True(t, v.Category.Valid(), "venue %s category %q", v.VenueID, v.Category)
		for _, d := range v.DietaryOptions {
			assert.True(t, d.Valid(), "venue %s dietary %q", v.VenueID, d)
		}
	}
}

func TestPrintVenuesPartially(t *testing.T) {
	// This test validates that the function doesn't panic.
	PrintVenuesPartially([]venue.Venue{{VenueID: "1", VenueName: "Test Venue"}}, 5)
	PrintVenuesPartially(nil, 5)
}

package venue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceLevel_Tier(t *testing.T) {
	tests := []struct {
		level PriceLevel
		tier  int
	}{
		{PriceBudget, 1},
		{PriceModerate, 2},
		{PriceExpensive, 3},
		{PriceLuxury, 4},
		{PriceLevel("€"), 0},
		{PriceLevel(""), 0},
		{PriceLevel("$$$$$"), 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.tier, test.level.Tier(), "level %q", test.level)
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Cafe ")
	require.NoError(t, err)
	assert.Equal(t, CategoryCafe, c)

	_, err = ParseCategory("bar")
	assert.Error(t, err)
}

func TestParseDietaryOption(t *testing.T) {
	d, err := ParseDietaryOption("VEGAN")
	require.NoError(t, err)
	assert.Equal(t, DietaryVegan, d)

	_, err = ParseDietaryOption("gluten-free")
	assert.Error(t, err)
}

func TestOpeningHours_ForDay(t *testing.T) {
	hours := OpeningHours{"monday": "08:00 - 17:00", "sunday": "closed"}

	entry, ok := hours.ForDay(time.Monday)
	assert.True(t, ok)
	assert.Equal(t, "08:00 - 17:00", entry)

	_, ok = hours.ForDay(time.Tuesday)
	assert.False(t, ok)

	entry, _ = hours.ForDay(time.Sunday)
	assert.True(t, IsClosedEntry(entry))
	assert.False(t, IsClosedEntry("08:00 - 17:00"))
}

func TestVenue_HasDietaryOption(t *testing.T) {
	v := Venue{DietaryOptions: []DietaryOption{DietaryVegetarian, DietaryHalal}}

	assert.True(t, v.HasDietaryOption(DietaryHalal))
	assert.False(t, v.HasDietaryOption(DietaryVegan))
}

func TestParseCategory_ErrorListsVocabulary(t *testing.T) {
	_, err := ParseCategory("bar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restaurant cafe attraction")

	_, err = ParseDietaryOption("keto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vegetarian vegan halal")
}

func TestVenue_ToString(t *testing.T) {
	v := Venue{VenueID: "pho", VenueName: "Pho", Category: CategoryRestaurant}

	assert.Contains(t, v.ToString(), "id=pho")
}

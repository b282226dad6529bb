package discovery

import "venue-discovery/models/venue"

var (
	benThanh  = venue.Coordinates{Lat: 10.7725, Lng: 106.6980}
	district5 = venue.Coordinates{Lat: 10.7545, Lng: 106.6744}
)

func testVenues() []venue.Venue {
	return []venue.Venue{
		{
			VenueID:          "pho-2000",
			VenueName:        "Pho 2000",
			Description:      "Famous noodle soup near the market",
			VenueAddress:     "1-3 Phan Chu Trinh, District 1",
			CuisineType:      "Vietnamese",
			Category:         venue.CategoryRestaurant,
			Rating:           4.5,
			ReviewCount:      1200,
			PriceLevel:       venue.PriceBudget,
			AvgCostPerPerson: 80000,
			Coordinates:      venue.Coordinates{Lat: 10.7719, Lng: 106.6983},
			OpeningHours:     weekdayHours("06:00 - 22:00"),
			DietaryOptions:   []venue.DietaryOption{venue.DietaryHalal},
		},
		{
			VenueID:          "the-workshop",
			VenueName:        "The Workshop Coffee",
			Description:      "Specialty coffee roastery",
			VenueAddress:     "27 Ngo Duc Ke, District 1",
			Category:         venue.CategoryCafe,
			Rating:           4.7,
			ReviewCount:      850,
			PriceLevel:       venue.PriceModerate,
			AvgCostPerPerson: 120000,
			Coordinates:      venue.Coordinates{Lat: 10.7743, Lng: 106.7047},
			OpeningHours:     weekdayHours("08:00 - 21:00"),
			DietaryOptions:   []venue.DietaryOption{venue.DietaryVegetarian, venue.DietaryVegan},
		},
		{
			VenueID:          "war-remnants",
			VenueName:        "War Remnants Museum",
			Description:      "History museum",
			VenueAddress:     "28 Vo Van Tan, District 3",
			Category:         venue.CategoryAttraction,
			Rating:           4.5,
			ReviewCount:      5000,
			PriceLevel:       venue.PriceBudget,
			AvgCostPerPerson: 40000,
			Coordinates:      venue.Coordinates{Lat: 10.7795, Lng: 106.6921},
			OpeningHours:     weekdayHours("07:30 - 17:30"),
		},
		{
			VenueID:          "cho-lon-hotpot",
			VenueName:        "Cho Lon Hotpot",
			Description:      "Late night hotpot",
			VenueAddress:     "District 5",
			CuisineType:      "Chinese",
			Category:         venue.CategoryRestaurant,
			Rating:           4.1,
			ReviewCount:      300,
			PriceLevel:       venue.PriceExpensive,
			AvgCostPerPerson: 350000,
			Coordinates:      district5,
			IsOpen24Hours:    true,
			DietaryOptions:   []venue.DietaryOption{venue.DietaryVegetarian},
		},
		{
			VenueID:          "rooftop",
			VenueName:        "Chill Skybar",
			Description:      "Rooftop bar with a view",
			VenueAddress:     "76A Le Lai, District 1",
			Category:         venue.CategoryRestaurant,
			Rating:           3.9,
			ReviewCount:      300,
			PriceLevel:       venue.PriceLuxury,
			AvgCostPerPerson: 900000,
			Coordinates:      venue.Coordinates{Lat: 10.7711, Lng: 106.6935},
			OpeningHours:     weekdayHours("17:30 - 23:59"),
		},
		{
			VenueID:          "mystery",
			VenueName:        "Mystery Stall",
			Description:      "Street food with no listed prices",
			VenueAddress:     "Thu Duc",
			Category:         venue.CategoryRestaurant,
			Rating:           4.0,
			ReviewCount:      10,
			PriceLevel:       venue.PriceLevel("€"),
			AvgCostPerPerson: 30000,
			Coordinates:      venue.Coordinates{Lat: 10.8494, Lng: 106.7537},
			OpeningHours:     weekdayHours("10:00 - 14:00"),
		},
	}
}

func ids(venues []venue.Venue) []string {
	out := make([]string, len(venues))
	for i, v := range venues {
		out[i] = v.VenueID
	}
	return out
}

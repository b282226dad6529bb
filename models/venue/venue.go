package venue

import "fmt"

// Venue represents a place a user can discover: a restaurant, a cafe or an attraction.
type Venue struct {
	VenueID          string          `json:"id"`
	VenueName        string          `json:"name"`
	Description      string          `json:"description"`
	VenueAddress     string          `json:"address"`
	CuisineType      string          `json:"cuisine_type,omitempty"`
	Category         Category        `json:"category"`
	Rating           float64         `json:"rating"`
	ReviewCount      int             `json:"review_count"`
	PriceLevel       PriceLevel      `json:"price_level"`
	AvgCostPerPerson float64         `json:"avg_cost_per_person"`
	Coordinates      Coordinates     `json:"coordinates"`
	OpeningHours     OpeningHours    `json:"opening_hours,omitempty"`
	IsOpen24Hours    bool            `json:"is_open_24_hours"`
	DietaryOptions   []DietaryOption `json:"dietary_options,omitempty"`

	// Presentation only.
	ImageURL string `json:"image_url,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HasDietaryOption reports whether the venue carries the given tag.
func (v *Venue) HasDietaryOption(option DietaryOption) bool {
	for _, o := range v.DietaryOptions {
		if o == option {
			return true
		}
	}
	return false
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, category=%s, lat=%f, lng=%f)",
		v.VenueID, v.VenueName, v.Category, v.Coordinates.Lat, v.Coordinates.Lng)
}

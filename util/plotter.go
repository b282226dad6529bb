package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"venue-discovery/models"
	"venue-discovery/models/venue"
)

// RenderVenuesMap writes an HTML page plotting each result as a point,
// one series per category, with the caller's location when known.
func RenderVenuesMap(w io.Writer, title string, results []models.VenueResult, userLocation *venue.Coordinates) error {
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d venues", len(results)),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	byCategory := map[string][]opts.GeoData{}
	var order []string
	for _, r := range results {
		c := string(r.Venue.Category)
		if _, seen := byCategory[c]; !seen {
			order = append(order, c)
		}
		byCategory[c] = append(byCategory[c], opts.GeoData{
			Name:  r.Venue.VenueName,
			Value: []float64{r.Venue.Coordinates.Lng, r.Venue.Coordinates.Lat, r.Venue.Rating},
		})
	}

	for _, c := range order {
		geo.AddSeries(c, types.ChartScatter, byCategory[c],
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(false),
				Formatter: "{b}",
			}),
		)
	}

	if userLocation != nil {
		geo.AddSeries("you", types.ChartEffectScatter, []opts.GeoData{
			{Name: "you", Value: []float64{userLocation.Lng, userLocation.Lat}},
		})
	}

	if err := geo.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

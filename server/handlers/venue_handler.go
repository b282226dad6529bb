package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"venue-discovery/dao/redis"
	"venue-discovery/models"
	"venue-discovery/models/venue"
	services "venue-discovery/service"
	"venue-discovery/util"
)

const (
	LAT_QUERY_ARG    = "lat"
	LNG_QUERY_ARG    = "lng"
	RADIUS_QUERY_ARG = "radius"
	VENUE_ID_VAR     = "id"

	MAP_PAGE_TITLE = "Venues"
)

type VenueHandler struct {
	venueService *services.VenueService
}

func NewVenueHandler(venueService *services.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// SearchVenues handles GET /v1/venues/search
func (h *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseSearchArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	resp, err := h.venueService.Search(req)
	if err != nil {
		log.Println("[VenueHandler] Error searching venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetVenuesNearby handles GET /v1/venues/nearby
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil || !validLatitude(lat) {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lng, err := parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil || !validLongitude(lng) {
		http.Error(w, "Invalid argument "+LNG_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err := parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil || !isFinite(radius) || radius < 0 {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	sortBy, err := parseSortKey(vals)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.venueService.Nearby(lat, lng, radius, sortBy)
	if err != nil {
		log.Println("[VenueHandler] Error loading nearby venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// GetVenuesMap handles GET /v1/venues/map and renders the search result as HTML.
func (h *VenueHandler) GetVenuesMap(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseSearchArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	resp, err := h.venueService.Search(req)
	if err != nil {
		log.Println("[VenueHandler] Error searching venues for map:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	title := MAP_PAGE_TITLE
	if q := req.Filters.ToValues(); len(q) > 0 {
		title += " (" + q.Encode() + ")"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := util.RenderVenuesMap(w, title, resp.Venues, resp.UserLocation); err != nil {
		log.Println("[VenueHandler] Error rendering map:", err)
	}
}

// GetDefaultFilters handles GET /v1/venues/filters/default
func (h *VenueHandler) GetDefaultFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.DefaultSearchFilters())
}

// GetVenue handles GET /v1/venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)[VENUE_ID_VAR]

	v, err := h.venueService.GetVenue(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func (h *VenueHandler) parseSearchArgs(vals url.Values, w http.ResponseWriter) (services.SearchRequest, bool) {
	filters, err := models.ParseSearchFilters(vals)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return services.SearchRequest{}, false
	}
	location, err := parseLocation(vals)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return services.SearchRequest{}, false
	}
	sortBy, err := parseSortKey(vals)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return services.SearchRequest{}, false
	}
	return services.SearchRequest{
		Filters:      filters,
		SortBy:       sortBy,
		UserLocation: location,
	}, true
}

func parseSortKey(vals url.Values) (models.SortKey, error) {
	sortBy := models.ParseSortKey(vals.Get(models.SortArg))
	if !sortBy.Known() {
		return "", fmt.Errorf("unknown %s %q", models.SortArg, sortBy)
	}
	return sortBy, nil
}

// parseLocation returns nil when neither coordinate is given.
func parseLocation(vals url.Values) (*venue.Coordinates, error) {
	rawLat, rawLng := vals.Get(LAT_QUERY_ARG), vals.Get(LNG_QUERY_ARG)
	if rawLat == "" && rawLng == "" {
		return nil, nil
	}
	if rawLat == "" || rawLng == "" {
		return nil, fmt.Errorf("%s and %s must be given together", LAT_QUERY_ARG, LNG_QUERY_ARG)
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid argument %s: %w", LAT_QUERY_ARG, err)
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid argument %s: %w", LNG_QUERY_ARG, err)
	}
	if !validLatitude(lat) {
		return nil, fmt.Errorf("invalid argument %s: out of range", LAT_QUERY_ARG)
	}
	if !validLongitude(lng) {
		return nil, fmt.Errorf("invalid argument %s: out of range", LNG_QUERY_ARG)
	}
	return &venue.Coordinates{Lat: lat, Lng: lng}, nil
}

// NaN fails both comparisons.
func validLatitude(lat float64) bool  { return lat >= -90 && lat <= 90 }
func validLongitude(lng float64) bool { return lng >= -180 && lng <= 180 }

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		log.Println("[VenueHandler] Error encoding response:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, redis.ErrVenueNotFound) {
		http.Error(w, "Venue not found", http.StatusNotFound)
		return
	}
	log.Println("[VenueHandler] Service error:", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

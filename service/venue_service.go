package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"venue-discovery/api/venues"
	"venue-discovery/dao/redis"
	"venue-discovery/discovery"
	"venue-discovery/models"
	"venue-discovery/models/venue"
)

// FavoritesStore persists per-user favourite venue IDs.
type FavoritesStore interface {
	AddFavorite(userID, venueID string) error
	RemoveFavorite(userID, venueID string) error
	IsFavorite(userID, venueID string) (bool, error)
	ListFavorites(userID string) ([]string, error)
}

// SearchRequest is one discovery query from a client.
type SearchRequest struct {
	Filters      models.SearchFilters
	SortBy       models.SortKey
	UserLocation *venue.Coordinates
}

type VenueService struct {
	venueDao  *redis.RedisVenueDAO
	venuesApi venues.VenuesAPI
	favorites FavoritesStore
	now       func() time.Time
}

// NewVenueService wires the catalog, the upstream API used as a fallback
// for unknown IDs, the favourites store and the clock. A nil clock means
// time.Now.
func NewVenueService(
	venueDao *redis.RedisVenueDAO,
	venuesApi venues.VenuesAPI,
	favorites FavoritesStore,
	now func() time.Time) *VenueService {

	if now == nil {
		now = time.Now
	}
	return &VenueService{
		venueDao:  venueDao,
		venuesApi: venuesApi,
		favorites: favorites,
		now:       now,
	}
}

// Search filters, sorts and annotates the catalog.
func (vs *VenueService) Search(req SearchRequest) (*models.SearchResponse, error) {
	catalog, err := vs.venueDao.ListVenues()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	now := vs.now()
	filtered := discovery.FilterVenues(catalog, req.Filters, req.UserLocation, now)
	sorted := discovery.SortVenues(filtered, req.SortBy, req.UserLocation)

	log.Printf("[VenueService] Search matched %d of %d venues (sort=%s)", len(sorted), len(catalog), req.SortBy)
	return &models.SearchResponse{
		Filters:      req.Filters,
		SortBy:       req.SortBy,
		UserLocation: req.UserLocation,
		Total:        len(sorted),
		Venues:       discovery.Annotate(sorted, req.UserLocation, now),
		BoundingBox:  models.NewBoundingBox(coordinatesOf(sorted)),
	}, nil
}

// Nearby uses the geo index to find venues within radiusKm, then orders
// them by sortBy.
func (vs *VenueService) Nearby(lat, lng, radiusKm float64, sortBy models.SortKey) ([]models.VenueResult, error) {
	nearby, err := vs.venueDao.GetNearbyVenues(lat, lng, radiusKm)
	if err != nil {
		return nil, err
	}
	here := &venue.Coordinates{Lat: lat, Lng: lng}
	sorted := discovery.SortVenues(nearby, sortBy, here)
	return discovery.Annotate(sorted, here, vs.now()), nil
}

// GetVenue reads the catalog first and falls back to the upstream API,
// caching what it finds.
func (vs *VenueService) GetVenue(venueID string) (*venue.Venue, error) {
	v, err := vs.venueDao.GetVenue(venueID)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, redis.ErrVenueNotFound) || vs.venuesApi == nil {
		return nil, err
	}

	upstream, apiErr := vs.venuesApi.GetVenue(venueID)
	if apiErr != nil || upstream == nil || upstream.VenueID != venueID {
		log.Printf("[VenueService] Venue %s not found upstream either: %v", venueID, apiErr)
		return nil, err
	}
	if err := vs.venueDao.UpsertVenue(*upstream); err != nil {
		log.Printf("[VenueService] Failed to cache venue %s: %v", venueID, err)
	}
	return upstream, nil
}

// AddFavorite marks a known venue as favourite.
func (vs *VenueService) AddFavorite(userID, venueID string) error {
	if _, err := vs.GetVenue(venueID); err != nil {
		return err
	}
	return vs.favorites.AddFavorite(userID, venueID)
}

func (vs *VenueService) RemoveFavorite(userID, venueID string) error {
	return vs.favorites.RemoveFavorite(userID, venueID)
}

// ToggleFavorite flips the favourite state and returns the new one.
func (vs *VenueService) ToggleFavorite(userID, venueID string) (bool, error) {
	isFavorite, err := vs.favorites.IsFavorite(userID, venueID)
	if err != nil {
		return false, err
	}
	if isFavorite {
		return false, vs.RemoveFavorite(userID, venueID)
	}
	if err := vs.AddFavorite(userID, venueID); err != nil {
		return false, err
	}
	return true, nil
}

// Favorites returns the user's favourite venues, skipping IDs that are no
// longer in the catalog.
func (vs *VenueService) Favorites(userID string) ([]venue.Venue, error) {
	ids, err := vs.favorites.ListFavorites(userID)
	if err != nil {
		return nil, err
	}
	out := make([]venue.Venue, 0, len(ids))
	for _, id := range ids {
		v, err := vs.venueDao.GetVenue(id)
		if err != nil {
			if errors.Is(err, redis.ErrVenueNotFound) {
				log.Printf("[VenueService] Favorite %s of %s no longer exists, skipping", id, userID)
				continue
			}
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func coordinatesOf(vs []venue.Venue) []venue.Coordinates {
	out := make([]venue.Coordinates, len(vs))
	for i, v := range vs {
		out[i] = v.Coordinates
	}
	return out
}

package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"venue-discovery/db"
	"venue-discovery/models/venue"
)

const VENUES_GEO_KEY_V1 = "venues_geo_v1"
const VENUES_GEO_PLACE_MEMBER_FORMAT_V1 = "venues_geo_place_v1:%s"

// ErrVenueNotFound is returned when no venue is stored under an ID.
var ErrVenueNotFound = errors.New("venue not found")

// RedisVenueDAO handles venue operations using Redis.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// UpsertVenue stores the venue as a geolocation with the venue's JSON data.
func (dao *RedisVenueDAO) UpsertVenue(v venue.Venue) error {
	ctx := dao.client.GetContext()
	venueKey := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, v.VenueID)
	return dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, venueKey, v.Coordinates.Lat, v.Coordinates.Lng, v)
}

// GetVenue loads a single venue by ID.
func (dao *RedisVenueDAO) GetVenue(venueID string) (*venue.Venue, error) {
	key := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, venueID)
	str, err := dao.client.Get(key)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
		}
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venue %s: %w", venueID, err)
	}
	var v venue.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
	}
	return &v, nil
}

// ListVenues returns every stored venue ordered by ID.
func (dao *RedisVenueDAO) ListVenues() ([]venue.Venue, error) {
	ids, err := dao.ListAllVenueIDs()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	venues := make([]venue.Venue, 0, len(ids))
	for _, id := range ids {
		v, err := dao.GetVenue(id)
		if err != nil {
			if errors.Is(err, ErrVenueNotFound) {
				log.Printf("[RedisVenueDAO] Venue %s vanished while listing, skipping", id)
				continue
			}
			return nil, err
		}
		venues = append(venues, *v)
	}
	return venues, nil
}

// GetNearbyVenues retrieves venues within radius kilometres, nearest first.
func (dao *RedisVenueDAO) GetNearbyVenues(lat, lon float64, radius float64) ([]venue.Venue, error) {
	venuesJSON, err := dao.client.GetLocationsWithinRadius(VENUES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venues: %w", err)
	}

	venues := make([]venue.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
		}
	}
	return venues, nil
}

// DeleteVenue removes the venue's JSON and its geo index entry.
func (dao *RedisVenueDAO) DeleteVenue(venueID string) error {
	key := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, venueID)
	if err := dao.client.GeoRem(VENUES_GEO_KEY_V1, key); err != nil {
		return fmt.Errorf("failed to remove venue %s from geo index: %w", venueID, err)
	}
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete venue %s: %w", venueID, err)
	}
	return nil
}

// ListAllVenueIDs returns all venue IDs present in the geo index.
func (dao *RedisVenueDAO) ListAllVenueIDs() ([]string, error) {
	pattern := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue geo keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, "")
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

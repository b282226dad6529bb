package db

import (
	"context"
	"errors"
)

// RedisClient defines the methods the DAOs need from Redis.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	// GetLocationsWithinRadius takes the radius in kilometres.
	GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
	// GeoRem removes member from the geo index at key.
	GeoRem(key, member string) error
	SAdd(key, member string) error
	SRem(key, member string) error
	SMembers(key string) ([]string, error)
	SIsMember(key, member string) (bool, error)
}

// IsNotFound reports whether err is a miss reported by Get.
func IsNotFound(err error) bool {
	var notFound *KeyNotFoundError
	return errors.As(err, &notFound)
}

// KeyNotFoundError is returned by Get when the key does not exist.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return "key not found: " + e.Key
}

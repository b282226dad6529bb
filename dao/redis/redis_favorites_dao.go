package redis

import (
	"fmt"
	"sort"

	"venue-discovery/db"
)

// FAVORITES_KEY_FORMAT holds one set of venue IDs per user.
const FAVORITES_KEY_FORMAT = "favorites_v1:%s"

// RedisFavoritesDAO persists per-user favourite venues as Redis sets.
type RedisFavoritesDAO struct {
	client db.RedisClient
}

func NewRedisFavoritesDAO(client db.RedisClient) *RedisFavoritesDAO {
	return &RedisFavoritesDAO{client: client}
}

func (dao *RedisFavoritesDAO) AddFavorite(userID, venueID string) error {
	if err := dao.client.SAdd(fmt.Sprintf(FAVORITES_KEY_FORMAT, userID), venueID); err != nil {
		return fmt.Errorf("failed to add favorite %s for %s: %w", venueID, userID, err)
	}
	return nil
}

func (dao *RedisFavoritesDAO) RemoveFavorite(userID, venueID string) error {
	if err := dao.client.SRem(fmt.Sprintf(FAVORITES_KEY_FORMAT, userID), venueID); err != nil {
		return fmt.Errorf("failed to remove favorite %s for %s: %w", venueID, userID, err)
	}
	return nil
}

func (dao *RedisFavoritesDAO) IsFavorite(userID, venueID string) (bool, error) {
	ok, err := dao.client.SIsMember(fmt.Sprintf(FAVORITES_KEY_FORMAT, userID), venueID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite %s for %s: %w", venueID, userID, err)
	}
	return ok, nil
}

// ListFavorites returns the user's favourite venue IDs in sorted order.
func (dao *RedisFavoritesDAO) ListFavorites(userID string) ([]string, error) {
	ids, err := dao.client.SMembers(fmt.Sprintf(FAVORITES_KEY_FORMAT, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites for %s: %w", userID, err)
	}
	sort.Strings(ids)
	return ids, nil
}

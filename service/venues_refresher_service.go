package services

import (
	"context"
	"log"
	"time"

	"venue-discovery/api/venues"
	"venue-discovery/dao/redis"
)

// VenuesRefresherService periodically copies the upstream catalog into Redis.
type VenuesRefresherService struct {
	venueDao  *redis.RedisVenueDAO
	venuesApi venues.VenuesAPI
}

// NewVenuesRefresherService constructs a new Refresher with dependencies.
func NewVenuesRefresherService(
	venueDao *redis.RedisVenueDAO,
	venuesApi venues.VenuesAPI,
) *VenuesRefresherService {
	return &VenuesRefresherService{
		venueDao:  venueDao,
		venuesApi: venuesApi,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
// The loop stops when ctx is cancelled.
func (vr *VenuesRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		log.Printf("[VenuesRefresherService] Not starting periodic job: invalid interval %v", interval)
		return
	}
	go vr.startPeriodicJob(ctx, interval)
}

func (vr *VenuesRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[VenuesRefresherService] Periodic job stopped.")
			return
		case <-ticker.C:
			log.Println("[VenuesRefresherService] Running periodic venues refresher job.")
			if n, err := vr.RefreshVenuesData(); err != nil {
				log.Printf("[VenuesRefresherService] RefreshVenuesData returned error: %v", err)
			} else {
				log.Printf("[VenuesRefresherService] RefreshVenuesData stored %d venues.", n)
			}
		}
	}
}

// RefreshVenuesData fetches the upstream list, drops invalid and duplicate
// records, upserts the rest and returns how many were stored. Venues no
// longer listed upstream are removed.
func (vr *VenuesRefresherService) RefreshVenuesData() (int, error) {
	list, err := vr.venuesApi.ListVenues()
	if err != nil {
		return 0, err
	}
	log.Printf("[VenuesRefresherService] Fetched %d venues", len(list))

	seenIDs := make(map[string]struct{})
	stored := 0
	for _, v := range list {
		if v.VenueID == "" {
			log.Printf("[VenuesRefresherService] Skipping venue without ID name=%q", v.VenueName)
			continue
		}
		if !v.Category.Valid() {
			log.Printf("[VenuesRefresherService] Skipping venue %s with unknown category %q", v.VenueID, v.Category)
			continue
		}
		if _, dup := seenIDs[v.VenueID]; dup {
			log.Printf("[VenuesRefresherService] Skipping duplicate venue ID=%s", v.VenueID)
			continue
		}
		seenIDs[v.VenueID] = struct{}{}

		if err := vr.venueDao.UpsertVenue(v); err != nil {
			log.Printf("[VenuesRefresherService] Upsert failed for %s: %v", v.ToString(), err)
			continue
		}
		stored++
	}

	// An empty upstream list is treated as an outage and removes nothing.
	if len(seenIDs) > 0 {
		vr.removeStale(seenIDs)
	}
	return stored, nil
}

func (vr *VenuesRefresherService) removeStale(seenIDs map[string]struct{}) {
	storedIDs, err := vr.venueDao.ListAllVenueIDs()
	if err != nil {
		log.Printf("[VenuesRefresherService] Could not list stored venues: %v", err)
		return
	}
	for _, id := range storedIDs {
		if _, ok := seenIDs[id]; ok {
			continue
		}
		if err := vr.venueDao.DeleteVenue(id); err != nil {
			log.Printf("[VenuesRefresherService] Failed to remove stale venue %s: %v", id, err)
			continue
		}
		log.Printf("[VenuesRefresherService] Removed stale venue %s", id)
	}
}

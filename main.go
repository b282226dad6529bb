package main

import (
	"context"
	"log"

	"venue-discovery/config"
	"venue-discovery/di"
	"venue-discovery/util"
)

func main() {
	cfg := config.Load()
	container := di.NewContainer(cfg)
	defer container.Close()

	log.Println("[MAIN] Refreshing venues catalog")
	if n, err := container.VenuesRefresherService.RefreshVenuesData(); err != nil {
		log.Printf("[MAIN] Initial refresh failed: %v", err)
	} else {
		log.Printf("[MAIN] Loaded %d venues", n)
	}
	if !cfg.IsProd() {
		if catalog, err := container.RedisVenueDao.ListVenues(); err == nil {
			util.PrintVenuesPartially(catalog, 5)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	log.Printf("[MAIN] Starting periodic refresh every %v", cfg.VenuesRefreshPeriod)
	container.VenuesRefresherService.StartPeriodicJob(ctx, cfg.VenuesRefreshPeriod)

	container.VenueDiscoveryHttpServer.Start()
}

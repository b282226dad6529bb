package di

import (
	"context"
	"fmt"
	"io"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"venue-discovery/api"
	"venue-discovery/api/venues"
	"venue-discovery/config"
	"venue-discovery/dao/redis"
	"venue-discovery/dao/sqlite"
	"venue-discovery/db"
	"venue-discovery/server"
	"venue-discovery/server/handlers"
	services "venue-discovery/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                   config.Config
	RedisClient              db.RedisClient
	RedisVenueDao            *redis.RedisVenueDAO
	FavoritesStore           services.FavoritesStore
	VenuesAPI                venues.VenuesAPI
	VenueService             *services.VenueService
	VenuesRefresherService   *services.VenuesRefresherService
	VenueHandler             *handlers.VenueHandler
	MuxRouter                *mux.Router
	Router                   *server.Router
	VenueDiscoveryHttpServer *server.VenueDiscoveryHttpServer

	closers []io.Closer
}

// NewContainer connects to Redis and wires up all dependencies.
func NewContainer(cfg config.Config) *Container {
	log.Printf("initializing container - env: %s", cfg.Env)

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	redisClient := db.NewGeoRedisClient(context.Background(), redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	c, err := NewContainerWithRedis(cfg, redisClient)
	if err != nil {
		panic(err.Error())
	}
	c.closers = append(c.closers, redisInternalClient)
	return c
}

// NewContainerWithRedis wires everything on top of an existing Redis client.
func NewContainerWithRedis(cfg config.Config, redisClient db.RedisClient) (*Container, error) {
	c := &Container{Config: cfg, RedisClient: redisClient}

	c.RedisVenueDao = redis.NewRedisVenueDAO(redisClient)

	switch cfg.FavoritesBackend {
	case config.FAVORITES_BACKEND_SQLITE:
		store, err := sqlite.OpenSQLiteFavorites(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open favorites database: %w", err)
		}
		log.Printf("Using sqlite favorites store at %s", cfg.SQLitePath)
		c.FavoritesStore = store
		c.closers = append(c.closers, store)
	case config.FAVORITES_BACKEND_REDIS, "":
		log.Printf("Using redis favorites store")
		c.FavoritesStore = redis.NewRedisFavoritesDAO(redisClient)
	default:
		return nil, fmt.Errorf("unknown favorites backend %q", cfg.FavoritesBackend)
	}

	if cfg.IsProd() {
		log.Printf("Using prod venues api at %s", cfg.VenuesAPIBaseURL)
		client := venues.NewVenuesApiClient(api.NewHTTPClient(cfg.VenuesAPIBaseURL))
		client.SetAPIKey(cfg.VenuesAPIKey)
		c.VenuesAPI = client
	} else {
		path := config.GetResourcePath(config.VENUES_RESOURCE)
		log.Printf("Using mock venues api from %s", path)
		c.VenuesAPI = venues.NewVenuesApiClientMock(path)
	}

	c.VenueService = services.NewVenueService(c.RedisVenueDao, c.VenuesAPI, c.FavoritesStore, nil)
	c.VenuesRefresherService = services.NewVenuesRefresherService(c.RedisVenueDao, c.VenuesAPI)

	c.VenueHandler = handlers.NewVenueHandler(c.VenueService)
	c.MuxRouter = mux.NewRouter()
	c.Router = server.NewRouter(c.VenueHandler, c.MuxRouter)

	// request-id → logging → CORS → rate limit → router
	c.VenueDiscoveryHttpServer = server.NewVenueDiscoveryHttpServer(
		c.Router,
		c.MuxRouter,
		cfg.HTTPAddress,
		cfg.ShutdownTimeout,
		server.RequestID,
		server.Logging,
		server.CORS(cfg.CORSAllowedOrigins),
		server.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Limit,
	)

	return c, nil
}

// Close releases the connections opened by the container.
func (c *Container) Close() {
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			log.Printf("error closing resource: %v", err)
		}
	}
}

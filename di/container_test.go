package di

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-discovery/config"
	"venue-discovery/dao/redis"
	"venue-discovery/dao/sqlite"
	"venue-discovery/db"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	t.Setenv("PROJECT_ROOT", "..")
	return config.Config{
		Env:                "dev",
		HTTPAddress:        ":0",
		ShutdownTimeout:    time.Second,
		FavoritesBackend:   config.FAVORITES_BACKEND_REDIS,
		RateLimitRPS:       100,
		RateLimitBurst:     100,
		CORSAllowedOrigins: []string{"*"},
	}
}

func TestNewContainerWithRedis_MockCatalog(t *testing.T) {
	c, err := NewContainerWithRedis(testConfig(t), db.NewMockRedisClient(context.Background()))
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &redis.RedisFavoritesDAO{}, c.FavoritesStore)

	n, err := c.VenuesRefresherService.RefreshVenuesData()
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	handler := c.VenueDiscoveryHttpServer.Handler()
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/venues/search?category=cafe", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"category":"cafe"`)
	assert.NotContains(t, rr.Body.String(), `"category":"restaurant"`)
}

func TestNewContainerWithRedis_SQLiteFavorites(t *testing.T) {
	cfg := testConfig(t)
	cfg.FavoritesBackend = config.FAVORITES_BACKEND_SQLITE
	cfg.SQLitePath = filepath.Join(t.TempDir(), "favorites.db")

	c, err := NewContainerWithRedis(cfg, db.NewMockRedisClient(context.Background()))
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &sqlite.SQLiteFavoritesDAO{}, c.FavoritesStore)
}

func TestNewContainerWithRedis_UnknownFavoritesBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.FavoritesBackend = "postgres"

	_, err := NewContainerWithRedis(cfg, db.NewMockRedisClient(context.Background()))

	assert.Error(t, err)
}

package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// HTTP server
const HTTP_ADDRESS = ":8080"
const HTTP_SHUTDOWN_TIMEOUT_SECONDS = 5

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Venues refresher config
const VENUES_REFRESHER_SCHEDULE_MINUTES = 60

// Upstream venues API
const VENUES_API_BASE_URL = "http://localhost:9090/api/v1"

// Favourites storage
const FAVORITES_BACKEND_REDIS = "redis"
const FAVORITES_BACKEND_SQLITE = "sqlite"
const SQLITE_FAVORITES_PATH = "favorites.db"

// Per-client rate limit
const RATE_LIMIT_RPS = 10
const RATE_LIMIT_BURST = 20

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_RESOURCE = "venues.json"

// Config is the runtime configuration, built from the defaults above and
// overridden by environment variables (optionally from a .env file).
type Config struct {
	Env                 string
	HTTPAddress         string
	ShutdownTimeout     time.Duration
	RedisAddress        string
	RedisPassword       string
	RedisDB             int
	VenuesAPIBaseURL    string
	VenuesAPIKey        string
	VenuesRefreshPeriod time.Duration
	FavoritesBackend    string
	SQLitePath          string
	RateLimitRPS        float64
	RateLimitBurst      int
	CORSAllowedOrigins  []string
}

// Load reads .env if present and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file found; using system environment")
	}

	return Config{
		Env:                 getEnv("ENV", "dev"),
		HTTPAddress:         getEnv("HTTP_ADDRESS", HTTP_ADDRESS),
		ShutdownTimeout:     HTTP_SHUTDOWN_TIMEOUT_SECONDS * time.Second,
		RedisAddress:        getEnv("REDIS_ADDRESS", REDIS_DB_ADDRESS),
		RedisPassword:       getEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:             getEnvInt("REDIS_DB", REDIS_DB),
		VenuesAPIBaseURL:    getEnv("VENUES_API_BASE_URL", VENUES_API_BASE_URL),
		VenuesAPIKey:        getEnv("VENUES_API_KEY", ""),
		VenuesRefreshPeriod: time.Duration(getEnvPositiveInt("VENUES_REFRESH_MINUTES", VENUES_REFRESHER_SCHEDULE_MINUTES)) * time.Minute,
		FavoritesBackend:    strings.ToLower(getEnv("FAVORITES_BACKEND", FAVORITES_BACKEND_REDIS)),
		SQLitePath:          getEnv("SQLITE_PATH", SQLITE_FAVORITES_PATH),
		RateLimitRPS:        getEnvFloat("RATE_LIMIT_RPS", RATE_LIMIT_RPS),
		RateLimitBurst:      getEnvInt("RATE_LIMIT_BURST", RATE_LIMIT_BURST),
		CORSAllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// IsProd reports whether the upstream venues API should be called for real.
func (c Config) IsProd() bool {
	return c.Env == "prod"
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[Config] Ignoring %s=%q: %v", key, v, err)
		return def
	}
	return i
}

// getEnvPositiveInt is getEnvInt restricted to values above zero.
func getEnvPositiveInt(key string, def int) int {
	i := getEnvInt(key, def)
	if i <= 0 {
		log.Printf("[Config] Ignoring %s=%d: must be positive", key, i)
		return def
	}
	return i
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[Config] Ignoring %s=%q: %v", key, v, err)
		return def
	}
	return f
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

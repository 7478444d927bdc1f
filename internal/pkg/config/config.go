package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream API base URL)
// - default: Values common across all environments (timeouts, cache sizing)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	CORS     CORSConfig
	Log      LogConfig
	Cache    CacheConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// UpstreamConfig points at the external rentals API that owns
// /api/properties/{id} and /api/bookings.
type UpstreamConfig struct {
	BaseURL string        `envconfig:"UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type CacheConfig struct {
	PropertyTTL time.Duration `envconfig:"CACHE_PROPERTY_TTL" default:"30s"`
	MaxEntries  int64         `envconfig:"CACHE_MAX_ENTRIES" default:"1024"`
}

// SecurityConfig gates form CSRF protection. Protection is disabled when the
// key is empty so local JSON-only deployments keep working.
type SecurityConfig struct {
	CSRFKey string `envconfig:"CSRF_KEY" default:""`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Upstream: UpstreamConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 2 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Cache: CacheConfig{
			PropertyTTL: time.Second,
			MaxEntries:  64,
		},
	}
}

// Package config maps environment variables into the server's runtime
// configuration, with defaults mirroring Scryfall's published API
// guidance.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the search server.
type Config struct {
	// Server settings
	Port           string `env:"PORT"            envDefault:"8080"`
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS"`

	// Scryfall API
	ScryfallBaseURL  string        `env:"SCRYFALL_BASE_URL"          envDefault:"https://api.scryfall.com"`
	ScryfallUA       string        `env:"SCRYFALL_USER_AGENT"`
	RateInterval     time.Duration `env:"SCRYFALL_RATE_INTERVAL"     envDefault:"100ms"`
	RequestTimeout   time.Duration `env:"SCRYFALL_TIMEOUT"           envDefault:"10s"`
	MaxRetries       int           `env:"SCRYFALL_MAX_RETRIES"       envDefault:"3"`
	FailureThreshold int           `env:"CIRCUIT_BREAKER_THRESHOLD"  envDefault:"5"`
	RecoveryTimeout  time.Duration `env:"CIRCUIT_BREAKER_RECOVERY"   envDefault:"60s"`

	// Cache
	CacheEnabled bool          `env:"CACHE_ENABLED"     envDefault:"true"`
	CacheBackend string        `env:"CACHE_BACKEND"     envDefault:"memory"`
	CacheMaxSize int           `env:"CACHE_MAX_SIZE"    envDefault:"1000"`
	RedisURL     string        `env:"CACHE_REDIS_URL"`
	TTLSearch    time.Duration `env:"CACHE_TTL_SEARCH"  envDefault:"30m"`
	TTLCard      time.Duration `env:"CACHE_TTL_CARD"    envDefault:"24h"`
	TTLPrice     time.Duration `env:"CACHE_TTL_PRICE"   envDefault:"6h"`
	TTLSet       time.Duration `env:"CACHE_TTL_SET"     envDefault:"168h"`
	TTLDefault   time.Duration `env:"CACHE_TTL_DEFAULT" envDefault:"1h"`

	// Internationalization
	DefaultLocale  string `env:"DEFAULT_LOCALE"  envDefault:"en"`
	FallbackLocale string `env:"FALLBACK_LOCALE" envDefault:"en"`

	// Storage
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./data/search.db"`

	// Background workers
	SetRefreshInterval time.Duration `env:"SET_REFRESH_INTERVAL" envDefault:"24h"`
}

// Load parses environment variables into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.CacheBackend {
	case "memory":
	case "redis", "composite":
		if c.RedisURL == "" {
			return fmt.Errorf("config: cache backend %q requires CACHE_REDIS_URL", c.CacheBackend)
		}
	default:
		return fmt.Errorf("config: unknown cache backend %q", c.CacheBackend)
	}
	if len(c.DefaultLocale) != 2 {
		return fmt.Errorf("config: DEFAULT_LOCALE must be an ISO 639-1 code, got %q", c.DefaultLocale)
	}
	if len(c.FallbackLocale) != 2 {
		return fmt.Errorf("config: FALLBACK_LOCALE must be an ISO 639-1 code, got %q", c.FallbackLocale)
	}
	return nil
}

// Origins returns the configured CORS origins, empty when unset.
func (c *Config) Origins() []string {
	if c.AllowedOrigins == "" {
		return nil
	}
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the configuration settings for the lookup tool.
//
// Fields:
// - Env: The current environment (local, development, production).
// - HTTPPort: The port for the lookup HTTP server (serve mode).
// - ProviderType: The type of geocoding provider to use (nominatim, google).
// - APIKey: The API key for the geocoding provider (required for Google).
// - QueryTimeout: The per-attempt timeout for feature layer queries.
type Config struct {
	Env          string        // Env is the current environment: local, development, production.
	HTTPPort     int           // HTTPPort is the lookup HTTP server port.
	ProviderType string        // ProviderType specifies which geocoding provider to use.
	APIKey       string        // APIKey is the geocoding provider API key.
	QueryTimeout time.Duration // QueryTimeout bounds each feature layer request.
}

// Load reads the configuration from ZONELOOKUP_* environment variables,
// applying defaults for everything except the provider API key.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ZONELOOKUP")
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("http_port", 8080)
	v.SetDefault("provider_type", "nominatim")
	v.SetDefault("query_timeout", "5s")

	cfg := &Config{
		Env:          v.GetString("env"),
		HTTPPort:     v.GetInt("http_port"),
		ProviderType: v.GetString("provider_type"),
		APIKey:       v.GetString("provider_key"),
		QueryTimeout: v.GetDuration("query_timeout"),
	}

	if cfg.HTTPPort <= 0 {
		return nil, fmt.Errorf("invalid http port: %d", cfg.HTTPPort)
	}
	if cfg.QueryTimeout <= 0 {
		return nil, fmt.Errorf("invalid query timeout: %s", v.GetString("query_timeout"))
	}

	return cfg, nil
}

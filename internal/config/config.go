package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Routing provider identifiers accepted in SUNSEAT_ROUTING_PROVIDER.
const (
	ProviderORS    = "ors"
	ProviderGoogle = "google"
)

// ServiceConfig holds all configuration for the schedule service.
type ServiceConfig struct {
	Port   string
	AppEnv string

	// RoutingProvider selects the lookup backend: "ors" (Nominatim +
	// OpenRouteService) or "google" (Google Maps).
	RoutingProvider string

	ORSAPIKey          string
	ORSBaseURL         string
	NominatimBaseURL   string
	NominatimUserAgent string
	GoogleMapsAPIKey   string

	// UpstreamTimeout bounds each geocoding/routing HTTP call.
	UpstreamTimeout time.Duration
}

// Load reads configuration from the environment (and an optional .env file),
// applying defaults and validating provider credentials. Keys are prefixed
// with SUNSEAT_, e.g. SUNSEAT_ORS_API_KEY.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("SUNSEAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", ":8080")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("ROUTING_PROVIDER", ProviderORS)
	v.SetDefault("ORS_BASE_URL", "https://api.openrouteservice.org")
	v.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("NOMINATIM_USER_AGENT", "sunseat")
	v.SetDefault("UPSTREAM_TIMEOUT", "10s")

	// A local .env file is optional and uses unprefixed keys
	// (e.g. ORS_API_KEY); the environment always wins.
	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}

	cfg := &ServiceConfig{
		Port:               v.GetString("SERVICE_PORT"),
		AppEnv:             v.GetString("APP_ENV"),
		RoutingProvider:    strings.ToLower(v.GetString("ROUTING_PROVIDER")),
		ORSAPIKey:          v.GetString("ORS_API_KEY"),
		ORSBaseURL:         v.GetString("ORS_BASE_URL"),
		NominatimBaseURL:   v.GetString("NOMINATIM_BASE_URL"),
		NominatimUserAgent: v.GetString("NOMINATIM_USER_AGENT"),
		GoogleMapsAPIKey:   v.GetString("GOOGLE_MAPS_API_KEY"),
		UpstreamTimeout:    v.GetDuration("UPSTREAM_TIMEOUT"),
	}

	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}

	switch cfg.RoutingProvider {
	case ProviderORS:
		if cfg.ORSAPIKey == "" {
			return nil, fmt.Errorf("SUNSEAT_ORS_API_KEY is required with the %s provider", ProviderORS)
		}
	case ProviderGoogle:
		if cfg.GoogleMapsAPIKey == "" {
			return nil, fmt.Errorf("SUNSEAT_GOOGLE_MAPS_API_KEY is required with the %s provider", ProviderGoogle)
		}
	default:
		return nil, fmt.Errorf("unknown routing provider: %s", cfg.RoutingProvider)
	}

	return cfg, nil
}

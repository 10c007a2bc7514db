package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// BackendBaseURL is the marketplace backend every data request is
	// forwarded to.
	BackendBaseURL string

	// LocalStorePath is the BoltDB file backing the debounced store.
	LocalStorePath string

	// RateCacheDuration is how long a rate snapshot stays fresh.
	RateCacheDuration time.Duration

	// RateRefreshInterval drives the proactive background refresh.
	RateRefreshInterval time.Duration

	// StreamPingInterval is the keep-alive cadence on order-update streams.
	StreamPingInterval time.Duration

	// WebhookRateLimit is a ulule/limiter formatted rate, e.g. "120-M".
	WebhookRateLimit string

	PosthogAPIKey      string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:4000")
	viper.SetDefault("LOCAL_STORE_PATH", "sokoni_gateway.db")
	viper.SetDefault("RATE_CACHE_DURATION", "1h")
	viper.SetDefault("RATE_REFRESH_INTERVAL", "30m")
	viper.SetDefault("STREAM_PING_INTERVAL", "30s")
	viper.SetDefault("WEBHOOK_RATE_LIMIT", "120-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.BackendBaseURL = viper.GetString("BACKEND_BASE_URL")
	if cfg.BackendBaseURL == "" {
		log.Println("Warning: BACKEND_BASE_URL environment variable not set.")
	}

	cfg.LocalStorePath = viper.GetString("LOCAL_STORE_PATH")

	cacheDurationStr := viper.GetString("RATE_CACHE_DURATION")
	cacheDuration, err := time.ParseDuration(cacheDurationStr)
	if err != nil {
		cacheDuration = time.Hour
		log.Printf("Warning: Invalid value for RATE_CACHE_DURATION ('%s'). Defaulting to %s.\n", cacheDurationStr, cacheDuration)
	}
	cfg.RateCacheDuration = cacheDuration

	refreshIntervalStr := viper.GetString("RATE_REFRESH_INTERVAL")
	refreshInterval, err := time.ParseDuration(refreshIntervalStr)
	if err != nil {
		refreshInterval = 30 * time.Minute
		log.Printf("Warning: Invalid value for RATE_REFRESH_INTERVAL ('%s'). Defaulting to %s.\n", refreshIntervalStr, refreshInterval)
	}
	cfg.RateRefreshInterval = refreshInterval

	pingIntervalStr := viper.GetString("STREAM_PING_INTERVAL")
	pingInterval, err := time.ParseDuration(pingIntervalStr)
	if err != nil {
		pingInterval = 30 * time.Second
		log.Printf("Warning: Invalid value for STREAM_PING_INTERVAL ('%s'). Defaulting to %s.\n", pingIntervalStr, pingInterval)
	}
	cfg.StreamPingInterval = pingInterval

	cfg.WebhookRateLimit = viper.GetString("WEBHOOK_RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

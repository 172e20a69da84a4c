// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/statsctl.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Season range — the data source's supported historical window
// --------------------------------------------------------------------------

// MinYear is the earliest season page the source serves with a per-game
// table we can parse.
const MinYear = 1950

// CurrentSeason returns the season year for "now": an NBA season is labeled
// by the year it ends in, so from October on the label rolls forward.
func CurrentSeason(now time.Time) int {
	year := now.Year()
	if now.Month() >= time.October {
		return year + 1
	}
	return year
}

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (inbound)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Scraper (outbound)
	ScrapeBaseURL    string
	ScrapeUserAgent  string
	ScrapeTimeout    time.Duration
	ScrapePerMinute  int
	MinYear, MaxYear int

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	maxYear := envInt("STATS_MAX_YEAR", CurrentSeason(time.Now()))

	return &Config{
		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		ScrapeBaseURL:   envOr("SCRAPE_BASE_URL", "https://www.basketball-reference.com"),
		ScrapeUserAgent: envOr("SCRAPE_USER_AGENT", "statline/1.0 (+https://github.com/courtside/statline)"),
		ScrapeTimeout:   time.Duration(envInt("SCRAPE_TIMEOUT_SECONDS", 20)) * time.Second,
		ScrapePerMinute: envInt("SCRAPE_REQUESTS_PER_MINUTE", 12),
		MinYear:         envInt("STATS_MIN_YEAR", MinYear),
		MaxYear:         maxYear,

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

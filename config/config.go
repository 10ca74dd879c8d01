package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lukman83/jumia-reseller/internal/pricing"
	"github.com/spf13/cast"
)

// Config holds all application configuration.
type Config struct {
	// General
	Platform       string
	Origin         string
	CategoriesPath string

	// Pricing
	ProfitMarginPercent float64

	// Fetching
	FetchMode     string // "static" or "headless"
	BrowserURL    string // DevTools URL of an existing browser for headless mode
	RespectRobots bool
	DelayProfile  string // "off", "aggressive", "normal", "cautious"
	RatePerSecond float64
	RateBurst     int
	ProxyFile     string

	// HTTP server
	HTTPPort string
	APIKey   string

	// Logging
	LogLevel  string
	LogFormat string // "console" or "json"
	LogFile   string
}

const (
	FetchStatic   = "static"
	FetchHeadless = "headless"
)

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Platform:            "jumia",
		Origin:              "https://www.jumia.com.ng",
		CategoriesPath:      "data/categories.json",
		ProfitMarginPercent: pricing.DefaultPercent,
		FetchMode:           FetchStatic,
		RespectRobots:       false,
		DelayProfile:        "off",
		RatePerSecond:       2.0,
		RateBurst:           3,
		HTTPPort:            "5000",
		LogLevel:            "info",
		LogFormat:           "console",
	}
}

// LoadFromEnv loads .env file (if present) then overrides config from environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()
	c.apply(os.Getenv)
}

// apply overrides fields from lookup. Numeric values that do not parse keep
// their current setting, except the profit margin which falls back to the
// default whenever it is unset, invalid or zero.
func (c *Config) apply(lookup func(string) string) {
	if v := lookup("JUMIA_PLATFORM"); v != "" {
		c.Platform = v
	}
	if v := lookup("JUMIA_BASE_URL"); v != "" {
		c.Origin = strings.TrimSuffix(v, "/")
	}
	if v := lookup("JUMIA_CATEGORIES_FILE"); v != "" {
		c.CategoriesPath = v
	}

	c.ProfitMarginPercent = pricing.DefaultPercent
	if f, err := cast.ToFloat64E(strings.TrimSpace(lookup("PROFIT_MARGIN_PERCENTAGE"))); err == nil && f != 0 {
		c.ProfitMarginPercent = f
	}

	if v := lookup("JUMIA_FETCH_MODE"); v != "" {
		c.FetchMode = strings.ToLower(v)
	}
	if v := lookup("JUMIA_BROWSER_URL"); v != "" {
		c.BrowserURL = v
	}
	if v := lookup("JUMIA_RESPECT_ROBOTS"); v != "" {
		if b, err := cast.ToBoolE(v); err == nil {
			c.RespectRobots = b
		}
	}
	if v := lookup("JUMIA_DELAY_PROFILE"); v != "" {
		c.DelayProfile = v
	}
	if v := lookup("JUMIA_RATE_PER_SECOND"); v != "" {
		if f, err := cast.ToFloat64E(v); err == nil {
			c.RatePerSecond = f
		}
	}
	if v := lookup("JUMIA_RATE_BURST"); v != "" {
		if n, err := cast.ToIntE(v); err == nil {
			c.RateBurst = n
		}
	}
	if v := lookup("JUMIA_PROXIES"); v != "" {
		c.ProxyFile = v
	}
	if v := lookup("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := lookup("JUMIA_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := lookup("JUMIA_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := lookup("JUMIA_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := lookup("JUMIA_LOG_FILE"); v != "" {
		c.LogFile = v
	}
}

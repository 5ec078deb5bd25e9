package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/venuepulse/gigcal/internal/domain"
)

// Load loads configuration from multiple sources:
// 1. Config file (config.yaml, optional)
// 2. Environment variables (GIGCAL_*)
// 3. Bound CLI flags
func Load() (*domain.Config, error) {
	cfg := &domain.Config{
		DataDir:          viper.GetString("data_dir"),
		CacheDir:         viper.GetString("cache_dir"),
		CacheExpiryHours: viper.GetInt("cache_expiry_hours"),
		VenuesFile:       viper.GetString("venues_file"),
		UserAgent:        viper.GetString("user_agent"),
		FetchTimeout:     viper.GetDuration("fetch_timeout"),
		Debug:            viper.GetBool("debug"),
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = "./page_cache"
	}
	if cfg.CacheExpiryHours == 0 {
		cfg.CacheExpiryHours = 6
	}
	if cfg.VenuesFile == "" {
		cfg.VenuesFile = "venues.yaml"
	}
	if cfg.UserAgent == "" {
		// Venue sites reject default library agents, so ship a browser-like one.
		cfg.UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 10 * time.Second
	}

	if cfg.CacheExpiryHours < 0 {
		return nil, fmt.Errorf("cache_expiry_hours must not be negative, got %d", cfg.CacheExpiryHours)
	}
	if cfg.FetchTimeout < 0 {
		return nil, fmt.Errorf("fetch_timeout must not be negative, got %s", cfg.FetchTimeout)
	}

	return cfg, nil
}

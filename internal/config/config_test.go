package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DataDir != "." {
		t.Errorf("data_dir = %s, want .", cfg.DataDir)
	}
	if cfg.CacheDir != "./page_cache" {
		t.Errorf("cache_dir = %s, want ./page_cache", cfg.CacheDir)
	}
	if cfg.CacheExpiryHours != 6 {
		t.Errorf("cache_expiry_hours = %d, want 6", cfg.CacheExpiryHours)
	}
	if cfg.CacheExpiry() != 6*time.Hour {
		t.Errorf("CacheExpiry() = %s, want 6h", cfg.CacheExpiry())
	}
	if cfg.VenuesFile != "venues.yaml" {
		t.Errorf("venues_file = %s, want venues.yaml", cfg.VenuesFile)
	}
	if cfg.UserAgent == "" {
		t.Error("user_agent default missing")
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("fetch_timeout = %s, want 10s", cfg.FetchTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("data_dir", "/var/lib/gigcal")
	viper.Set("cache_expiry_hours", 24)
	viper.Set("fetch_timeout", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DataDir != "/var/lib/gigcal" {
		t.Errorf("data_dir = %s, want /var/lib/gigcal", cfg.DataDir)
	}
	if cfg.CacheExpiry() != 24*time.Hour {
		t.Errorf("CacheExpiry() = %s, want 24h", cfg.CacheExpiry())
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("fetch_timeout = %s, want 30s", cfg.FetchTimeout)
	}
}

func TestLoadRejectsNegativeValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{name: "negative cache expiry", key: "cache_expiry_hours", value: -1},
		{name: "negative fetch timeout", key: "fetch_timeout", value: "-5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			viper.Set(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Error("Load() did not fail")
			}
		})
	}
}

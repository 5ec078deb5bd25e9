package domain

import "time"

type Config struct {
	DataDir          string        `mapstructure:"data_dir"`
	CacheDir         string        `mapstructure:"cache_dir"`
	CacheExpiryHours int           `mapstructure:"cache_expiry_hours"`
	VenuesFile       string        `mapstructure:"venues_file"`
	UserAgent        string        `mapstructure:"user_agent"`
	FetchTimeout     time.Duration `mapstructure:"fetch_timeout"`
	Debug            bool          `mapstructure:"debug"`
}

// CacheExpiry returns the configured cache lifetime as a duration.
func (c *Config) CacheExpiry() time.Duration {
	return time.Duration(c.CacheExpiryHours) * time.Hour
}

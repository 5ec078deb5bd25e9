package domain

import (
	"strings"
	"time"
)

// Venue is a source site with its own calendar page and extraction rules.
// Venues come from static configuration at startup; only last_scraped and
// the starred flag change during normal operation.
type Venue struct {
	ID           int64      `yaml:"-"`
	Name         string     `yaml:"name"`
	BaseURL      string     `yaml:"base_url"`
	CalendarPath string     `yaml:"calendar_path"`
	Scraper      string     `yaml:"scraper"`
	Enabled      *bool      `yaml:"enabled,omitempty"`
	Starred      bool       `yaml:"-"`
	LastScraped  *time.Time `yaml:"-"`
}

// CalendarURL joins the base URL and calendar path.
func (v Venue) CalendarURL() string {
	return strings.TrimRight(v.BaseURL, "/") + "/" + strings.TrimLeft(v.CalendarPath, "/")
}

// IsEnabled reports whether the venue should be scraped. Venues without an
// explicit enabled flag are considered enabled.
func (v Venue) IsEnabled() bool {
	return v.Enabled == nil || *v.Enabled
}

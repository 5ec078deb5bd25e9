package domain

import (
	"fmt"
	"strings"
	"time"
)

// Event is a single show on a venue's calendar. The tuple
// (venue, date, joined artists, url) uniquely identifies an event; date,
// time, artists and url are immutable once stored since the unique key
// depends on them. Only the pinned flag and cost may be amended later.
type Event struct {
	ID        int64
	VenueID   int64
	Venue     string
	Date      time.Time
	Time      *WallTime
	Artists   []string
	URL       string
	Cost      string
	Pinned    bool
	CreatedAt time.Time
}

// ArtistsDisplay joins the ordered artist list with the separator used for
// both display and the storage uniqueness key.
func (e Event) ArtistsDisplay() string {
	return strings.Join(e.Artists, ", ")
}

// SplitArtists is the inverse of ArtistsDisplay.
func SplitArtists(display string) []string {
	if display == "" {
		return nil
	}
	parts := strings.Split(display, ", ")
	artists := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			artists = append(artists, p)
		}
	}
	return artists
}

// WallTime is a wall-clock time of day. Listings that omit a start time are
// represented with a nil *WallTime rather than a zero value.
type WallTime struct {
	Hour   int
	Minute int
}

func (t WallTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseWallTime parses the "HH:MM" form produced by WallTime.String.
func ParseWallTime(s string) (*WallTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return nil, fmt.Errorf("invalid wall time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return nil, fmt.Errorf("wall time %q out of range", s)
	}
	return &WallTime{Hour: h, Minute: m}, nil
}

// DateOnly normalizes a timestamp to its calendar date at midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RawEvent holds the unparsed field values extracted from one listing
// fragment before normalization.
type RawEvent struct {
	DateText   string
	TimeText   string
	ArtistText string
	URL        string
	CostText   string
}

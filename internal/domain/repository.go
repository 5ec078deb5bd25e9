package domain

import (
	"context"
	"time"
)

// VenueRepo defines venue persistence operations.
type VenueRepo interface {
	Upsert(ctx context.Context, venue *Venue) (int64, error)
	GetByName(ctx context.Context, name string) (*Venue, error)
	SetStarred(ctx context.Context, name string, starred bool) error
	TouchLastScraped(ctx context.Context, venueID int64, at time.Time) error
}

// EventFilter narrows GetEvents results. The zero value returns all stored
// events.
type EventFilter struct {
	// FutureOnly keeps events dated today or later.
	FutureOnly bool
	// From/Until bound the date range; Until is exclusive.
	From  *time.Time
	Until *time.Time
	// Venue restricts to a single venue name.
	Venue string
	// StarredOnly keeps events from starred venues.
	StarredOnly bool
}

// EventRepo defines event persistence with dedup semantics: saving a batch
// twice inserts each event once.
type EventRepo interface {
	SaveEvents(ctx context.Context, events []Event) (int, error)
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)
	SetPinned(ctx context.Context, eventID int64, pinned bool) error
	SetCost(ctx context.Context, eventID int64, cost string) error
}

// VenueConfigRepo loads static venue configuration.
type VenueConfigRepo interface {
	Load(ctx context.Context, path string) ([]Venue, error)
}

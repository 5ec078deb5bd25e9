package database

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/venuepulse/gigcal/internal/domain"
)

func setupDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDB() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() failed: %v", err)
		}
	})
	return db
}

func setupVenue(t *testing.T, db *DB, name string) int64 {
	t.Helper()

	venueRepo := NewVenueRepo(zerolog.Nop(), db)
	id, err := venueRepo.Upsert(context.Background(), &domain.Venue{
		Name:         name,
		BaseURL:      "https://example.com",
		CalendarPath: "/calendar/",
		Scraper:      "brickmortar",
	})
	if err != nil {
		t.Fatalf("Upsert() failed: %v", err)
	}
	return id
}

func testEvent(venueID int64, date string, artists ...string) domain.Event {
	d, _ := time.Parse("2006-01-02", date)
	return domain.Event{
		VenueID:   venueID,
		Date:      d,
		Time:      &domain.WallTime{Hour: 20},
		Artists:   artists,
		URL:       "https://example.com/event/" + artists[0],
		CreatedAt: time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveEventsIdempotent(t *testing.T) {
	db := setupDB(t)
	venueID := setupVenue(t, db, "Test Hall")
	repo := NewEventRepo(zerolog.Nop(), db)

	batch := []domain.Event{
		testEvent(venueID, "2025-08-20", "FIRST ACT"),
		testEvent(venueID, "2025-08-21", "SECOND ACT", "OPENER"),
	}

	newCount, err := repo.SaveEvents(context.Background(), batch)
	if err != nil {
		t.Fatalf("SaveEvents() failed: %v", err)
	}
	if newCount != 2 {
		t.Errorf("first save newCount = %d, want 2", newCount)
	}

	newCount, err = repo.SaveEvents(context.Background(), batch)
	if err != nil {
		t.Fatalf("second SaveEvents() failed: %v", err)
	}
	if newCount != 0 {
		t.Errorf("second save newCount = %d, want 0", newCount)
	}

	events, err := repo.GetEvents(context.Background(), domain.EventFilter{})
	if err != nil {
		t.Fatalf("GetEvents() failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("stored %d events, want 2", len(events))
	}
}

func TestSaveEventsTouchesLastScraped(t *testing.T) {
	db := setupDB(t)
	venueID := setupVenue(t, db, "Test Hall")
	venueRepo := NewVenueRepo(zerolog.Nop(), db)
	repo := NewEventRepo(zerolog.Nop(), db)

	scrapedAt := time.Date(2025, time.July, 2, 8, 30, 0, 0, time.UTC)
	repo.now = func() time.Time { return scrapedAt }

	if _, err := repo.SaveEvents(context.Background(), []domain.Event{testEvent(venueID, "2025-08-20", "ACT")}); err != nil {
		t.Fatalf("SaveEvents() failed: %v", err)
	}

	venue, err := venueRepo.GetByName(context.Background(), "Test Hall")
	if err != nil {
		t.Fatalf("GetByName() failed: %v", err)
	}
	if venue.LastScraped == nil {
		t.Fatal("last_scraped not set")
	}
	if !venue.LastScraped.Equal(scrapedAt) {
		t.Errorf("last_scraped = %v, want %v", venue.LastScraped, scrapedAt)
	}
}

func TestResaveKeepsPinned(t *testing.T) {
	db := setupDB(t)
	venueID := setupVenue(t, db, "Test Hall")
	repo := NewEventRepo(zerolog.Nop(), db)

	batch := []domain.Event{testEvent(venueID, "2025-08-20", "PINNED ACT")}
	if _, err := repo.SaveEvents(context.Background(), batch); err != nil {
		t.Fatalf("SaveEvents() failed: %v", err)
	}

	events, err := repo.GetEvents(context.Background(), domain.EventFilter{})
	if err != nil {
		t.Fatalf("GetEvents() failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("stored %d events, want 1", len(events))
	}
	if err := repo.SetPinned(context.Background(), events[0].ID, true); err != nil {
		t.Fatalf("SetPinned() failed: %v", err)
	}

	// Re-ingesting the same scrape must not reset the flag.
	if _, err := repo.SaveEvents(context.Background(), batch); err != nil {
		t.Fatalf("second SaveEvents() failed: %v", err)
	}

	events, err = repo.GetEvents(context.Background(), domain.EventFilter{})
	if err != nil {
		t.Fatalf("GetEvents() failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if !events[0].Pinned {
		t.Error("pinned flag lost after re-save")
	}
}

func TestGetEventsFilters(t *testing.T) {
	db := setupDB(t)
	hallID := setupVenue(t, db, "Test Hall")
	clubID := setupVenue(t, db, "Test Club")
	venueRepo := NewVenueRepo(zerolog.Nop(), db)
	repo := NewEventRepo(zerolog.Nop(), db)
	repo.now = func() time.Time {
		return time.Date(2025, time.August, 1, 10, 0, 0, 0, time.UTC)
	}

	batch := []domain.Event{
		testEvent(hallID, "2025-07-15", "PAST ACT"),
		testEvent(hallID, "2025-08-10", "HALL ACT"),
		testEvent(clubID, "2025-08-20", "CLUB ACT"),
		testEvent(clubID, "2025-09-05", "LATE ACT"),
	}
	if _, err := repo.SaveEvents(context.Background(), batch); err != nil {
		t.Fatalf("SaveEvents() failed: %v", err)
	}
	if err := venueRepo.SetStarred(context.Background(), "Test Club", true); err != nil {
		t.Fatalf("SetStarred() failed: %v", err)
	}

	from := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		filter      domain.EventFilter
		wantArtists []string
	}{
		{
			name:        "no filter ordered by date",
			filter:      domain.EventFilter{},
			wantArtists: []string{"PAST ACT", "HALL ACT", "CLUB ACT", "LATE ACT"},
		},
		{
			name:        "future only",
			filter:      domain.EventFilter{FutureOnly: true},
			wantArtists: []string{"HALL ACT", "CLUB ACT", "LATE ACT"},
		},
		{
			name:        "window",
			filter:      domain.EventFilter{From: &from, Until: &until},
			wantArtists: []string{"HALL ACT", "CLUB ACT"},
		},
		{
			name:        "by venue",
			filter:      domain.EventFilter{Venue: "Test Hall"},
			wantArtists: []string{"PAST ACT", "HALL ACT"},
		},
		{
			name:        "starred only",
			filter:      domain.EventFilter{StarredOnly: true},
			wantArtists: []string{"CLUB ACT", "LATE ACT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := repo.GetEvents(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("GetEvents() failed: %v", err)
			}
			if len(events) != len(tt.wantArtists) {
				t.Fatalf("got %d events, want %d", len(events), len(tt.wantArtists))
			}
			for i, want := range tt.wantArtists {
				if got := events[i].Artists[0]; got != want {
					t.Errorf("events[%d] = %s, want %s", i, got, want)
				}
			}
		})
	}
}

func TestGetEventsRoundTrip(t *testing.T) {
	db := setupDB(t)
	venueID := setupVenue(t, db, "Test Hall")
	repo := NewEventRepo(zerolog.Nop(), db)

	saved := testEvent(venueID, "2025-08-20", "HEADLINER", "OPENER")
	saved.Time = &domain.WallTime{Hour: 19, Minute: 30}
	saved.Cost = "$25"

	if _, err := repo.SaveEvents(context.Background(), []domain.Event{saved}); err != nil {
		t.Fatalf("SaveEvents() failed: %v", err)
	}

	events, err := repo.GetEvents(context.Background(), domain.EventFilter{})
	if err != nil {
		t.Fatalf("GetEvents() failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	got := events[0]
	if got.Venue != "Test Hall" {
		t.Errorf("venue = %s, want Test Hall", got.Venue)
	}
	if got.Date.Format("2006-01-02") != "2025-08-20" {
		t.Errorf("date = %v, want 2025-08-20", got.Date)
	}
	if got.Time == nil || got.Time.String() != "19:30" {
		t.Errorf("time = %v, want 19:30", got.Time)
	}
	if len(got.Artists) != 2 || got.Artists[0] != "HEADLINER" || got.Artists[1] != "OPENER" {
		t.Errorf("artists = %v, want [HEADLINER OPENER]", got.Artists)
	}
	if got.Cost != "$25" {
		t.Errorf("cost = %q, want $25", got.Cost)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, saved.CreatedAt)
	}
}

// The date and created_at columns must come back as the strings we wrote.
// A DATE/TIMESTAMP decltype makes the driver return time.Time, which
// stringifies to RFC3339 and breaks the scan layout, silently emptying
// every read.
func TestStoredDateRoundTripsAsText(t *testing.T) {
	db := setupDB(t)
	venueID := setupVenue(t, db, "Test Hall")
	repo := NewEventRepo(zerolog.Nop(), db)

	newCount, err := repo.SaveEvents(context.Background(), []domain.Event{testEvent(venueID, "2025-08-20", "ACT")})
	if err != nil {
		t.Fatalf("SaveEvents() failed: %v", err)
	}
	if newCount != 1 {
		t.Fatalf("newCount = %d, want 1", newCount)
	}

	var rawDate interface{}
	if err := db.handler.QueryRow("SELECT date FROM events").Scan(&rawDate); err != nil {
		t.Fatalf("raw date scan failed: %v", err)
	}
	switch v := rawDate.(type) {
	case string:
		if v != "2025-08-20" {
			t.Errorf("raw date = %q, want 2025-08-20", v)
		}
	case []byte:
		if string(v) != "2025-08-20" {
			t.Errorf("raw date = %q, want 2025-08-20", v)
		}
	default:
		t.Errorf("raw date scanned as %T, want a string column", rawDate)
	}

	events, err := repo.GetEvents(context.Background(), domain.EventFilter{})
	if err != nil {
		t.Fatalf("GetEvents() failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events back, want 1", len(events))
	}
	if got := events[0].Date.Format("2006-01-02"); got != "2025-08-20" {
		t.Errorf("date = %s, want 2025-08-20", got)
	}
}

func TestEventWithoutTimeSortsFirst(t *testing.T) {
	db := setupDB(t)
	venueID := setupVenue(t, db, "Test Hall")
	repo := NewEventRepo(zerolog.Nop(), db)

	timed := testEvent(venueID, "2025-08-20", "EVENING ACT")
	allDay := testEvent(venueID, "2025-08-20", "FESTIVAL")
	allDay.Time = nil

	if _, err := repo.SaveEvents(context.Background(), []domain.Event{timed, allDay}); err != nil {
		t.Fatalf("SaveEvents() failed: %v", err)
	}

	events, err := repo.GetEvents(context.Background(), domain.EventFilter{})
	if err != nil {
		t.Fatalf("GetEvents() failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Artists[0] != "FESTIVAL" {
		t.Errorf("first event = %s, want FESTIVAL", events[0].Artists[0])
	}
	if events[0].Time != nil {
		t.Errorf("time = %v, want nil", events[0].Time)
	}
}

func TestSetCost(t *testing.T) {
	db := setupDB(t)
	venueID := setupVenue(t, db, "Test Hall")
	repo := NewEventRepo(zerolog.Nop(), db)

	if _, err := repo.SaveEvents(context.Background(), []domain.Event{testEvent(venueID, "2025-08-20", "ACT")}); err != nil {
		t.Fatalf("SaveEvents() failed: %v", err)
	}

	events, err := repo.GetEvents(context.Background(), domain.EventFilter{})
	if err != nil {
		t.Fatalf("GetEvents() failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if err := repo.SetCost(context.Background(), events[0].ID, "$18"); err != nil {
		t.Fatalf("SetCost() failed: %v", err)
	}

	events, err = repo.GetEvents(context.Background(), domain.EventFilter{})
	if err != nil {
		t.Fatalf("GetEvents() failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Cost != "$18" {
		t.Errorf("cost = %q, want $18", events[0].Cost)
	}

	if err := repo.SetCost(context.Background(), 9999, "$5"); err == nil {
		t.Error("SetCost() with unknown id did not fail")
	}
}

func TestSetPinnedUnknownEvent(t *testing.T) {
	db := setupDB(t)
	repo := NewEventRepo(zerolog.Nop(), db)

	if err := repo.SetPinned(context.Background(), 42, true); err == nil {
		t.Error("SetPinned() with unknown id did not fail")
	}
}

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/venuepulse/gigcal/internal/cache"
	"github.com/venuepulse/gigcal/internal/config"
	"github.com/venuepulse/gigcal/internal/database"
	"github.com/venuepulse/gigcal/internal/dedupe"
	"github.com/venuepulse/gigcal/internal/domain"
	"github.com/venuepulse/gigcal/internal/fetcher"
	"github.com/venuepulse/gigcal/internal/logger"
	"github.com/venuepulse/gigcal/internal/repository"
	"github.com/venuepulse/gigcal/internal/scraper"
)

// App wires the pipeline together: fetch through the response cache,
// extract per venue, normalize, persist with dedup.
type App struct {
	log        zerolog.Logger
	config     *domain.Config
	db         *database.DB
	venueRepo  domain.VenueRepo
	eventRepo  domain.EventRepo
	fileRepo   *repository.FileRepository
	scraper    scraper.Service
	dedupe     dedupe.Service
}

// NewApp creates an application instance with all dependencies
// initialized.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewWithLevel(zerolog.InfoLevel)
	if cfg.Debug {
		log = logger.NewWithLevel(zerolog.DebugLevel)
	}

	responseCache, err := cache.New(cfg.CacheDir, cfg.CacheExpiry(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize response cache: %w", err)
	}

	db, err := database.NewDB(cfg.DataDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	pageFetcher := fetcher.New(log, responseCache, cfg.UserAgent, cfg.FetchTimeout)

	return &App{
		log:        log,
		config:     cfg,
		db:         db,
		venueRepo:  database.NewVenueRepo(log, db),
		eventRepo:  database.NewEventRepo(log, db),
		fileRepo:   repository.NewFileRepository(log),
		scraper:    scraper.NewService(log, pageFetcher),
		dedupe:     dedupe.NewService(log),
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}

// Run scrapes every enabled venue and persists the results. A venue that
// fails to fetch or yields nothing does not stop the rest; failures are
// isolated per venue.
func (a *App) Run(ctx context.Context) error {
	venues, err := a.fileRepo.Load(ctx, a.config.VenuesFile)
	if err != nil {
		return fmt.Errorf("failed to load venues: %w", err)
	}

	var (
		totalEvents  int
		totalNew     int
		totalSkipped int
		failedVenues int
	)

	for i := range venues {
		venue := &venues[i]
		if !venue.IsEnabled() {
			a.log.Debug().Str("venue", venue.Name).Msg("venue disabled, skipping")
			continue
		}

		if _, err := a.venueRepo.Upsert(ctx, venue); err != nil {
			return fmt.Errorf("failed to save venue %s: %w", venue.Name, err)
		}

		events, skipped, err := a.scraper.Scrape(ctx, venue)
		if err != nil {
			failedVenues++
			a.log.Warn().Err(err).Str("venue", venue.Name).Msg("venue scrape failed")
			continue
		}
		if len(events) == 0 {
			failedVenues++
			a.log.Warn().Str("venue", venue.Name).Msg("no events found")
			continue
		}

		dropped, events := a.dedupe.CheckDupes(events)
		if dropped > 0 {
			a.log.Debug().Str("venue", venue.Name).Int("dropped", dropped).Msg("duplicate listings removed")
		}

		newCount, err := a.eventRepo.SaveEvents(ctx, events)
		if err != nil {
			return fmt.Errorf("failed to save events for %s: %w", venue.Name, err)
		}

		totalEvents += len(events)
		totalNew += newCount
		totalSkipped += skipped

		a.log.Info().
			Str("venue", venue.Name).
			Int("events", len(events)).
			Int("new", newCount).
			Int("skipped_fragments", skipped).
			Msg("venue scraped")
	}

	a.log.Info().
		Int("total_events", totalEvents).
		Int("new_events", totalNew).
		Int("skipped_fragments", totalSkipped).
		Int("failed_venues", failedVenues).
		Msg("=== SCRAPE COMPLETE ===")

	return nil
}

// ListEvents returns stored events for display.
func (a *App) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	return a.eventRepo.GetEvents(ctx, filter)
}

// ExportEvents writes the filtered events to a CSV file.
func (a *App) ExportEvents(ctx context.Context, filter domain.EventFilter, path string) (int, error) {
	events, err := a.eventRepo.GetEvents(ctx, filter)
	if err != nil {
		return 0, err
	}

	if err := a.fileRepo.WriteEvents(path, events); err != nil {
		return 0, err
	}

	return len(events), nil
}

// StarVenue flips the starred flag on a venue.
func (a *App) StarVenue(ctx context.Context, name string, starred bool) error {
	return a.venueRepo.SetStarred(ctx, name, starred)
}

// PinEvent flips the pinned flag on an event. Pinned survives re-scrapes
// because dedup conflicts never touch existing rows.
func (a *App) PinEvent(ctx context.Context, eventID int64, pinned bool) error {
	return a.eventRepo.SetPinned(ctx, eventID, pinned)
}

// CalendarWindow returns the date range covering the current and next
// month: the first of the current month up to (exclusive) the first of
// the month after next.
func CalendarWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 2, 0)
}

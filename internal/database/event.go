package database

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/venuepulse/gigcal/internal/domain"
)

const dateLayout = "2006-01-02"

// EventRepo implements domain.EventRepo on sqlite. Dedup is enforced by
// the UNIQUE (venue_id, date, artists, url) constraint: conflicting
// inserts are skipped, never errors, so re-ingesting a batch is
// idempotent and never clears an existing pinned flag.
type EventRepo struct {
	log zerolog.Logger
	db  *DB
	now func() time.Time
}

func NewEventRepo(log zerolog.Logger, db *DB) *EventRepo {
	return &EventRepo{
		log: log.With().Str("repo", "event").Logger(),
		db:  db,
		now: time.Now,
	}
}

var _ domain.EventRepo = (*EventRepo)(nil)

// SaveEvents inserts a batch inside a single transaction and returns the
// count of rows actually newly inserted. Events already known by their
// dedup key count as zero. The venues' last_scraped timestamps are
// updated in the same transaction.
func (r *EventRepo) SaveEvents(ctx context.Context, events []domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, &domain.StorageError{Op: "begin save", Err: err}
	}
	defer tx.Rollback()

	newCount := 0
	venueIDs := make(map[int64]struct{})

	for _, event := range events {
		var clock interface{}
		if event.Time != nil {
			clock = event.Time.String()
		}
		var cost interface{}
		if event.Cost != "" {
			cost = event.Cost
		}

		queryBuilder := r.db.squirrel.
			Insert("events").
			Columns("venue_id", "date", "time", "artists", "url", "cost", "created_at").
			Values(event.VenueID, event.Date.Format(dateLayout), clock, event.ArtistsDisplay(), event.URL, cost, event.CreatedAt.UTC().Format(time.RFC3339)).
			Suffix("ON CONFLICT (venue_id, date, artists, url) DO NOTHING")

		query, args, err := queryBuilder.ToSql()
		if err != nil {
			return 0, errors.Wrap(err, "error building query")
		}

		r.log.Trace().Str("query", query).Interface("args", args).Msg("SaveEvents")

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, &domain.StorageError{Op: "insert event", Err: err}
		}

		if n, err := res.RowsAffected(); err == nil {
			newCount += int(n)
		}

		venueIDs[event.VenueID] = struct{}{}
	}

	scrapedAt := r.now().UTC().Format(time.RFC3339)
	for venueID := range venueIDs {
		query, args, err := r.db.squirrel.
			Update("venues").
			Set("last_scraped", scrapedAt).
			Where(sq.Eq{"id": venueID}).
			ToSql()
		if err != nil {
			return 0, errors.Wrap(err, "error building query")
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, &domain.StorageError{Op: "touch last_scraped", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, &domain.StorageError{Op: "commit save", Err: err}
	}

	return newCount, nil
}

// GetEvents returns stored events joined with venue metadata, ordered by
// date then time.
func (r *EventRepo) GetEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	queryBuilder := r.db.squirrel.
		Select("e.id", "e.venue_id", "v.name", "e.date", "e.time", "e.artists", "e.url", "e.cost", "e.pinned", "e.created_at").
		From("events e").
		Join("venues v ON e.venue_id = v.id").
		OrderBy("e.date", "e.time")

	if filter.FutureOnly {
		today := domain.DateOnly(r.now()).Format(dateLayout)
		queryBuilder = queryBuilder.Where(sq.GtOrEq{"e.date": today})
	}
	if filter.From != nil {
		queryBuilder = queryBuilder.Where(sq.GtOrEq{"e.date": filter.From.Format(dateLayout)})
	}
	if filter.Until != nil {
		queryBuilder = queryBuilder.Where(sq.Lt{"e.date": filter.Until.Format(dateLayout)})
	}
	if filter.Venue != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"v.name": filter.Venue})
	}
	if filter.StarredOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"v.starred": true})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("GetEvents")

	rows, err := r.db.handler.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &domain.StorageError{Op: "query events", Err: err}
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			// Skip malformed rows instead of failing the read.
			r.log.Warn().Err(err).Msg("skipping malformed event row")
			continue
		}
		events = append(events, *event)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "iterate events", Err: err}
	}

	return events, nil
}

// SetPinned flips the pinned flag on a stored event.
func (r *EventRepo) SetPinned(ctx context.Context, eventID int64, pinned bool) error {
	return r.updateEventField(ctx, eventID, "pinned", pinned, "pin event")
}

// SetCost amends the cost of a stored event. Cost is not part of the
// dedup key, so it may change after first insertion.
func (r *EventRepo) SetCost(ctx context.Context, eventID int64, cost string) error {
	var value interface{}
	if cost != "" {
		value = cost
	}
	return r.updateEventField(ctx, eventID, "cost", value, "set cost")
}

func (r *EventRepo) updateEventField(ctx context.Context, eventID int64, column string, value interface{}, op string) error {
	queryBuilder := r.db.squirrel.
		Update("events").
		Set(column, value).
		Where(sq.Eq{"id": eventID})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	res, err := r.db.handler.ExecContext(ctx, query, args...)
	if err != nil {
		return &domain.StorageError{Op: op, Err: err}
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &domain.StorageError{Op: op, Err: errors.Errorf("no event with id %d", eventID)}
	}

	return nil
}

func scanEvent(rows *sql.Rows) (*domain.Event, error) {
	var (
		event     domain.Event
		dateText  string
		clock     sql.NullString
		artists   string
		cost      sql.NullString
		createdAt string
	)

	if err := rows.Scan(&event.ID, &event.VenueID, &event.Venue, &dateText, &clock, &artists, &event.URL, &cost, &event.Pinned, &createdAt); err != nil {
		return nil, errors.Wrap(err, "error scanning row")
	}

	date, err := time.Parse(dateLayout, dateText)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid date %q", dateText)
	}
	event.Date = date

	if clock.Valid && clock.String != "" {
		wt, err := domain.ParseWallTime(clock.String)
		if err != nil {
			return nil, err
		}
		event.Time = wt
	}

	event.Artists = domain.SplitArtists(artists)
	if cost.Valid {
		event.Cost = cost.String
	}

	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		event.CreatedAt = ts
	} else if ts, err := time.Parse("2006-01-02 15:04:05", createdAt); err == nil {
		// Rows inserted by the schema default use sqlite's timestamp form.
		event.CreatedAt = ts
	}

	return &event, nil
}

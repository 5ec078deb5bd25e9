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

// VenueRepo implements domain.VenueRepo on sqlite.
type VenueRepo struct {
	log zerolog.Logger
	db  *DB
}

func NewVenueRepo(log zerolog.Logger, db *DB) *VenueRepo {
	return &VenueRepo{
		log: log.With().Str("repo", "venue").Logger(),
		db:  db,
	}
}

var _ domain.VenueRepo = (*VenueRepo)(nil)

// Upsert inserts the venue or refreshes its URL fields, keeping the row id
// and the starred flag stable, and returns the venue id.
func (r *VenueRepo) Upsert(ctx context.Context, venue *domain.Venue) (int64, error) {
	queryBuilder := r.db.squirrel.
		Insert("venues").
		Columns("name", "base_url", "calendar_path").
		Values(venue.Name, venue.BaseURL, venue.CalendarPath).
		Suffix("ON CONFLICT (name) DO UPDATE SET base_url = excluded.base_url, calendar_path = excluded.calendar_path")

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Upsert")

	if _, err := r.db.handler.ExecContext(ctx, query, args...); err != nil {
		return 0, &domain.StorageError{Op: "upsert venue", Err: err}
	}

	var id int64
	idQuery, idArgs, err := r.db.squirrel.
		Select("id").
		From("venues").
		Where(sq.Eq{"name": venue.Name}).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "error building query")
	}

	if err := r.db.handler.QueryRowContext(ctx, idQuery, idArgs...).Scan(&id); err != nil {
		return 0, &domain.StorageError{Op: "lookup venue id", Err: err}
	}

	venue.ID = id
	return id, nil
}

// GetByName returns the stored venue with the given name.
func (r *VenueRepo) GetByName(ctx context.Context, name string) (*domain.Venue, error) {
	queryBuilder := r.db.squirrel.
		Select("id", "name", "base_url", "calendar_path", "starred", "last_scraped").
		From("venues").
		Where(sq.Eq{"name": name})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	var (
		venue       domain.Venue
		lastScraped sql.NullString
	)
	err = r.db.handler.QueryRowContext(ctx, query, args...).
		Scan(&venue.ID, &venue.Name, &venue.BaseURL, &venue.CalendarPath, &venue.Starred, &lastScraped)
	if err != nil {
		return nil, &domain.StorageError{Op: "get venue", Err: err}
	}

	if lastScraped.Valid {
		if ts, err := time.Parse(time.RFC3339, lastScraped.String); err == nil {
			venue.LastScraped = &ts
		}
	}

	return &venue, nil
}

// SetStarred flips the starred flag for a venue by name.
func (r *VenueRepo) SetStarred(ctx context.Context, name string, starred bool) error {
	queryBuilder := r.db.squirrel.
		Update("venues").
		Set("starred", starred).
		Where(sq.Eq{"name": name})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	res, err := r.db.handler.ExecContext(ctx, query, args...)
	if err != nil {
		return &domain.StorageError{Op: "star venue", Err: err}
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &domain.StorageError{Op: "star venue", Err: errors.Errorf("no venue named %q", name)}
	}

	return nil
}

// TouchLastScraped records a successful fetch time for the venue.
func (r *VenueRepo) TouchLastScraped(ctx context.Context, venueID int64, at time.Time) error {
	queryBuilder := r.db.squirrel.
		Update("venues").
		Set("last_scraped", at.UTC().Format(time.RFC3339)).
		Where(sq.Eq{"id": venueID})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	if _, err := r.db.handler.ExecContext(ctx, query, args...); err != nil {
		return &domain.StorageError{Op: "touch last_scraped", Err: err}
	}

	return nil
}

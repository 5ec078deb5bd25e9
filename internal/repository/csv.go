package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/venuepulse/gigcal/internal/domain"
)

// csvHeader is the golden-data interchange layout. The artists column uses
// the same delimiter-joined representation as the storage uniqueness key.
var csvHeader = []string{"date", "time", "artists", "venue", "url", "cost"}

const csvDateLayout = "2006-01-02"

// ToRecord flattens an event into one CSV record.
func ToRecord(e domain.Event) []string {
	clock := ""
	if e.Time != nil {
		clock = e.Time.String()
	}
	return []string{
		e.Date.Format(csvDateLayout),
		clock,
		e.ArtistsDisplay(),
		e.Venue,
		e.URL,
		e.Cost,
	}
}

// FromRecord is the inverse of ToRecord.
func FromRecord(record []string) (domain.Event, error) {
	if len(record) != len(csvHeader) {
		return domain.Event{}, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(record))
	}

	date, err := time.Parse(csvDateLayout, record[0])
	if err != nil {
		return domain.Event{}, fmt.Errorf("invalid date %q: %w", record[0], err)
	}

	event := domain.Event{
		Date:    date,
		Artists: domain.SplitArtists(record[2]),
		Venue:   record[3],
		URL:     record[4],
		Cost:    record[5],
	}

	if record[1] != "" {
		clock, err := domain.ParseWallTime(record[1])
		if err != nil {
			return domain.Event{}, err
		}
		event.Time = clock
	}

	return event, nil
}

// WriteEvents stores events as golden CSV data.
func (r *FileRepository) WriteEvents(path string, events []domain.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, e := range events {
		if err := w.Write(ToRecord(e)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	r.log.Debug().Str("path", path).Int("count", len(events)).Msg("wrote golden events")
	return nil
}

// ReadEvents loads golden CSV data back into events.
func (r *FileRepository) ReadEvents(path string) ([]domain.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv from %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	events := make([]domain.Event, 0, len(records)-1)
	for i, record := range records[1:] {
		event, err := FromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("record %d in %s: %w", i+1, path, err)
		}
		events = append(events, event)
	}

	return events, nil
}

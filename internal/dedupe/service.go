package dedupe

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/venuepulse/gigcal/internal/domain"
)

// Service drops repeated listings from a single scrape. Venue pages often
// render the same show more than once (calendar grid plus a featured
// block), and while the storage layer would reject the second copy anyway,
// filtering here keeps per-venue event counts honest.
type Service interface {
	CheckDupes(events []domain.Event) (int, []domain.Event)
}

type service struct {
	log zerolog.Logger
}

func NewService(log zerolog.Logger) Service {
	return &service{
		log: log.With().Str("module", "dedupe").Logger(),
	}
}

// CheckDupes returns the batch with later duplicates removed, preserving
// page order, plus the number dropped. Two events are duplicates when they
// share the storage identity key.
func (s *service) CheckDupes(events []domain.Event) (int, []domain.Event) {
	seen := make(map[string]struct{}, len(events))
	deduped := events[:0:0]
	dropped := 0

	for _, event := range events {
		key := identityKey(event)
		if _, ok := seen[key]; ok {
			dropped++
			s.log.Debug().
				Str("venue", event.Venue).
				Str("date", event.Date.Format("2006-01-02")).
				Str("artists", event.ArtistsDisplay()).
				Msg("dropping duplicate listing")
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, event)
	}

	if dropped > 0 {
		s.log.Info().Int("dupe_count", dropped).Msg("Found duplicates")
	}

	return dropped, deduped
}

func identityKey(e domain.Event) string {
	return fmt.Sprintf("%d\x00%s\x00%s\x00%s", e.VenueID, e.Date.Format("2006-01-02"), e.ArtistsDisplay(), e.URL)
}

package scraper

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/venuepulse/gigcal/internal/domain"
	"github.com/venuepulse/gigcal/internal/normalize"
)

// Extractor is the per-venue capability set. Fragments locates the HTML
// subtrees representing single listings; the field methods pull raw text
// from one fragment. Venues differ only in selectors and local text
// conventions; normalization is shared.
type Extractor interface {
	Fragments(doc *goquery.Document) *goquery.Selection
	Date(sel *goquery.Selection) (string, error)
	Time(sel *goquery.Selection) string
	Artists(sel *goquery.Selection) (string, error)
	URL(sel *goquery.Selection) (string, error)
	Cost(sel *goquery.Selection) string
}

// PageFetcher retrieves the HTML body for a venue page.
type PageFetcher interface {
	Fetch(ctx context.Context, venue *domain.Venue, url string) (string, error)
}

type Service interface {
	// Scrape fetches a venue's calendar page and returns its assembled
	// events plus the number of malformed fragments skipped.
	Scrape(ctx context.Context, venue *domain.Venue) ([]domain.Event, int, error)
}

type service struct {
	log     zerolog.Logger
	fetcher PageFetcher
	now     func() time.Time
}

func NewService(log zerolog.Logger, fetcher PageFetcher) Service {
	return &service{
		log:     log.With().Str("module", "scraper").Logger(),
		fetcher: fetcher,
		now:     time.Now,
	}
}

func (s *service) Scrape(ctx context.Context, venue *domain.Venue) ([]domain.Event, int, error) {
	ext, err := ForVenue(venue.Scraper)
	if err != nil {
		return nil, 0, err
	}

	html, err := s.fetcher.Fetch(ctx, venue, venue.CalendarURL())
	if err != nil {
		return nil, 0, err
	}

	return s.ParseEvents(html, venue, ext)
}

// ParseEvents walks every listing fragment the extractor locates and
// assembles events. A fragment failing any required capability is skipped
// with a logged reason; one malformed listing never aborts the batch.
func (s *service) ParseEvents(html string, venue *domain.Venue, ext Extractor) ([]domain.Event, int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to parse HTML")
	}

	var events []domain.Event
	skipped := 0

	ext.Fragments(doc).Each(func(i int, sel *goquery.Selection) {
		event, err := s.assemble(sel, venue, ext)
		if err != nil {
			skipped++
			s.log.Debug().Err(err).Str("venue", venue.Name).Int("fragment", i).Msg("skipping malformed listing")
			return
		}
		events = append(events, *event)
	})

	return events, skipped, nil
}

// assemble extracts one fragment's raw fields and normalizes them into an
// event. Date and artists are required; time and cost are optional.
func (s *service) assemble(sel *goquery.Selection, venue *domain.Venue, ext Extractor) (*domain.Event, error) {
	raw, err := extract(sel, ext)
	if err != nil {
		return nil, err
	}

	date, err := normalize.ParseDate(raw.DateText, s.now())
	if err != nil {
		return nil, err
	}

	artists := normalize.CleanArtists(raw.ArtistText)
	if len(artists) == 0 {
		return nil, &domain.ExtractionError{Field: "artists"}
	}

	eventURL, err := resolveURL(venue.BaseURL, raw.URL)
	if err != nil {
		return nil, &domain.ExtractionError{Field: "url", Err: err}
	}

	clock, err := normalize.ParseClock(raw.TimeText)
	if err != nil {
		return nil, err
	}

	return &domain.Event{
		Venue:     venue.Name,
		VenueID:   venue.ID,
		Date:      date,
		Time:      clock,
		Artists:   artists,
		URL:       eventURL,
		Cost:      normalize.ExtractCost(raw.CostText),
		CreatedAt: s.now().UTC(),
	}, nil
}

// extract runs every extractor capability against one fragment.
func extract(sel *goquery.Selection, ext Extractor) (*domain.RawEvent, error) {
	dateText, err := ext.Date(sel)
	if err != nil {
		return nil, err
	}

	artistText, err := ext.Artists(sel)
	if err != nil {
		return nil, err
	}

	rawURL, err := ext.URL(sel)
	if err != nil {
		return nil, err
	}

	return &domain.RawEvent{
		DateText:   dateText,
		TimeText:   ext.Time(sel),
		ArtistText: artistText,
		URL:        rawURL,
		CostText:   ext.Cost(sel),
	}, nil
}

// resolveURL makes a possibly-relative href absolute against the venue's
// base URL.
func resolveURL(base, href string) (string, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", errors.New("empty href")
	}

	u, err := url.Parse(href)
	if err != nil {
		return "", errors.Wrap(err, "invalid href")
	}
	if u.IsAbs() {
		return href, nil
	}

	b, err := url.Parse(base)
	if err != nil {
		return "", errors.Wrap(err, "invalid base URL")
	}
	return b.ResolveReference(u).String(), nil
}

// preferShowLine picks the line of a multi-line time block that names the
// show time, so "Doors: 6:00 pm / Show: 7:00 pm" resolves to 7 rather
// than 6. Text without a show line is returned whole.
func preferShowLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if idx := strings.Index(strings.ToLower(line), "show"); idx >= 0 {
			return line[idx:]
		}
	}
	return text
}

package fetcher

import (
	"context"
	"net/http"
	"time"

	"github.com/gocolly/colly"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/venuepulse/gigcal/internal/cache"
	"github.com/venuepulse/gigcal/internal/domain"
)

// Fetcher retrieves HTML for a venue's calendar page, consulting the
// response cache before issuing a network request. Fetch failures are
// propagated as *domain.FetchError and never cached.
type Fetcher struct {
	log       zerolog.Logger
	cache     *cache.ResponseCache
	userAgent string
	timeout   time.Duration
}

func New(log zerolog.Logger, cache *cache.ResponseCache, userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		log:       log.With().Str("module", "fetcher").Logger(),
		cache:     cache,
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// Fetch returns the HTML body for url, from cache when a fresh entry
// exists, otherwise via HTTP GET.
func (f *Fetcher) Fetch(ctx context.Context, venue *domain.Venue, url string) (string, error) {
	if body, ok := f.cache.Get(venue.Name, url); ok {
		f.log.Debug().Str("venue", venue.Name).Str("url", url).Msg("serving cached page")
		return body, nil
	}

	if err := ctx.Err(); err != nil {
		return "", &domain.FetchError{Venue: venue.Name, URL: url, Err: err}
	}

	body, err := f.fetchLive(url)
	if err != nil {
		return "", &domain.FetchError{Venue: venue.Name, URL: url, Err: err}
	}

	if err := f.cache.Put(venue.Name, url, body); err != nil {
		// A failed cache write is not a fetch failure.
		f.log.Warn().Err(err).Str("venue", venue.Name).Str("url", url).Msg("failed to cache response")
	}

	return body, nil
}

func (f *Fetcher) fetchLive(url string) (string, error) {
	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
		colly.IgnoreRobotsTxt(),
	)
	c.SetRequestTimeout(f.timeout)

	var (
		body   []byte
		status int
	)
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
		status = r.StatusCode
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
	})
	c.OnRequest(func(r *colly.Request) {
		f.log.Debug().Str("url", r.URL.String()).Msg("visiting")
	})

	if err := c.Visit(url); err != nil {
		if status != 0 {
			return "", errors.Wrapf(err, "unexpected status code %d", status)
		}
		return "", errors.Wrap(err, "request failed")
	}

	if status != http.StatusOK {
		return "", errors.Errorf("unexpected status code %d", status)
	}

	return string(body), nil
}

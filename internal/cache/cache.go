package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ResponseCache is an on-disk store mapping (venue, URL) to a previously
// fetched HTML body. One file per key; the filename is a hash digest of
// "venue:url" and the file's modification time drives expiry. Stale
// entries are never deleted proactively, just ignored and overwritten on
// the next live fetch.
type ResponseCache struct {
	dir    string
	expiry time.Duration
	log    zerolog.Logger
}

func New(dir string, expiry time.Duration, log zerolog.Logger) (*ResponseCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create cache directory %s", dir)
	}

	return &ResponseCache{
		dir:    dir,
		expiry: expiry,
		log:    log.With().Str("module", "cache").Logger(),
	}, nil
}

// Get returns the cached body for (venue, url) and whether a fresh entry
// was present. Expired and absent entries both report a miss.
func (c *ResponseCache) Get(venue, url string) (string, bool) {
	path := c.entryPath(venue, url)

	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}

	if time.Since(info.ModTime()) >= c.expiry {
		c.log.Debug().Str("venue", venue).Str("url", url).Msg("cache entry expired")
		return "", false
	}

	body, err := os.ReadFile(path)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("failed to read cache entry")
		return "", false
	}

	c.log.Debug().Str("venue", venue).Str("url", url).Msg("cache hit")
	return string(body), true
}

// Put stores a body for (venue, url), overwriting unconditionally. The
// write goes to a temp file first and is renamed into place so concurrent
// readers never observe a truncated entry.
func (c *ResponseCache) Put(venue, url, body string) error {
	path := c.entryPath(venue, url)

	tmp, err := os.CreateTemp(c.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp cache file")
	}

	if _, err := tmp.WriteString(body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "failed to write cache entry")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "failed to close temp cache file")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "failed to move cache entry into place")
	}

	c.log.Debug().Str("venue", venue).Str("url", url).Int("bytes", len(body)).Msg("cached response")
	return nil
}

func (c *ResponseCache) entryPath(venue, url string) string {
	return filepath.Join(c.dir, Fingerprint(venue, url))
}

// Fingerprint derives the filesystem-safe cache key for a (venue, URL)
// pair. A full SHA-256 digest makes collisions implausible without relying
// on case-folding or escaping of the raw URL.
func Fingerprint(venue, url string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s", venue, url)))
	return hex.EncodeToString(sum[:])
}

package scraper

import (
	"sort"

	"github.com/pkg/errors"
)

// registry maps a venue's scraper key from venues.yaml to its extractor.
// New venues register here and nowhere else.
var registry = map[string]Extractor{
	"brickmortar": BrickMortar{},
	"warfield":    Warfield{},
	"neckwoods":   NeckOfTheWoods{},
}

// ForVenue returns the extractor registered under key.
func ForVenue(key string) (Extractor, error) {
	ext, ok := registry[key]
	if !ok {
		return nil, errors.Errorf("no scraper registered for %q", key)
	}
	return ext, nil
}

// Keys returns the registered scraper keys in stable order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

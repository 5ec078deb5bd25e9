package normalize

import (
	"regexp"
	"strings"
)

var (
	// Venue-added tour branding shows up as quoted text ("THE PREVAIL
	// TOUR"), an em-dash suffix (—XOXO Tour), or a dashed tour suffix.
	quotedNoiseRe = regexp.MustCompile(`["\x{201c}\x{201d}].*?["\x{201c}\x{201d}]`)
	emDashTailRe  = regexp.MustCompile(`\x{2014}.*$`)
	tourTailRe    = regexp.MustCompile(`(?i)-.*tour.*$`)

	// Supporting acts are joined to the headliner with "&", commas, or
	// any-case "with"; order in the source text is display order and is
	// kept. "and" is not a separator so names like "Florence and the
	// Machine" survive cleaning, cleaned or not.
	artistSepRe = regexp.MustCompile(`\s+(?i:with)\s+|\s*[,&]\s*`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanArtists splits raw display text into an ordered artist list with
// promotional noise stripped and names uppercased so dedup-key comparison
// is case-stable. Cleaning an already-clean list element is a no-op.
func CleanArtists(text string) []string {
	text = quotedNoiseRe.ReplaceAllString(text, "")
	text = emDashTailRe.ReplaceAllString(text, "")
	text = tourTailRe.ReplaceAllString(text, "")
	text = CollapseWhitespace(text)

	if text == "" {
		return nil
	}

	parts := artistSepRe.Split(text, -1)
	artists := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			artists = append(artists, strings.ToUpper(p))
		}
	}

	if len(artists) == 0 {
		return nil
	}
	return artists
}

// CollapseWhitespace squeezes runs of whitespace, newlines included, into
// single spaces and trims the ends.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

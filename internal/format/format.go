package format

import (
	"fmt"
	"strings"

	"github.com/venuepulse/gigcal/internal/domain"
)

// EventLine renders one event as a tab-separated display line:
// id, date and time, venue, artists, then cost and pinned marker when set.
// Events without a start time show TBD.
func EventLine(e domain.Event) string {
	clock := "TBD"
	if e.Time != nil {
		clock = e.Time.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d\t%s %s\t%s\t%s", e.ID, e.Date.Format("2006-01-02"), clock, e.Venue, e.ArtistsDisplay())
	if e.Cost != "" {
		b.WriteString("\t" + e.Cost)
	}
	if e.Pinned {
		b.WriteString("\t[pinned]")
	}
	return b.String()
}

// EventList renders events one per line with a trailing count.
func EventList(events []domain.Event) string {
	var b strings.Builder
	for _, e := range events {
		b.WriteString(EventLine(e) + "\n")
	}
	fmt.Fprintf(&b, "%d events\n", len(events))
	return b.String()
}

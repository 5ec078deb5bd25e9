package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/venuepulse/gigcal/internal/domain"
)

// months maps lowercase month tokens to months, full names and
// abbreviations included.
var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var (
	// "8.20", month.day shorthand with no year.
	shorthandDateRe = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})$`)
	// "Wed, Jul 23, 2025", "July 23, 2025", "Sun, Jul 20", "Aug. 1 2025".
	textualDateRe = regexp.MustCompile(`(?i)^(?:[a-z]+,?\s+)?([a-z]+)\.?\s+(\d{1,2})(?:,?\s+(\d{4}))?$`)
)

// ParseDate converts raw date text into a calendar date at midnight UTC.
// Shorthand "month.day" dates carry no year: the year is now's unless the
// resulting date has already passed by more than one day, in which case
// next year is used (end-of-year calendars list January shows). The same
// inference applies to textual dates that omit the year.
func ParseDate(text string, now time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, &domain.DateParseError{Input: text, Reason: "empty date text"}
	}

	if m := shorthandDateRe.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return time.Time{}, &domain.DateParseError{Input: text, Reason: "month out of range"}
		}
		return buildDate(text, inferYear(time.Month(month), day, now), time.Month(month), day)
	}

	if m := textualDateRe.FindStringSubmatch(text); m != nil {
		month, ok := months[strings.ToLower(m[1])]
		if !ok {
			return time.Time{}, &domain.DateParseError{Input: text, Reason: "unrecognized month " + strconv.Quote(m[1])}
		}

		day, _ := strconv.Atoi(m[2])

		if m[3] == "" {
			return buildDate(text, inferYear(month, day, now), month, day)
		}

		year, _ := strconv.Atoi(m[3])
		if year < 1970 || year > 2100 {
			return time.Time{}, &domain.DateParseError{Input: text, Reason: "year out of range"}
		}
		return buildDate(text, year, month, day)
	}

	return time.Time{}, &domain.DateParseError{Input: text, Reason: "unrecognized date pattern"}
}

// inferYear picks the year for a yearless date. Dates earlier than today
// by more than one day are treated as already passed and roll over to next
// year.
func inferYear(month time.Month, day int, now time.Time) int {
	candidate := time.Date(now.Year(), month, day, 0, 0, 0, 0, time.UTC)
	cutoff := domain.DateOnly(now).AddDate(0, 0, -1)
	if candidate.Before(cutoff) {
		return now.Year() + 1
	}
	return now.Year()
}

func buildDate(text string, year int, month time.Month, day int) (time.Time, error) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow, so Feb 30 silently becomes Mar 1.
	if d.Month() != month || d.Day() != day {
		return time.Time{}, &domain.DateParseError{Input: text, Reason: "day out of range for month"}
	}
	return d, nil
}

package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/venuepulse/gigcal/internal/domain"
)

// clockRe locates an hour with optional minutes followed by an AM/PM
// marker anywhere in free text, so "Show\n8:00 PM" and "Doors 7 / 8.30pm"
// both work.
var clockRe = regexp.MustCompile(`(?i)(\d{1,2})(?:[:.](\d{2}))?\s*(am|pm)`)

// ParseClock extracts a wall-clock time from free text and converts it to
// 24-hour form: 12:XX AM is hour 0, 12:XX PM is hour 12, other PM hours
// gain 12. Text without a recognizable time pattern yields (nil, nil);
// some listings are date-only, which is not an error.
func ParseClock(text string) (*domain.WallTime, error) {
	m := clockRe.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	if hour < 1 || hour > 12 {
		return nil, &domain.TimeParseError{Input: text, Reason: "hour out of range"}
	}
	if minute > 59 {
		return nil, &domain.TimeParseError{Input: text, Reason: "minute out of range"}
	}

	switch meridiem := strings.ToLower(m[3]); {
	case meridiem == "am" && hour == 12:
		hour = 0
	case meridiem == "pm" && hour != 12:
		hour += 12
	}

	return &domain.WallTime{Hour: hour, Minute: minute}, nil
}

package normalize

import "regexp"

// costRes matches ticket price text in the forms venues actually publish:
// "$25", "$25.00", "$15-$25", "Free", "No Cover", "Donation", "TBD".
var costRes = []*regexp.Regexp{
	regexp.MustCompile(`\$\d+(?:\.\d{2})?(?:\s*-\s*\$\d+(?:\.\d{2})?)?`),
	regexp.MustCompile(`(?i)free`),
	regexp.MustCompile(`(?i)no cover`),
	regexp.MustCompile(`(?i)donation`),
	regexp.MustCompile(`(?i)tbd`),
}

// ExtractCost pulls price information out of free text. An empty string
// means no recognizable price; cost is optional on events.
func ExtractCost(text string) string {
	if text == "" {
		return ""
	}
	for _, re := range costRes {
		if m := re.FindString(text); m != "" {
			return CollapseWhitespace(m)
		}
	}
	return ""
}

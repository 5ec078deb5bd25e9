package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/venuepulse/gigcal/internal/domain"
)

// NeckOfTheWoods extracts listings from Neck of the Woods' calendar. The
// page has no stable event markup, so fragments are any container whose
// class mentions an event and every field is pulled out of free text.
type NeckOfTheWoods struct{}

var (
	// "Sun, Jul 20" or "Fri Aug 1 2025"
	nwWeekdayDateRe = regexp.MustCompile(`(?i)\b(?:sun|mon|tue|wed|thu|fri|sat)[a-z]*,?\s+([a-z]{3,9})\.?\s+(\d{1,2})(?:,?\s+(\d{4}))?`)
	// "Aug.01.2025"
	nwDottedDateRe = regexp.MustCompile(`(?i)\b([a-z]{3,9})\.(\d{1,2})\.(\d{4})\b`)
	// "August 1, 2025"
	nwLongDateRe = regexp.MustCompile(`(?i)\b([a-z]{3,9})\s+(\d{1,2}),?\s+(\d{4})\b`)

	// Navigation links are not artists.
	nwNavLinkRe = regexp.MustCompile(`(?i)more info|buy tickets|details|calendar|contact`)
)

func (NeckOfTheWoods) Fragments(doc *goquery.Document) *goquery.Selection {
	return doc.Find("div[class*=event], article[class*=event], li[class*=event], div[class*=show], div[class*=concert]")
}

// Date finds the first date-looking run of text in the fragment and
// rewrites it into a form the shared date parser accepts.
func (NeckOfTheWoods) Date(sel *goquery.Selection) (string, error) {
	text := sel.Text()

	if m := nwWeekdayDateRe.FindStringSubmatch(text); m != nil {
		if m[3] == "" {
			return fmt.Sprintf("%s %s", m[1], m[2]), nil
		}
		return fmt.Sprintf("%s %s, %s", m[1], m[2], m[3]), nil
	}

	if m := nwDottedDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%s %d, %s", m[1], day, m[3]), nil
	}

	if m := nwLongDateRe.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s %s, %s", m[1], m[2], m[3]), nil
	}

	return "", &domain.ExtractionError{Field: "date"}
}

func (NeckOfTheWoods) Time(sel *goquery.Selection) string {
	return preferShowLine(sel.Text())
}

// Artists prefers link text over headings; pages list the bill as linked
// artist pages with headings as a fallback.
func (NeckOfTheWoods) Artists(sel *goquery.Selection) (string, error) {
	var artistText string

	sel.Find("a").EachWithBreak(func(i int, link *goquery.Selection) bool {
		text := strings.TrimSpace(link.Text())
		if text == "" || nwNavLinkRe.MatchString(text) {
			return true
		}
		artistText = text
		return false
	})

	if artistText == "" {
		sel.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(i int, heading *goquery.Selection) bool {
			text := strings.TrimSpace(heading.Text())
			if text == "" {
				return true
			}
			artistText = text
			return false
		})
	}

	if artistText == "" {
		return "", &domain.ExtractionError{Field: "artists"}
	}
	return artistText, nil
}

// URL prefers ticket and info links, falling back to any href that looks
// like an event page.
func (NeckOfTheWoods) URL(sel *goquery.Selection) (string, error) {
	var href string

	sel.Find("a[href]").EachWithBreak(func(i int, link *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(link.Text()))
		if strings.Contains(text, "more info") || strings.Contains(text, "buy tickets") || strings.Contains(text, "details") {
			href, _ = link.Attr("href")
			return false
		}
		return true
	})

	if href == "" {
		sel.Find("a[href]").EachWithBreak(func(i int, link *goquery.Selection) bool {
			h, _ := link.Attr("href")
			if strings.Contains(h, "event") || strings.Contains(h, "show") || strings.Contains(h, "concert") {
				href = h
				return false
			}
			return true
		})
	}

	if strings.TrimSpace(href) == "" {
		return "", &domain.ExtractionError{Field: "url"}
	}
	return href, nil
}

func (NeckOfTheWoods) Cost(sel *goquery.Selection) string {
	return sel.Text()
}

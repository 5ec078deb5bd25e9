package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/venuepulse/gigcal/internal/domain"
)

// Warfield extracts listings from The Warfield's events page. Dates are
// spelled out ("Wed, Jul 23, 2025"), times live in a multi-line block
// with separate doors and show lines, and the headliner and supporting
// acts sit in separate title/subtitle nodes. Event links are relative.
type Warfield struct{}

func (Warfield) Fragments(doc *goquery.Document) *goquery.Selection {
	return doc.Find("div.eventItem")
}

func (Warfield) Date(sel *goquery.Selection) (string, error) {
	text := strings.TrimSpace(sel.Find(".eventDate").First().Text())
	if text == "" {
		return "", &domain.ExtractionError{Field: "date"}
	}
	return text, nil
}

func (Warfield) Time(sel *goquery.Selection) string {
	return preferShowLine(sel.Find(".eventTime").First().Text())
}

// Artists joins the headliner and the support block so the shared cleaner
// splits them in display order.
func (Warfield) Artists(sel *goquery.Selection) (string, error) {
	headliner := strings.TrimSpace(sel.Find(".eventTitle a").First().Text())
	if headliner == "" {
		return "", &domain.ExtractionError{Field: "artists"}
	}

	support := strings.TrimSpace(sel.Find(".eventSubTitle").First().Text())
	if support == "" {
		return headliner, nil
	}
	return headliner + ", " + support, nil
}

func (Warfield) URL(sel *goquery.Selection) (string, error) {
	href, ok := sel.Find(".eventTitle a").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return "", &domain.ExtractionError{Field: "url"}
	}
	return href, nil
}

func (Warfield) Cost(sel *goquery.Selection) string {
	return sel.Find(".eventCost").First().Text()
}

package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/venuepulse/gigcal/internal/domain"
)

// BrickMortar extracts listings from Brick & Mortar Music Hall's calendar.
// The page uses Ticketweb calendar markup: one popup div per event, dates
// in "8.20" month.day shorthand, times like "8:00 pm", and absolute event
// URLs.
type BrickMortar struct{}

func (BrickMortar) Fragments(doc *goquery.Document) *goquery.Selection {
	return doc.Find("div.tw-cal-event-popup")
}

func (BrickMortar) Date(sel *goquery.Selection) (string, error) {
	text := strings.TrimSpace(sel.Find("span.tw-event-date").First().Text())
	if text == "" {
		return "", &domain.ExtractionError{Field: "date"}
	}
	return text, nil
}

func (BrickMortar) Time(sel *goquery.Selection) string {
	return sel.Find("span.tw-event-time-complete").First().Text()
}

func (BrickMortar) Artists(sel *goquery.Selection) (string, error) {
	text := strings.TrimSpace(sel.Find("div.tw-name a").First().Text())
	if text == "" {
		return "", &domain.ExtractionError{Field: "artists"}
	}
	return text, nil
}

func (BrickMortar) URL(sel *goquery.Selection) (string, error) {
	href, ok := sel.Find("div.tw-name a").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return "", &domain.ExtractionError{Field: "url"}
	}
	return href, nil
}

func (BrickMortar) Cost(sel *goquery.Selection) string {
	return sel.Text()
}

package domain

import "fmt"

// FetchError reports a network or HTTP-status failure fetching a venue's
// calendar page. It is surfaced to the per-venue caller; other venues keep
// going.
type FetchError struct {
	Venue string
	URL   string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.URL, e.Venue, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExtractionError reports a required field missing or unparseable on a
// single listing fragment. The fragment is skipped; the batch continues.
type ExtractionError struct {
	Field string
	Err   error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("extract %s: not found", e.Field)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// DateParseError reports date text that matched no recognized pattern or
// had out-of-range components.
type DateParseError struct {
	Input  string
	Reason string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("parse date %q: %s", e.Input, e.Reason)
}

// TimeParseError reports time text that looked like a time but had
// out-of-range components. Text with no time pattern at all is not an
// error; some listings are date-only.
type TimeParseError struct {
	Input  string
	Reason string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("parse time %q: %s", e.Input, e.Reason)
}

// StorageError reports a transaction or write failure in the store. It is
// fatal for that batch's persistence step and is not retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

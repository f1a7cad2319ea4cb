package models

import (
	"errors"
	"fmt"
)

// ErrNoRecords is reported by the CSV sink when asked to write an empty
// record set. Callers log it and continue; it never aborts a run.
var ErrNoRecords = errors.New("no records to write")

// FetchError reports a failed page fetch: a transport error or a non-2xx
// status. It is page-scoped; the search driver ends that term's pagination
// on the first one but keeps the records already collected.
// It implements the error interface and supports wrapping via Unwrap.
type FetchError struct {
	Fandom     string
	Page       int
	StatusCode int // 0 when the request never produced a response
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %q page %d: unexpected status %d", e.Fandom, e.Page, e.StatusCode)
	}
	return fmt.Sprintf("fetch %q page %d: %v", e.Fandom, e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

package types

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrMissingTitle     = errors.New("missing title")
)

// FetchError aborts a whole source for one run.
type FetchError struct {
	Source string
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s fetch %s: %v", e.Source, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// RecordParseError drops a single listing; siblings are still mapped.
type RecordParseError struct {
	Source string
	Index  int
	Err    error
}

func (e *RecordParseError) Error() string {
	return fmt.Sprintf("%s record %d: %v", e.Source, e.Index, e.Err)
}

func (e *RecordParseError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx response.
func StatusError(code int) error {
	return fmt.Errorf("%w %d", ErrUnexpectedStatus, code)
}

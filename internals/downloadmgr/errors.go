package downloadmgr

import (
	"fmt"
)

// NetworkError is returned when a request fails or the response has an error status
type NetworkError struct {
	// URL is the original (not proxied) url
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error while fetching %s: %s", e.URL, e.Err)
	}
	return fmt.Sprintf("invalid status code: %s from %s", e.Status, e.URL)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HashMismatchError is returned when the downloaded file's sha1 sum does not match the declared one
type HashMismatchError struct {
	FileName    string
	ExpectedSha string
	ActualSha   string
}

func (e *HashMismatchError) Error() string {
	return fmt.Sprintf(
		"file corrupted: %s sha1 is invalid.\n\texpected to be \"%s\"\n\tbut actually is \"%s\"",
		e.FileName,
		e.ExpectedSha,
		e.ActualSha,
	)
}

// IOError is returned for local filesystem failures
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

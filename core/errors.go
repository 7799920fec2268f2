package core

import (
	"errors"
	"fmt"
)

// ErrInvalidLink is returned when the input is not a well-formed share
// link. It is the only error that crosses the pipeline boundary; every
// later failure is converted into a fallback Outcome.
var ErrInvalidLink = errors.New("convopdf: not a valid share link")

// FetchError reports that every network path was exhausted. Its message
// is user-facing and does not expose relay internals; the underlying
// cause is available via Unwrap for logging.
type FetchError struct {
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("could not retrieve the shared conversation (%d endpoints tried)", e.Attempts)
}

func (e *FetchError) Unwrap() error { return e.Err }

// RenderError reports that the offscreen surface could not be created,
// did not finish loading within the timeout, or failed to capture.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "offscreen render failed: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error { return e.Err }

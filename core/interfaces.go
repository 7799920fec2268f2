// Package core defines the conversion pipeline for Convopdf.
// Each stage is a small interface so the CLI and tests wire
// implementations the same way.
package core

import "context"

// FetchResult holds the raw markup retrieved from the network.
// HTML is guaranteed non-empty by the fetcher.
type FetchResult struct {
	HTML       string
	Endpoint   string
	StatusCode int
}

// CapturedImage is a raster snapshot of the rendered conversation.
// Width and Height are the PNG pixel dimensions, both positive.
type CapturedImage struct {
	PNG    []byte
	Width  int
	Height int
}

// Outcome is the result of one conversion attempt: exactly one PDF,
// either the paginated conversation or the fallback document.
type Outcome struct {
	PDF      []byte
	Fallback bool
	Filename string
}

// Fetcher retrieves the raw markup of a share URL, trying a ranked
// list of network paths.
type Fetcher interface {
	Fetch(ctx context.Context, target string) (*FetchResult, error)
}

// Normalizer rewraps raw markup into a standalone, deterministically
// styled document. Normalize is total; Fragment reports whether a
// known conversation region was found.
type Normalizer interface {
	Normalize(html string) string
	Fragment(html string) (string, bool)
}

// Capturer materializes a document in an offscreen surface and
// rasterizes it.
type Capturer interface {
	Capture(ctx context.Context, doc string) (*CapturedImage, error)
}

// Paginator slices a captured image into fixed-size A4 pages.
type Paginator interface {
	Paginate(img *CapturedImage) ([]byte, error)
}

// DocRenderer produces a text-mode PDF from an extracted content
// fragment (the --text output path).
type DocRenderer interface {
	Render(fragment string, link string) ([]byte, error)
}

// FallbackFunc builds the instructional fallback PDF for a share URL.
// It has no external dependencies and cannot fail.
type FallbackFunc func(shareURL string) []byte

// Package fetch implements the Fetcher interface.
// It tries a ranked list of network paths to the same logical resource:
// the direct share URL first, then each configured relay, and finally
// one last-resort direct request with explicit browser-like headers.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/gaurav-prasanna/convopdf/config"
	"github.com/gaurav-prasanna/convopdf/core"
)

const (
	lastResortUserAgent = "convopdf/1.0 (+https://github.com/gaurav-prasanna/convopdf)"
	lastResortAccept    = "text/html,application/xhtml+xml"
)

// HTTPFetcher fetches the shared page over HTTP, short-circuiting on
// the first endpoint that returns usable content.
type HTTPFetcher struct {
	client *http.Client
	relays []string
}

// New creates an HTTPFetcher. The per-endpoint timeout and relay
// templates come from the configuration.
func New(cfg *config.Config) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: cfg.FetchTimeout},
		relays: cfg.RelayEndpoints,
	}
}

// Fetch retrieves the raw markup of target. It returns a *core.FetchError
// only when every path, including the last resort, has been exhausted.
// There are no retries or backoff beyond the ranked list itself.
func (f *HTTPFetcher) Fetch(ctx context.Context, target string) (*core.FetchResult, error) {
	endpoints := make([]string, 0, len(f.relays)+1)
	endpoints = append(endpoints, target)
	for _, tmpl := range f.relays {
		endpoints = append(endpoints, fmt.Sprintf(tmpl, url.QueryEscape(target)))
	}

	var lastErr error
	for _, endpoint := range endpoints {
		res, err := f.get(ctx, endpoint, false)
		if err != nil {
			logrus.WithError(err).Debug("fetch endpoint failed")
			lastErr = err
			continue
		}
		return res, nil
	}

	// Last resort: the direct URL again, with explicit headers.
	res, err := f.get(ctx, target, true)
	if err == nil {
		return res, nil
	}
	lastErr = err

	return nil, &core.FetchError{Attempts: len(endpoints) + 1, Err: lastErr}
}

// get performs a single GET. A non-2xx status or an empty body counts
// as a failed path: an empty payload can never render a useful document.
func (f *HTTPFetcher) get(ctx context.Context, endpoint string, explicitHeaders bool) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if explicitHeaders {
		req.Header.Set("User-Agent", lastResortUserAgent)
		req.Header.Set("Accept", lastResortAccept)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response body from %s", endpoint)
	}

	return &core.FetchResult{
		HTML:       string(body),
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
	}, nil
}

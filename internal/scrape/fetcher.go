package scrape

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

// Pages larger than this are truncated; contact signals live well within it.
const maxBodyBytes = 2 * 1024 * 1024

// DefaultUserAgent resembles a desktop Chrome build so basic bot filters
// serve the same markup a person would see.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Fetcher retrieves raw HTML over HTTP with a bounded timeout and a
// browser-like request identity. One attempt per call, no retries.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a Fetcher. A zero timeout falls back to 15s and an
// empty userAgent falls back to DefaultUserAgent.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Fetch performs a single GET and returns the response body. Network
// errors, timeouts, and non-2xx statuses all come back as errors; the
// caller treats every one of them as a failed scrape.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", eris.Wrap(err, "scrape: create request")
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Connection", "keep-alive")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", eris.Wrap(err, "scrape: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", eris.Wrap(err, "scrape: read body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", eris.Errorf("scrape: status %d", resp.StatusCode)
	}

	return string(body), nil
}

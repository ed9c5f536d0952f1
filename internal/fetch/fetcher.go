package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pageaudit/pageaudit/internal/config"
	"github.com/pageaudit/pageaudit/internal/model"
)

// Error is returned for any failure to obtain a page: malformed URL,
// connection failure, timeout, or a non-2xx status. It is fatal for the
// run; no partial report is produced after a fetch failure.
type Error struct {
	// URL is the requested URL.
	URL string

	// StatusCode is the HTTP status, 0 when no response was received.
	StatusCode int

	// Err is the underlying cause, nil for pure status failures.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Unwrap returns the underlying cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Fetcher retrieves pages via HTTP with a bounded timeout.
type Fetcher struct {
	// client performs the requests. Its timeout bounds the whole
	// exchange including body read.
	client *http.Client

	// userAgent is sent with every request. A descriptive User-Agent
	// lets site operators identify audit traffic in their logs.
	userAgent string

	// maxBodySize caps the number of body bytes read. Responses larger
	// than this are truncated to prevent memory exhaustion.
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the total request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum number of body bytes to read.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = size
	}
}

// New creates a Fetcher with the package defaults from config.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{Timeout: config.DefaultTimeout},
		userAgent:   config.DefaultUserAgent,
		maxBodySize: config.DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch performs a single GET and returns the page on a 2xx response.
// Every failure mode is reported as *Error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*model.PageDocument, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, &Error{URL: rawURL, Err: err}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &Error{URL: rawURL, Err: fmt.Errorf("unsupported scheme %q (must be http or https)", parsed.Scheme)}
	}
	if parsed.Host == "" {
		return nil, &Error{URL: rawURL, Err: fmt.Errorf("missing host")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, &Error{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort cleanup

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little so the connection can be reused, then fail.
		_, _ = io.CopyN(io.Discard, resp.Body, 512) //nolint:errcheck // Best effort drain
		return nil, &Error{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, &Error{URL: rawURL, StatusCode: resp.StatusCode, Err: err}
	}

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &model.PageDocument{
		URL:           finalURL,
		StatusCode:    resp.StatusCode,
		HTML:          string(body),
		ContentLength: len(body),
		FetchedAt:     time.Now(),
	}, nil
}

package model

import "time"

// PageDocument holds the raw HTML of a fetched page together with the
// HTTP metadata of the fetch. It is created once by the fetcher and is
// immutable afterwards; every downstream stage only reads from it.
type PageDocument struct {
	// URL is the final resolved URL after any redirects.
	URL string `json:"url"`

	// StatusCode is the HTTP status code of the final response.
	// The fetcher only produces documents for 2xx responses.
	StatusCode int `json:"status_code"`

	// HTML is the raw response body. It may be truncated if the
	// response exceeded the configured maximum body size.
	HTML string `json:"-"` // Excluded from JSON due to size

	// ContentLength is the number of HTML bytes actually read.
	ContentLength int `json:"content_length"`

	// FetchedAt is the timestamp when the page was retrieved.
	FetchedAt time.Time `json:"fetched_at"`
}

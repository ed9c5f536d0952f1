// Package fetch retrieves the raw HTML of a single page over HTTP.
//
// The fetcher performs exactly one blocking GET per audit. There are no
// retries: a failed fetch aborts the run and the operator re-runs
// manually. The request is bounded by a configurable timeout so that a
// hanging server cannot stall the pipeline indefinitely.
package fetch

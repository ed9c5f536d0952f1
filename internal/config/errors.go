package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoTarget is returned when no URL is specified.
	ErrNoTarget = errors.New("no target specified: provide a page URL as the argument")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the body size cap is not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")

	// ErrInvalidFormat is returned when the report format is not one of
	// html, markdown, or json.
	ErrInvalidFormat = errors.New("invalid report format: must be html, markdown, or json")

	// ErrConflictingOutputs is returned when both --stdout and --output
	// are specified. The report goes to exactly one destination.
	ErrConflictingOutputs = errors.New("conflicting outputs: --stdout and --output cannot be used together")

	// ErrConflictingReportFormats is returned when both --markdown and
	// --json are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --markdown and --json cannot be used together")
)

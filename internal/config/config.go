package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values follow the behavior of the original auditor where
// applicable and common web client practice otherwise.
const (
	// DefaultTimeout bounds the single page fetch. 20 seconds sits in
	// the middle of the 10-30s band that keeps total run time bounded
	// without failing slow-but-healthy servers.
	DefaultTimeout = 20 * time.Second

	// DefaultUserAgent identifies pageaudit in HTTP requests.
	// Using a descriptive User-Agent is good practice and allows
	// operators to identify audit traffic in their logs.
	DefaultUserAgent = "pageaudit/1.0 (+https://github.com/pageaudit/pageaudit)"

	// DefaultMaxBodySize limits the maximum response body size to read.
	// 5MB is sufficient for most HTML pages while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// AppName is the application name used for XDG directory paths.
	AppName = "pageaudit"
)

// ReportFormat selects the report output format.
type ReportFormat string

// Supported report formats. HTML is the default because the audit
// report is meant to be read in a browser with its example snippets.
const (
	FormatHTML     ReportFormat = "html"
	FormatMarkdown ReportFormat = "markdown"
	FormatJSON     ReportFormat = "json"
)

// Extension returns the file extension for the format, including the dot.
func (f ReportFormat) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	default:
		return ".html"
	}
}

// Config holds all options for one audit run.
// This struct is populated from CLI flags and the optional config file,
// then passed through the application via dependency injection rather
// than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., FetchConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant
// benefit.
type Config struct {
	// URL is the page to audit. Exactly one URL per invocation;
	// concurrent or batch audits are out of scope.
	URL string

	// Timeout is the total timeout for the page fetch.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with the request.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	MaxBodySize int64

	// Format selects the report output format.
	Format ReportFormat

	// ReportFile is the output file path for the report. When empty,
	// a deterministic name is derived from the URL and written to the
	// working directory.
	ReportFile string

	// ToStdout writes the report to stdout instead of a file.
	ToStdout bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches for .pageaudit in the current directory, the
	// XDG config directory, and the user's home directory.
	ConfigFilePath string

	// File holds the parsed configuration file contents, including
	// checklist overrides. May be nil when no file was found.
	File *File
}

// NewConfig creates a Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases; callers override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeout, body
// size cap). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		Format:      FormatHTML,
	}
}

// XDGConfigDir returns the XDG config directory for pageaudit.
// On Linux: ~/.config/pageaudit
// On macOS: ~/Library/Application Support/pageaudit
// On Windows: %APPDATA%\pageaudit
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any fetching begins.
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrNoTarget
	}

	// Timeout must be positive; zero timeout would disable the bound
	// on the only blocking operation in the pipeline.
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}

	switch c.Format {
	case FormatHTML, FormatMarkdown, FormatJSON:
	default:
		return ErrInvalidFormat
	}

	// A file path and stdout output are mutually exclusive.
	if c.ToStdout && c.ReportFile != "" {
		return ErrConflictingOutputs
	}

	return nil
}

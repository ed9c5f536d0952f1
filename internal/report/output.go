package report

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/pageaudit/pageaudit/internal/config"
)

// RenderError indicates a report could not be written to its destination.
type RenderError struct {
	// Path is the output path that failed.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to write report to %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// Filename derives a deterministic report filename from the audited URL,
// e.g. "example.com_blog_post_audit.html". The same URL and format always
// produce the same name so that repeated audits overwrite their own report.
func Filename(rawURL string, format config.ReportFormat) string {
	name := "page"

	if u, err := url.Parse(rawURL); err == nil {
		parts := make([]string, 0, 2)
		if u.Host != "" {
			parts = append(parts, u.Host)
		}
		if p := strings.Trim(u.Path, "/"); p != "" {
			parts = append(parts, p)
		}
		if len(parts) > 0 {
			name = strings.Join(parts, "_")
		}
	}

	return sanitizeFilename(name) + "_audit" + format.Extension()
}

// OutputPath joins the output directory with the derived filename.
// An empty dir resolves to the current working directory.
func OutputPath(dir, rawURL string, format config.ReportFormat) string {
	return filepath.Join(dir, Filename(rawURL, format))
}

// sanitizeFilename replaces characters that are unsafe in filenames.
// Everything outside [a-zA-Z0-9._-] becomes an underscore, and runs of
// underscores collapse so names stay readable.
func sanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastUnderscore := false
	for _, r := range name {
		safe := r == '.' || r == '-' ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if safe {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}

	return strings.Trim(b.String(), "_")
}

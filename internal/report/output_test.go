package report

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pageaudit/pageaudit/internal/config"
)

// TestFilename tests deterministic report filename derivation.
func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		format config.ReportFormat
		want   string
	}{
		{
			name:   "host only",
			url:    "https://example.com",
			format: config.FormatHTML,
			want:   "example.com_audit.html",
		},
		{
			name:   "host and path",
			url:    "https://example.com/blog/post",
			format: config.FormatHTML,
			want:   "example.com_blog_post_audit.html",
		},
		{
			name:   "markdown extension",
			url:    "https://example.com/about",
			format: config.FormatMarkdown,
			want:   "example.com_about_audit.md",
		},
		{
			name:   "json extension",
			url:    "https://example.com",
			format: config.FormatJSON,
			want:   "example.com_audit.json",
		},
		{
			name:   "trailing slash ignored",
			url:    "https://example.com/docs/",
			format: config.FormatHTML,
			want:   "example.com_docs_audit.html",
		},
		{
			name:   "port and query characters sanitized",
			url:    "https://example.com:8080/a?b=c",
			format: config.FormatHTML,
			want:   "example.com_8080_a_audit.html",
		},
		{
			name:   "unparseable URL falls back",
			url:    "://not a url",
			format: config.FormatHTML,
			want:   "page_audit.html",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Filename(tt.url, tt.format); got != tt.want {
				t.Errorf("Filename(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

// TestFilenameDeterministic tests that repeated derivations agree.
func TestFilenameDeterministic(t *testing.T) {
	t.Parallel()

	first := Filename("https://example.com/x/y", config.FormatHTML)
	second := Filename("https://example.com/x/y", config.FormatHTML)
	if first != second {
		t.Errorf("filenames differ: %q vs %q", first, second)
	}
}

// TestOutputPath tests directory joining.
func TestOutputPath(t *testing.T) {
	t.Parallel()

	got := OutputPath("reports", "https://example.com", config.FormatJSON)
	want := filepath.Join("reports", "example.com_audit.json")
	if got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}

	if got := OutputPath("", "https://example.com", config.FormatHTML); got != "example.com_audit.html" {
		t.Errorf("OutputPath with empty dir = %q", got)
	}
}

// TestRenderError tests the error wrapper.
func TestRenderError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := &RenderError{Path: "out/report.html", Err: cause}

	if !strings.Contains(err.Error(), "out/report.html") {
		t.Errorf("Error() = %q, want the path", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause through Unwrap")
	}
}

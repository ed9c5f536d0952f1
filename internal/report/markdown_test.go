package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pageaudit/pageaudit/internal/model"
)

// TestMarkdownWriter tests the Markdown report.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("renders all sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"# Page Audit Report",
			"https://example.com/blog/post",
			"## Verdict Summary",
			"## Page Structure",
			"### Heading Outline",
			"## Structured Data",
			"Article",
			"Missing required fields:",
			"## Recommendations",
			"## Suggested Fixes",
			"## Parse Warnings",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("includes verdict pie chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "```mermaid") {
			t.Error("expected a mermaid code block")
		}
		if !strings.Contains(output, "Verdict Distribution") {
			t.Error("expected the pie chart title")
		}
	})

	t.Run("failure alert", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// The test report has one failing block.
		if !strings.Contains(buf.String(), "[!CAUTION]") {
			t.Error("expected a caution alert for failing blocks")
		}
	})

	t.Run("all-pass tip", func(t *testing.T) {
		t.Parallel()

		report := model.NewAuditReport("https://example.com")
		report.StatusCode = 200
		report.Blocks = []model.SchemaBlock{{Type: "Article", Source: model.SourceJSONLD}}
		report.AddResult(model.ComplianceResult{
			Type:    "Article",
			Source:  model.SourceJSONLD,
			Verdict: model.VerdictPass,
		})

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "[!TIP]") {
			t.Error("expected a tip alert when everything passes")
		}
	})

	t.Run("no structured data caution", func(t *testing.T) {
		t.Parallel()

		report := model.NewAuditReport("https://example.com")
		report.StatusCode = 200

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "No structured data detected") {
			t.Error("expected the no-structured-data caution")
		}
		if !strings.Contains(output, "No structured-data blocks were found") {
			t.Error("expected the empty results note")
		}
	})

	t.Run("snippets in code blocks", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "```json") {
			t.Error("expected a JSON code block for the fix snippet")
		}
	})
}

// TestTruncateString tests the table cell truncation helper.
func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "short string unchanged", input: "hello", maxLen: 10, want: "hello"},
		{name: "exact length unchanged", input: "hello", maxLen: 5, want: "hello"},
		{name: "truncated with ellipsis", input: "hello world", maxLen: 8, want: "hello..."},
		{name: "tiny max length", input: "hello", maxLen: 2, want: "he"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := truncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/pageaudit/pageaudit/internal/model"
	"github.com/pageaudit/pageaudit/internal/schema"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.AuditReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeStructure(md, report)
	w.writeResults(md, report)
	w.writeRecommendations(md, report)
	w.writeFixes(md, report)
	w.writeWarnings(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with audit information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.AuditReport) {
	md.H1("Page Audit Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", "`" + report.URL + "`"},
			{"Audit Date", report.DateAudited.Format("2006-01-02 15:04:05 MST")},
			{"HTTP Status", strconv.Itoa(report.StatusCode)},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.AuditReport) string {
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	return "✅ Complete"
}

// writeSummary writes the verdict summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.AuditReport) {
	md.H2("Verdict Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Verdict", "Count"},
		Rows: [][]string{
			{"🟢 Pass", strconv.Itoa(report.PassCount)},
			{"🟡 Pass with warnings", strconv.Itoa(report.WarnCount)},
			{"🔴 Fail", strconv.Itoa(report.FailCount)},
			{"⚪ Unknown type", strconv.Itoa(report.UnknownCount)},
			{"**Total**", "**" + strconv.Itoa(report.TotalResults()) + "**"},
		},
	})
	md.PlainText("")

	if report.TotalResults() > 0 {
		w.writePieChart(md, report)
	}

	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart for the verdict distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.AuditReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Verdict Distribution"),
		piechart.WithShowData(true),
	)

	if report.PassCount > 0 {
		chart.LabelAndIntValue("Pass", uint64(report.PassCount))
	}
	if report.WarnCount > 0 {
		chart.LabelAndIntValue("Pass with warnings", uint64(report.WarnCount))
	}
	if report.FailCount > 0 {
		chart.LabelAndIntValue("Fail", uint64(report.FailCount))
	}
	if report.UnknownCount > 0 {
		chart.LabelAndIntValue("Unknown type", uint64(report.UnknownCount))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on verdict counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.AuditReport) {
	switch {
	case !report.HasStructuredData():
		md.Caution("No structured data detected on this page. Search engines cannot show rich results for it.")
	case report.FailCount > 0:
		md.Cautionf(
			"%d block(s) are missing required fields and will not qualify for rich results.",
			report.FailCount,
		)
	case report.WarnCount > 0:
		md.Warningf(
			"%d block(s) pass but are missing recommended fields.",
			report.WarnCount,
		)
	case report.UnknownCount > 0 && report.PassCount == 0:
		md.Note("Only unrecognized structured-data types were found.")
	default:
		md.Tip("All structured-data blocks pass their checklists.")
	}
	md.PlainText("")
}

// writeStructure writes the page structure section.
func (w *MarkdownWriter) writeStructure(md *markdown.Markdown, report *model.AuditReport) {
	if report.Structure == nil {
		return
	}
	s := report.Structure

	md.H2("Page Structure")
	md.PlainText("")

	title := s.Title
	if title == "" {
		title = "(none)"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Title", truncateString(title, 80)},
			{"Headings", strconv.Itoa(len(s.Headings))},
			{"Words", strconv.Itoa(s.WordCount)},
			{"Paragraphs", strconv.Itoa(s.ParagraphCount)},
			{"Lists", strconv.Itoa(s.ListCount)},
			{"Images", fmt.Sprintf("%d (%d with alt text)", s.ImageCount, s.ImagesWithAlt)},
			{"Links", strconv.Itoa(s.LinkCount)},
			{"FAQ sections", strconv.Itoa(len(s.FAQSections))},
		},
	})
	md.PlainText("")

	if len(s.Headings) > 0 {
		md.H3("Heading Outline")
		md.PlainText("")
		outline := make([]string, 0, len(s.Headings))
		for _, h := range s.Headings {
			outline = append(outline, fmt.Sprintf("H%d: %s", h.Level, truncateString(h.Text, 70)))
		}
		md.BulletList(outline...)
		md.PlainText("")
	}
}

// writeResults writes one section per compliance result, in block order.
func (w *MarkdownWriter) writeResults(md *markdown.Markdown, report *model.AuditReport) {
	md.H2("Structured Data")
	md.PlainText("")

	if len(report.Results) == 0 {
		md.PlainText("No structured-data blocks were found on this page.")
		md.PlainText("")
		return
	}

	for i, result := range report.Results {
		md.H3(fmt.Sprintf("%d. %s (%s)", i+1, result.Type, result.Source))
		md.PlainText("")
		md.PlainTextf("Verdict: %s %s", verdictEmoji(result.Verdict), result.Verdict.Label())
		md.PlainText("")

		if result.Location != "" {
			md.PlainTextf("Found at: %s", result.Location)
			md.PlainText("")
		}

		if len(result.PresentFields) > 0 {
			md.PlainText("Declared fields:")
			md.PlainText("")
			md.BulletList(result.PresentFields...)
			md.PlainText("")
		}

		if len(result.MissingRequired) > 0 {
			md.PlainText("Missing required fields:")
			md.PlainText("")
			md.BulletList(describeFields(result.Type, result.MissingRequired)...)
			md.PlainText("")
		}

		if len(result.MissingRecommended) > 0 {
			md.PlainText("Missing recommended fields:")
			md.PlainText("")
			md.BulletList(describeFields(result.Type, result.MissingRecommended)...)
			md.PlainText("")
		}
	}
}

// describeFields annotates field names with their checklist descriptions.
func describeFields(typeName string, fields []string) []string {
	described := make([]string, 0, len(fields))
	for _, field := range fields {
		if desc := schema.FieldDescription(typeName, field); desc != "" {
			described = append(described, fmt.Sprintf("`%s` - %s", field, desc))
		} else {
			described = append(described, "`"+field+"`")
		}
	}
	return described
}

// verdictEmoji maps a verdict to its summary-table emoji.
func verdictEmoji(v model.Verdict) string {
	switch v {
	case model.VerdictPass:
		return "🟢"
	case model.VerdictPassWithWarnings:
		return "🟡"
	case model.VerdictFail:
		return "🔴"
	default:
		return "⚪"
	}
}

// writeRecommendations writes the structural recommendations section.
func (w *MarkdownWriter) writeRecommendations(md *markdown.Markdown, report *model.AuditReport) {
	if len(report.Recommendations) == 0 {
		return
	}

	md.H2("Recommendations")
	md.PlainText("")
	md.BulletList(report.Recommendations...)
	md.PlainText("")
}

// writeFixes writes the suggested fixes with example snippets.
func (w *MarkdownWriter) writeFixes(md *markdown.Markdown, report *model.AuditReport) {
	if len(report.SuggestedFixes) == 0 {
		return
	}

	md.H2("Suggested Fixes")
	md.PlainText("")

	for _, fix := range report.SuggestedFixes {
		md.PlainText(fix.Description)
		md.PlainText("")
		syntax := markdown.SyntaxHighlightJSON
		if fix.Type == "" {
			// The generic fix ships a full script element.
			syntax = markdown.SyntaxHighlightHTML
		}
		md.CodeBlocks(syntax, fix.Snippet)
		md.PlainText("")
	}
}

// writeWarnings lists structured-data blocks that failed to decode.
func (w *MarkdownWriter) writeWarnings(md *markdown.Markdown, report *model.AuditReport) {
	if len(report.Warnings) == 0 {
		return
	}

	md.H2("Parse Warnings")
	md.PlainText("")

	rows := make([][]string, len(report.Warnings))
	for i, warning := range report.Warnings {
		rows[i] = []string{
			string(warning.Source),
			warning.Location,
			truncateString(warning.Message, 70),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Source", "Location", "Problem"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [pageaudit](https://github.com/pageaudit/pageaudit)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

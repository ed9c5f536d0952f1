package report

import (
	"bytes"
	"html/template"
	"io"
	"time"

	"github.com/pageaudit/pageaudit/internal/model"
	"github.com/pageaudit/pageaudit/internal/schema"
)

// HTMLWriter outputs reports as a standalone HTML page.
// This is the default format: the report is meant to be opened in a
// browser and shared with content editors who never touch JSON.
//
// Design decision: We use html/template rather than string concatenation
// because page content (titles, headings, type names) flows into the
// report verbatim and must be escaped. The contextual auto-escaping of
// html/template closes that injection path without per-field effort.
type HTMLWriter struct {
	baseWriter
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer) *HTMLWriter {
	return &HTMLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// htmlReport is the view model handed to the template. The template
// stays logic-free: every derived value is computed here.
type htmlReport struct {
	URL             string
	DateAudited     time.Time
	StatusCode      int
	ErrorMessage    string
	Structure       *model.StructureSummary
	Results         []htmlResult
	Recommendations []string
	Fixes           []model.SuggestedFix
	Warnings        []model.ParseWarning

	PassCount    int
	WarnCount    int
	FailCount    int
	UnknownCount int
	TotalResults int
	HasBlocks    bool
}

// htmlResult is one compliance result prepared for rendering.
type htmlResult struct {
	Index       int
	Type        string
	Source      model.SchemaSource
	Location    string
	Verdict     model.Verdict
	Label       string
	CSSClass    string
	Present     []string
	Required    []htmlField
	Recommended []htmlField
}

// htmlField is a missing field with its checklist description.
type htmlField struct {
	Name        string
	Description string
}

// Write renders the report as HTML.
func (w *HTMLWriter) Write(report *model.AuditReport) (int, error) {
	view := newHTMLReport(report)

	// Render into a buffer first so a template failure never leaves a
	// half-written report behind.
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, view); err != nil {
		return 0, err
	}

	n, err := w.output.Write(buf.Bytes())
	return n, err
}

// newHTMLReport converts an audit report into the template view model.
func newHTMLReport(report *model.AuditReport) htmlReport {
	view := htmlReport{
		URL:             report.URL,
		DateAudited:     report.DateAudited,
		StatusCode:      report.StatusCode,
		ErrorMessage:    report.ErrorMessage,
		Structure:       report.Structure,
		Recommendations: report.Recommendations,
		Fixes:           report.SuggestedFixes,
		Warnings:        report.Warnings,
		PassCount:       report.PassCount,
		WarnCount:       report.WarnCount,
		FailCount:       report.FailCount,
		UnknownCount:    report.UnknownCount,
		TotalResults:    report.TotalResults(),
		HasBlocks:       report.HasStructuredData(),
	}

	for i, result := range report.Results {
		view.Results = append(view.Results, htmlResult{
			Index:       i + 1,
			Type:        result.Type,
			Source:      result.Source,
			Location:    result.Location,
			Verdict:     result.Verdict,
			Label:       result.Verdict.Label(),
			CSSClass:    verdictClass(result.Verdict),
			Present:     result.PresentFields,
			Required:    describedFields(result.Type, result.MissingRequired),
			Recommended: describedFields(result.Type, result.MissingRecommended),
		})
	}

	return view
}

// describedFields pairs each field name with its checklist description.
func describedFields(typeName string, fields []string) []htmlField {
	described := make([]htmlField, 0, len(fields))
	for _, field := range fields {
		described = append(described, htmlField{
			Name:        field,
			Description: schema.FieldDescription(typeName, field),
		})
	}
	return described
}

// verdictClass maps a verdict to its CSS class.
func verdictClass(v model.Verdict) string {
	switch v {
	case model.VerdictPass:
		return "pass"
	case model.VerdictPassWithWarnings:
		return "warn"
	case model.VerdictFail:
		return "fail"
	default:
		return "unknown"
	}
}

// htmlTemplate is parsed once at package initialization.
// A parse error here is a programming bug, so Must is appropriate.
var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Page Audit Report - {{.URL}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f5f6f8; color: #1f2430; }
  .container { max-width: 920px; margin: 0 auto; padding: 24px; }
  header { background: #1f2430; color: #fff; padding: 24px; }
  header h1 { margin: 0 0 8px; font-size: 24px; }
  header .url { font-family: monospace; word-break: break-all; opacity: 0.85; }
  section { background: #fff; border-radius: 8px; padding: 20px 24px; margin-top: 20px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
  h2 { margin-top: 0; font-size: 18px; border-bottom: 1px solid #e3e6eb; padding-bottom: 8px; }
  table { border-collapse: collapse; width: 100%; }
  th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #edeff3; vertical-align: top; }
  th { color: #5a6272; font-weight: 600; font-size: 13px; }
  code, pre { font-family: "SF Mono", Consolas, monospace; font-size: 13px; }
  pre { background: #f0f2f5; border-radius: 6px; padding: 12px; overflow-x: auto; }
  .badge { display: inline-block; padding: 2px 10px; border-radius: 12px; font-size: 13px; font-weight: 600; }
  .badge.pass { background: #d8f3dc; color: #1b6b33; }
  .badge.warn { background: #fff3cd; color: #8a6d0b; }
  .badge.fail { background: #fcd5d5; color: #a12622; }
  .badge.unknown { background: #e3e6eb; color: #5a6272; }
  .counters { display: flex; gap: 16px; flex-wrap: wrap; }
  .counter { flex: 1; min-width: 120px; text-align: center; padding: 12px; border-radius: 8px; background: #f0f2f5; }
  .counter .num { font-size: 28px; font-weight: 700; display: block; }
  .result { border: 1px solid #e3e6eb; border-radius: 8px; padding: 16px; margin-top: 14px; }
  .result h3 { margin: 0 0 8px; font-size: 16px; }
  .meta { color: #5a6272; font-size: 13px; margin-bottom: 8px; }
  .outline { list-style: none; padding-left: 0; }
  .outline li { padding: 2px 0; }
  .error { background: #fcd5d5; color: #a12622; padding: 12px 16px; border-radius: 8px; margin-top: 20px; }
  footer { color: #5a6272; font-size: 13px; text-align: center; padding: 20px 0; }
</style>
</head>
<body>
<header>
  <div class="container">
    <h1>Page Audit Report</h1>
    <div class="url">{{.URL}}</div>
  </div>
</header>
<div class="container">

{{if .ErrorMessage}}
<div class="error">Audit error: {{.ErrorMessage}}</div>
{{end}}

<section>
  <h2>Summary</h2>
  <table>
    <tr><th>Audit date</th><td>{{.DateAudited.Format "2006-01-02 15:04:05 MST"}}</td></tr>
    <tr><th>HTTP status</th><td>{{.StatusCode}}</td></tr>
    <tr><th>Structured-data blocks</th><td>{{.TotalResults}}</td></tr>
  </table>
  <div class="counters" style="margin-top:16px">
    <div class="counter"><span class="num">{{.PassCount}}</span>Pass</div>
    <div class="counter"><span class="num">{{.WarnCount}}</span>With warnings</div>
    <div class="counter"><span class="num">{{.FailCount}}</span>Fail</div>
    <div class="counter"><span class="num">{{.UnknownCount}}</span>Unknown type</div>
  </div>
</section>

{{with .Structure}}
<section>
  <h2>Page Structure</h2>
  <table>
    <tr><th>Title</th><td>{{if .Title}}{{.Title}}{{else}}(none){{end}}</td></tr>
    <tr><th>Words</th><td>{{.WordCount}}</td></tr>
    <tr><th>Paragraphs</th><td>{{.ParagraphCount}}</td></tr>
    <tr><th>Lists</th><td>{{.ListCount}}</td></tr>
    <tr><th>Images</th><td>{{.ImageCount}} ({{.ImagesWithAlt}} with alt text)</td></tr>
    <tr><th>Links</th><td>{{.LinkCount}}</td></tr>
    <tr><th>FAQ sections</th><td>{{len .FAQSections}}</td></tr>
  </table>
  {{if .Headings}}
  <h2 style="margin-top:20px">Heading Outline</h2>
  <ul class="outline">
    {{range .Headings}}<li><code>H{{.Level}}</code> {{.Text}}</li>
    {{end}}
  </ul>
  {{end}}
</section>
{{end}}

<section>
  <h2>Structured Data</h2>
  {{if not .HasBlocks}}
  <p>No structured-data blocks were found on this page. Search engines
  cannot show rich results for it.</p>
  {{end}}
  {{range .Results}}
  <div class="result">
    <h3>{{.Index}}. {{.Type}} <span class="badge {{.CSSClass}}">{{.Label}}</span></h3>
    <div class="meta">{{.Source}}{{if .Location}} &middot; {{.Location}}{{end}}</div>
    {{if .Present}}
    <p>Declared fields:
      {{range $i, $f := .Present}}{{if $i}}, {{end}}<code>{{$f}}</code>{{end}}
    </p>
    {{end}}
    {{if .Required}}
    <table>
      <tr><th colspan="2">Missing required fields</th></tr>
      {{range .Required}}<tr><td><code>{{.Name}}</code></td><td>{{.Description}}</td></tr>
      {{end}}
    </table>
    {{end}}
    {{if .Recommended}}
    <table style="margin-top:8px">
      <tr><th colspan="2">Missing recommended fields</th></tr>
      {{range .Recommended}}<tr><td><code>{{.Name}}</code></td><td>{{.Description}}</td></tr>
      {{end}}
    </table>
    {{end}}
  </div>
  {{end}}
</section>

{{if .Recommendations}}
<section>
  <h2>Recommendations</h2>
  <ul>
    {{range .Recommendations}}<li>{{.}}</li>
    {{end}}
  </ul>
</section>
{{end}}

{{if .Fixes}}
<section>
  <h2>Suggested Fixes</h2>
  {{range .Fixes}}
  <p>{{.Description}}</p>
  <pre>{{.Snippet}}</pre>
  {{end}}
</section>
{{end}}

{{if .Warnings}}
<section>
  <h2>Parse Warnings</h2>
  <table>
    <tr><th>Source</th><th>Location</th><th>Problem</th></tr>
    {{range .Warnings}}<tr><td>{{.Source}}</td><td>{{.Location}}</td><td>{{.Message}}</td></tr>
    {{end}}
  </table>
</section>
{{end}}

<footer>Report generated by pageaudit</footer>
</div>
</body>
</html>
`))

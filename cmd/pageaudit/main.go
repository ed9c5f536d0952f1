// Package main provides the entry point for the pageaudit CLI.
//
// pageaudit audits a single web page for content structure and
// Schema.org structured-data compliance, then renders an HTML,
// Markdown, or JSON report with remediation suggestions.
//
// Usage:
//
//	pageaudit audit <url>
//	pageaudit types
//
// See --help for all available options.
package main

// main is the entry point for pageaudit.
func main() {
	Execute()
}

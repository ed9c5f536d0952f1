// Package analyze derives structural metrics from a fetched page.
//
// The analyzer walks the parsed document once and collects the heading
// outline plus content counts (words, paragraphs, lists, images, links).
// Parsing is best-effort: malformed HTML never fails the analysis, it
// just yields whatever structure could be recovered. The same document
// always produces an identical summary.
package analyze

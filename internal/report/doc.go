// Package report renders audit results for people and tools.
//
// Three writers share one interface: HTML for the default report read
// in a browser, Markdown for documentation and sharing, and JSON for
// programmatic consumers. Writers take a completed AuditReport and
// never mutate it, so a report can be rendered in several formats from
// one audit run.
package report

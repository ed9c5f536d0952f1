// Package model defines the core data structures used throughout pageaudit.
//
// This package contains the following main types:
//   - PageDocument: The raw fetched page and its HTTP metadata
//   - StructureSummary: Heading outline and content metrics for one page
//   - SchemaBlock: A single structured-data declaration found in the page
//   - ComplianceResult: The checklist verdict for one SchemaBlock
//   - AuditReport: The aggregate result of a full audit run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (analyze, schema, pipeline, report) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
// Nothing in this package is persisted: an AuditReport lives for exactly
// one invocation and is discarded after rendering.
package model

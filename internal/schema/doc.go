// Package schema finds and evaluates Schema.org structured data.
//
// The extractor scans a page for JSON-LD payloads and microdata
// attributes and turns each into a SchemaBlock. The checklist holds the
// required/recommended field table per type and evaluates blocks
// against it, producing one ComplianceResult per block.
//
// Design decision: Extraction and evaluation live in one package
// because they share the notion of a "type name" (including its
// normalization from schema.org URLs) and because the checklist is the
// only consumer of extracted blocks. Both halves are pure functions over
// their inputs apart from the process-wide default table.
package schema

// Package pipeline orchestrates the audit stages.
//
// An audit is a fixed, synchronous sequence: fetch, structure analysis,
// schema extraction, checklist evaluation. Each stage is a Step that
// writes its output into the shared AuditReport; the Pipeline executes
// them exactly once, in order, with no branching back. Nothing runs
// concurrently: each step blocks until complete before the next begins.
package pipeline

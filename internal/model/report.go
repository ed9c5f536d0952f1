package model

import "time"

// ComplianceResult is the checklist outcome for one SchemaBlock.
// Results are emitted in the same order the blocks were discovered,
// so repeated runs over the same document produce identical output.
type ComplianceResult struct {
	// Type is the declared type name as found in the page.
	Type string `json:"type"`

	// Source is the embedding kind of the evaluated block.
	Source SchemaSource `json:"source"`

	// Verdict is the classification of this block.
	Verdict Verdict `json:"verdict"`

	// VerdictText is the human-readable verdict for serialization.
	VerdictText string `json:"verdict_text"`

	// PresentFields lists the declared field names, in checklist order
	// for known types and declaration order for unknown types.
	PresentFields []string `json:"present_fields,omitempty"`

	// MissingRequired lists required fields absent from the block.
	// Non-empty exactly when Verdict is VerdictFail.
	MissingRequired []string `json:"missing_required,omitempty"`

	// MissingRecommended lists recommended fields absent from the block.
	MissingRecommended []string `json:"missing_recommended,omitempty"`

	// Location identifies where the block was found in the page.
	Location string `json:"location,omitempty"`
}

// SuggestedFix is a remediation suggestion with a static example snippet.
// Snippets are fixed lookups by type and field, never generated.
type SuggestedFix struct {
	// Type is the Schema.org type the fix applies to. Empty for the
	// generic "add structured data" fix on pages with no blocks at all.
	Type string `json:"type,omitempty"`

	// Field is the missing field the fix addresses, if any.
	Field string `json:"field,omitempty"`

	// Description explains what to add and why.
	Description string `json:"description"`

	// Snippet is an example JSON-LD fragment to copy from.
	Snippet string `json:"snippet"`
}

// AuditReport is the aggregate result of one audit run.
//
// Design decision: We use a single struct that every pipeline step
// writes into rather than threading separate values between stages.
// This keeps the step interface uniform and makes the report the one
// place that knows the full outcome of a run.
type AuditReport struct {
	// URL is the audited page URL as given by the operator.
	URL string `json:"url"`

	// DateAudited is when the audit was performed.
	DateAudited time.Time `json:"date_audited"`

	// StatusCode is the HTTP status of the fetch, 0 before fetching.
	StatusCode int `json:"status_code,omitempty"`

	// Document is the fetched page. Populated by the fetch step.
	Document *PageDocument `json:"-"` // Excluded from JSON due to size

	// Structure is the structural summary. Populated by the structure step.
	Structure *StructureSummary `json:"structure,omitempty"`

	// Blocks contains the structured-data blocks in discovery order.
	Blocks []SchemaBlock `json:"schema_blocks,omitempty"`

	// Results contains one ComplianceResult per block, in block order.
	Results []ComplianceResult `json:"results,omitempty"`

	// Warnings lists structured-data blocks that failed to decode.
	Warnings []ParseWarning `json:"warnings,omitempty"`

	// Recommendations are structural remediation suggestions,
	// e.g. "Add an H1 heading".
	Recommendations []string `json:"recommendations,omitempty"`

	// SuggestedFixes are example-snippet fixes for missing required
	// fields, plus the generic fix when no structured data was found.
	SuggestedFixes []SuggestedFix `json:"suggested_fixes,omitempty"`

	// === Verdict Summary ===

	// PassCount is the number of blocks with verdict pass.
	PassCount int `json:"pass_count"`

	// WarnCount is the number of blocks with verdict pass_with_warnings.
	WarnCount int `json:"warn_count"`

	// FailCount is the number of blocks with verdict fail.
	FailCount int `json:"fail_count"`

	// UnknownCount is the number of blocks with an unrecognized type.
	UnknownCount int `json:"unknown_count"`

	// PerformedSteps lists the pipeline steps that actually ran.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error contains the error that aborted the run, if any.
	Error error `json:"-"` // Excluded from JSON

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"` //nolint:tagliatelle // error is conventional
}

// NewAuditReport creates a report for the given URL with the audit
// timestamp set to now.
func NewAuditReport(url string) *AuditReport {
	return &AuditReport{
		URL:         url,
		DateAudited: time.Now(),
	}
}

// AddResult appends a compliance result and updates the verdict counters.
func (r *AuditReport) AddResult(result ComplianceResult) {
	r.Results = append(r.Results, result)

	switch result.Verdict {
	case VerdictPass:
		r.PassCount++
	case VerdictPassWithWarnings:
		r.WarnCount++
	case VerdictFail:
		r.FailCount++
	case VerdictUnknownType:
		r.UnknownCount++
	}
}

// AddWarning records a skipped structured-data block.
func (r *AuditReport) AddWarning(warning ParseWarning) {
	r.Warnings = append(r.Warnings, warning)
}

// AddRecommendation appends a structural recommendation, skipping
// exact duplicates.
func (r *AuditReport) AddRecommendation(text string) {
	for _, existing := range r.Recommendations {
		if existing == text {
			return
		}
	}
	r.Recommendations = append(r.Recommendations, text)
}

// AddFix appends a suggested fix.
func (r *AuditReport) AddFix(fix SuggestedFix) {
	r.SuggestedFixes = append(r.SuggestedFixes, fix)
}

// HasStructuredData reports whether any structured-data block was found.
func (r *AuditReport) HasStructuredData() bool {
	return len(r.Blocks) > 0
}

// TotalResults returns the number of compliance results.
func (r *AuditReport) TotalResults() int {
	return len(r.Results)
}

// HasFailures reports whether any block failed its required checklist.
func (r *AuditReport) HasFailures() bool {
	return r.FailCount > 0
}

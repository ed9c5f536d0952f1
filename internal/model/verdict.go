package model

// Verdict classifies one structured-data block against the checklist.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// the wire format used in reports.
type Verdict int

const (
	// VerdictPass means all required and recommended fields are present.
	VerdictPass Verdict = iota

	// VerdictPassWithWarnings means all required fields are present but
	// one or more recommended fields are missing.
	VerdictPassWithWarnings

	// VerdictFail means one or more required fields are missing.
	VerdictFail

	// VerdictUnknownType means the declared type is absent from the
	// checklist table. No field diff is computed for unknown types;
	// the block is reported as-is rather than treated as an error.
	VerdictUnknownType
)

// String returns the canonical textual form of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "pass"
	case VerdictPassWithWarnings:
		return "pass_with_warnings"
	case VerdictFail:
		return "fail"
	case VerdictUnknownType:
		return "unknown_type"
	default:
		return "unknown"
	}
}

// Label returns a short human-readable label for report headings.
func (v Verdict) Label() string {
	switch v {
	case VerdictPass:
		return "Pass"
	case VerdictPassWithWarnings:
		return "Pass with warnings"
	case VerdictFail:
		return "Fail"
	case VerdictUnknownType:
		return "Unknown type"
	default:
		return "Unknown"
	}
}

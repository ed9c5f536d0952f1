package schema

import (
	"sort"

	"golang.org/x/text/cases"

	"github.com/pageaudit/pageaudit/internal/model"
)

// FieldRequirement is the checklist row for one Schema.org type.
// Field order inside the slices is the order missing fields are
// reported in, so reports stay deterministic.
type FieldRequirement struct {
	// Required are fields whose absence fails the block.
	Required []string

	// Recommended are fields whose absence only warns.
	Recommended []string
}

// defaultChecklist is the built-in requirement table.
//
// The required/recommended split is domain knowledge, not derivable
// from parsing: it follows Google's rich-result guidance for the types
// a content audit most often encounters. Operators extend or replace
// entries via the checklist section of the config file.
var defaultChecklist = map[string]FieldRequirement{
	"Article": {
		Required:    []string{"headline", "author", "datePublished"},
		Recommended: []string{"description", "image", "publisher"},
	},
	"Product": {
		Required:    []string{"name", "description", "offers"},
		Recommended: []string{"image", "brand", "review"},
	},
	"Organization": {
		Required:    []string{"name", "url"},
		Recommended: []string{"logo", "contactPoint", "address"},
	},
	"WebPage": {
		Required:    []string{"name", "description"},
		Recommended: []string{"publisher", "dateModified"},
	},
	"FAQPage": {
		Required:    []string{"mainEntity"},
		Recommended: []string{"description"},
	},
}

// foldCaser performs Unicode case folding for the case-insensitive
// type lookup. Folding handles cases simple lowercasing misses.
var foldCaser = cases.Fold()

// Checklist maps Schema.org type names to their field requirements.
// Lookup is case-insensitive; the canonical spelling is the one the
// entry was registered under.
type Checklist struct {
	// entries maps canonical type names to requirements.
	entries map[string]FieldRequirement

	// folded maps case-folded names to canonical names.
	folded map[string]string
}

// NewChecklist creates a checklist preloaded with the built-in table.
func NewChecklist() *Checklist {
	c := &Checklist{
		entries: make(map[string]FieldRequirement, len(defaultChecklist)),
		folded:  make(map[string]string, len(defaultChecklist)),
	}
	for name, req := range defaultChecklist {
		c.Set(name, req)
	}
	return c
}

// Set registers or replaces the requirements for a type.
// Replacing an existing entry under a differently-cased name keeps a
// single entry: the folded key wins, the new spelling becomes canonical.
func (c *Checklist) Set(name string, req FieldRequirement) {
	key := foldCaser.String(name)
	if existing, ok := c.folded[key]; ok && existing != name {
		delete(c.entries, existing)
	}
	c.folded[key] = name
	c.entries[name] = req
}

// Lookup finds the requirements for a type name, ignoring case.
// It returns the canonical spelling alongside the requirements.
func (c *Checklist) Lookup(name string) (string, FieldRequirement, bool) {
	canonical, ok := c.folded[foldCaser.String(name)]
	if !ok {
		return "", FieldRequirement{}, false
	}
	return canonical, c.entries[canonical], true
}

// Types returns the canonical type names in sorted order.
func (c *Checklist) Types() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Requirements returns the requirement row for a canonical type name.
func (c *Checklist) Requirements(name string) FieldRequirement {
	return c.entries[name]
}

// Evaluate compares one block against the checklist and returns its
// compliance result. The function is pure: evaluating the same block
// twice yields identical results.
//
// Verdict rules:
//   - fail when any required field is missing
//   - pass_with_warnings when only recommended fields are missing
//   - pass when nothing is missing
//   - unknown_type when the type is absent from the table (no field diff)
func (c *Checklist) Evaluate(block model.SchemaBlock) model.ComplianceResult {
	result := model.ComplianceResult{
		Type:          block.Type,
		Source:        block.Source,
		Location:      block.Location,
		PresentFields: sortedFields(block.Fields),
	}

	_, req, ok := c.Lookup(block.Type)
	if !ok {
		result.Verdict = model.VerdictUnknownType
		result.VerdictText = result.Verdict.String()
		return result
	}

	for _, field := range req.Required {
		if !block.HasField(field) {
			result.MissingRequired = append(result.MissingRequired, field)
		}
	}
	for _, field := range req.Recommended {
		if !block.HasField(field) {
			result.MissingRecommended = append(result.MissingRecommended, field)
		}
	}

	switch {
	case len(result.MissingRequired) > 0:
		result.Verdict = model.VerdictFail
	case len(result.MissingRecommended) > 0:
		result.Verdict = model.VerdictPassWithWarnings
	default:
		result.Verdict = model.VerdictPass
	}
	result.VerdictText = result.Verdict.String()

	return result
}

// EvaluateAll evaluates blocks in their discovery order and returns the
// results in the same order.
func (c *Checklist) EvaluateAll(blocks []model.SchemaBlock) []model.ComplianceResult {
	results := make([]model.ComplianceResult, 0, len(blocks))
	for _, block := range blocks {
		results = append(results, c.Evaluate(block))
	}
	return results
}

// sortedFields returns the field names of a block in sorted order so
// that reports never depend on map iteration order.
func sortedFields(fields map[string]bool) []string {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

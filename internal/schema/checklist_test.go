package schema

import (
	"reflect"
	"testing"

	"github.com/pageaudit/pageaudit/internal/model"
)

// block builds a JSON-LD block with the given type and fields.
func block(typeName string, fields ...string) model.SchemaBlock {
	m := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f] = true
	}
	return model.SchemaBlock{
		Type:     typeName,
		Source:   model.SourceJSONLD,
		Fields:   m,
		Location: "json-ld script #1",
	}
}

// TestChecklistEvaluate tests the verdict rules.
func TestChecklistEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		block           model.SchemaBlock
		wantVerdict     model.Verdict
		wantMissingReq  []string
		wantMissingRec  []string
	}{
		{
			name:        "article with all fields passes",
			block:       block("Article", "headline", "author", "datePublished", "description", "image", "publisher"),
			wantVerdict: model.VerdictPass,
		},
		{
			name:           "article with required only warns",
			block:          block("Article", "headline", "author", "datePublished"),
			wantVerdict:    model.VerdictPassWithWarnings,
			wantMissingRec: []string{"description", "image", "publisher"},
		},
		{
			name:           "product missing required fails",
			block:          block("Product", "name", "price"),
			wantVerdict:    model.VerdictFail,
			wantMissingReq: []string{"description", "offers"},
			wantMissingRec: []string{"image", "brand", "review"},
		},
		{
			name:           "known type with no fields fails",
			block:          block("Organization"),
			wantVerdict:    model.VerdictFail,
			wantMissingReq: []string{"name", "url"},
			wantMissingRec: []string{"logo", "contactPoint", "address"},
		},
		{
			name:        "unknown type gets no field diff",
			block:       block("Recipe", "name", "recipeIngredient"),
			wantVerdict: model.VerdictUnknownType,
		},
	}

	checklist := NewChecklist()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := checklist.Evaluate(tt.block)

			if result.Verdict != tt.wantVerdict {
				t.Errorf("Verdict = %v, want %v", result.Verdict, tt.wantVerdict)
			}
			if result.VerdictText != tt.wantVerdict.String() {
				t.Errorf("VerdictText = %q, want %q", result.VerdictText, tt.wantVerdict.String())
			}
			if !reflect.DeepEqual(result.MissingRequired, tt.wantMissingReq) {
				t.Errorf("MissingRequired = %v, want %v", result.MissingRequired, tt.wantMissingReq)
			}
			if !reflect.DeepEqual(result.MissingRecommended, tt.wantMissingRec) {
				t.Errorf("MissingRecommended = %v, want %v", result.MissingRecommended, tt.wantMissingRec)
			}
		})
	}
}

// TestChecklistCaseInsensitiveLookup tests that type matching ignores case.
func TestChecklistCaseInsensitiveLookup(t *testing.T) {
	t.Parallel()

	checklist := NewChecklist()

	tests := []struct {
		name          string
		lookup        string
		wantCanonical string
	}{
		{name: "exact", lookup: "Article", wantCanonical: "Article"},
		{name: "lowercase", lookup: "article", wantCanonical: "Article"},
		{name: "uppercase", lookup: "FAQPAGE", wantCanonical: "FAQPage"},
		{name: "mixed", lookup: "webpage", wantCanonical: "WebPage"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			canonical, _, ok := checklist.Lookup(tt.lookup)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.lookup)
			}
			if canonical != tt.wantCanonical {
				t.Errorf("canonical = %q, want %q", canonical, tt.wantCanonical)
			}
		})
	}

	if _, _, ok := checklist.Lookup("Recipe"); ok {
		t.Error("Lookup(Recipe) should not be found in the default table")
	}
}

// TestChecklistEvaluateCaseInsensitive tests that a differently-cased
// declared type still evaluates against its checklist entry.
func TestChecklistEvaluateCaseInsensitive(t *testing.T) {
	t.Parallel()

	checklist := NewChecklist()
	result := checklist.Evaluate(block("article", "headline"))

	if result.Verdict != model.VerdictFail {
		t.Errorf("Verdict = %v, want fail", result.Verdict)
	}
	if len(result.MissingRequired) != 2 {
		t.Errorf("MissingRequired = %v, want author and datePublished", result.MissingRequired)
	}
}

// TestChecklistSet tests overrides and new entries.
func TestChecklistSet(t *testing.T) {
	t.Parallel()

	t.Run("adds a new type", func(t *testing.T) {
		t.Parallel()

		checklist := NewChecklist()
		checklist.Set("Recipe", FieldRequirement{
			Required:    []string{"name", "recipeIngredient"},
			Recommended: []string{"image", "cookTime"},
		})

		result := checklist.Evaluate(block("Recipe", "name"))
		if result.Verdict != model.VerdictFail {
			t.Errorf("Verdict = %v, want fail", result.Verdict)
		}
		if !reflect.DeepEqual(result.MissingRequired, []string{"recipeIngredient"}) {
			t.Errorf("MissingRequired = %v, want [recipeIngredient]", result.MissingRequired)
		}
	})

	t.Run("replaces a built-in type", func(t *testing.T) {
		t.Parallel()

		checklist := NewChecklist()
		checklist.Set("Article", FieldRequirement{
			Required: []string{"headline"},
		})

		result := checklist.Evaluate(block("Article", "headline"))
		if result.Verdict != model.VerdictPass {
			t.Errorf("Verdict = %v, want pass after override", result.Verdict)
		}
	})

	t.Run("re-cased replacement keeps one entry", func(t *testing.T) {
		t.Parallel()

		checklist := NewChecklist()
		before := len(checklist.Types())

		checklist.Set("ARTICLE", FieldRequirement{Required: []string{"headline"}})

		if got := len(checklist.Types()); got != before {
			t.Errorf("len(Types()) = %d, want %d", got, before)
		}
		canonical, _, ok := checklist.Lookup("article")
		if !ok || canonical != "ARTICLE" {
			t.Errorf("canonical = %q, want ARTICLE", canonical)
		}
	})
}

// TestChecklistTypes tests the sorted type listing.
func TestChecklistTypes(t *testing.T) {
	t.Parallel()

	got := NewChecklist().Types()
	want := []string{"Article", "FAQPage", "Organization", "Product", "WebPage"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Types() = %v, want %v", got, want)
	}
}

// TestChecklistEvaluateAll tests order preservation.
func TestChecklistEvaluateAll(t *testing.T) {
	t.Parallel()

	checklist := NewChecklist()
	blocks := []model.SchemaBlock{
		block("Article", "headline", "author", "datePublished"),
		block("Product", "name"),
		block("Recipe", "name"),
	}

	results := checklist.EvaluateAll(blocks)
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	if results[0].Type != "Article" || results[1].Type != "Product" || results[2].Type != "Recipe" {
		t.Errorf("result order = %q, %q, %q", results[0].Type, results[1].Type, results[2].Type)
	}
}

// TestChecklistEvaluateDeterministic tests that evaluating the same
// block twice yields identical output.
func TestChecklistEvaluateDeterministic(t *testing.T) {
	t.Parallel()

	checklist := NewChecklist()
	b := block("Product", "name", "brand", "image")

	first := checklist.Evaluate(b)
	second := checklist.Evaluate(b)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

package schema

import (
	"fmt"

	"github.com/pageaudit/pageaudit/internal/model"
)

// fieldDescriptions explains what each checklist field carries.
// Shown in the report's field tables so readers don't have to look up
// schema.org documentation.
var fieldDescriptions = map[string]map[string]string{
	"Article": {
		"headline":      "Main title of the article",
		"author":        "Author of the article (person or organization)",
		"datePublished": "Publication date of the article",
		"description":   "Short description of the article",
		"image":         "Primary image of the article",
		"publisher":     "Publisher of the article",
	},
	"Product": {
		"name":        "Name of the product",
		"description": "Detailed description of the product",
		"offers":      "Offer information (price, availability)",
		"image":       "Photo of the product",
		"brand":       "Brand of the product",
		"review":      "Reviews of the product",
	},
	"Organization": {
		"name":         "Name of the organization",
		"url":          "Home page of the organization",
		"logo":         "Logo of the organization",
		"contactPoint": "Contact information",
		"address":      "Address of the organization",
	},
	"WebPage": {
		"name":         "Title of the page",
		"description":  "Description of the page content",
		"publisher":    "Publisher of the page",
		"dateModified": "Date of the last modification",
	},
	"FAQPage": {
		"mainEntity":  "List of questions and answers",
		"description": "General description of the FAQ section",
	},
}

// exampleSnippets holds static JSON-LD fragments per type and field.
// Snippets are fixed lookups, never generated from page content.
var exampleSnippets = map[string]map[string]string{
	"Article": {
		"headline":      `{"@type": "Article", "headline": "Article title"}`,
		"author":        `{"@type": "Article", "author": {"@type": "Person", "name": "Jane Doe"}}`,
		"datePublished": `{"@type": "Article", "datePublished": "2024-01-01"}`,
	},
	"Product": {
		"name":        `{"@type": "Product", "name": "Product name"}`,
		"description": `{"@type": "Product", "description": "Detailed product description"}`,
		"offers":      `{"@type": "Product", "offers": {"@type": "Offer", "price": "99.99", "priceCurrency": "USD"}}`,
	},
	"Organization": {
		"name": `{"@type": "Organization", "name": "Organization name"}`,
		"url":  `{"@type": "Organization", "url": "https://www.example.com"}`,
	},
	"WebPage": {
		"name":        `{"@type": "WebPage", "name": "Page title"}`,
		"description": `{"@type": "WebPage", "description": "Page description"}`,
	},
	"FAQPage": {
		"mainEntity": `{
  "@type": "FAQPage",
  "mainEntity": [{
    "@type": "Question",
    "name": "Question?",
    "acceptedAnswer": {
      "@type": "Answer",
      "text": "Answer."
    }
  }]
}`,
	},
}

// noSchemaSnippet is the baseline JSON-LD block suggested when a page
// declares no structured data at all.
const noSchemaSnippet = `<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "WebPage",
  "name": "Page title",
  "description": "Page description",
  "publisher": {
    "@type": "Organization",
    "name": "Organization name",
    "logo": {
      "@type": "ImageObject",
      "url": "Logo URL"
    }
  },
  "dateModified": "2024-01-01"
}
</script>`

// FieldDescription returns the description for a type/field pair, or
// an empty string when none is known.
func FieldDescription(typeName, field string) string {
	return fieldDescriptions[typeName][field]
}

// ExampleFix builds a suggested fix for a missing required field.
// The second return value is false when no snippet exists for the pair;
// such fields still appear in the missing list, just without a snippet.
func ExampleFix(typeName, field string) (model.SuggestedFix, bool) {
	snippet, ok := exampleSnippets[typeName][field]
	if !ok {
		return model.SuggestedFix{}, false
	}
	return model.SuggestedFix{
		Type:        typeName,
		Field:       field,
		Description: fmt.Sprintf("Add the required field %q to the %s block", field, typeName),
		Snippet:     snippet,
	}, true
}

// NoSchemaFix returns the generic fix suggested when the page contains
// no structured data.
func NoSchemaFix() model.SuggestedFix {
	return model.SuggestedFix{
		Description: "Add basic Schema.org structured data",
		Snippet:     noSchemaSnippet,
	}
}

package analyze

import "github.com/pageaudit/pageaudit/internal/model"

// Content thresholds for structural recommendations.
// These mirror common content-quality guidance: at least one H1, a few
// paragraphs of real text, and a 300-word floor below which a page is
// unlikely to answer a reader's question.
const (
	minParagraphs = 3
	minWords      = 300
	minLinks      = 3
	maxH1PerPage  = 1
)

// Recommendations derives structural remediation suggestions from a
// summary. hasStructuredData reports whether any Schema.org block was
// found on the page, which suppresses or adds the structured-data hint.
//
// The function is pure: the same inputs always yield the same
// suggestions in the same order.
func Recommendations(summary *model.StructureSummary, hasStructuredData bool) []string {
	var recs []string

	switch h1 := summary.HeadingCount(1); {
	case h1 == 0:
		recs = append(recs, "Add an H1 heading")
	case h1 > maxH1PerPage:
		recs = append(recs, "Use only one H1 heading per page")
	}

	if summary.HeadingCount(2) == 0 {
		recs = append(recs, "Add H2 headings to structure the content")
	}

	if !hasStructuredData {
		recs = append(recs, "Add Schema.org structured data so machines can understand the page")
	}

	if summary.ParagraphCount < minParagraphs {
		recs = append(recs, "Expand the page content with more paragraphs")
	}

	if summary.ListCount == 0 {
		recs = append(recs, "Add bulleted or numbered lists for readability")
	}

	if summary.ImageCount == 0 {
		recs = append(recs, "Add images to enrich the content visually")
	} else if summary.ImagesWithAlt < summary.ImageCount {
		recs = append(recs, "Add alt text to all images")
	}

	if summary.WordCount < minWords {
		recs = append(recs, "Expand the content: aim for at least 300 words")
	}

	if !summary.HasFAQSection() {
		recs = append(recs, "Add an FAQ section with frequently asked questions")
	}

	if summary.LinkCount < minLinks {
		recs = append(recs, "Add more internal links to related content")
	}

	return recs
}

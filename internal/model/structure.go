package model

// Heading is a single heading element found in the page, in document order.
type Heading struct {
	// Level is the heading level, 1 through 6.
	Level int `json:"level"`

	// Text is the trimmed text content of the heading.
	Text string `json:"text"`
}

// StructureSummary holds the structural and textual metrics derived from
// one PageDocument. It is computed once by the structure analyzer and is
// read-only afterwards.
//
// Design decision: We keep raw counts here and leave interpretation
// (e.g. "add an H1") to the recommendation logic. The summary stays a
// pure measurement so that the same document always produces an
// identical summary.
type StructureSummary struct {
	// Title is the page <title> text, empty when the tag is absent.
	Title string `json:"title,omitempty"`

	// Headings contains all h1-h6 elements in document order.
	Headings []Heading `json:"headings,omitempty"`

	// WordCount is the number of whitespace-separated words in the body text.
	WordCount int `json:"word_count"`

	// ParagraphCount is the number of <p> elements.
	ParagraphCount int `json:"paragraph_count"`

	// ListCount is the number of <ul> and <ol> elements.
	ListCount int `json:"list_count"`

	// ImageCount is the number of <img> elements.
	ImageCount int `json:"image_count"`

	// ImagesWithAlt is the number of <img> elements carrying an alt attribute.
	ImagesWithAlt int `json:"images_with_alt"`

	// LinkCount is the number of <a> elements with an href attribute.
	LinkCount int `json:"link_count"`

	// FAQSections contains the text of elements whose class or id marks
	// them as FAQ sections. An explicit FAQ section is a strong signal
	// for FAQPage structured data.
	FAQSections []string `json:"faq_sections,omitempty"`
}

// HeadingCount returns the number of headings at the given level.
func (s *StructureSummary) HeadingCount(level int) int {
	count := 0
	for _, h := range s.Headings {
		if h.Level == level {
			count++
		}
	}
	return count
}

// HasFAQSection reports whether the page contains at least one element
// marked as an FAQ section.
func (s *StructureSummary) HasFAQSection() bool {
	return len(s.FAQSections) > 0
}

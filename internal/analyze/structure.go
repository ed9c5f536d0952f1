package analyze

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pageaudit/pageaudit/internal/model"
)

// headingSelector matches all heading levels in document order.
const headingSelector = "h1, h2, h3, h4, h5, h6"

// Analyzer computes a StructureSummary from a PageDocument.
//
// Design decision: We use goquery rather than walking x/net/html nodes
// by hand because the analysis is selector-shaped (count <p>, collect
// h1-h6, read attributes) and goquery keeps each metric a one-liner.
// goquery tolerates malformed markup the same way browsers do, which
// gives us the best-effort behavior the analyzer needs for free.
type Analyzer struct{}

// New creates an Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze parses the document and collects the structural summary.
// The only error condition is a failure to construct the parse tree,
// which goquery reserves for reader errors; malformed HTML yields a
// partial (possibly empty) summary instead.
func (a *Analyzer) Analyze(page *model.PageDocument) (*model.StructureSummary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	summary := &model.StructureSummary{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	doc.Find(headingSelector).Each(func(_ int, s *goquery.Selection) {
		summary.Headings = append(summary.Headings, model.Heading{
			Level: headingLevel(goquery.NodeName(s)),
			Text:  strings.TrimSpace(s.Text()),
		})
	})

	summary.WordCount = len(strings.Fields(doc.Find("body").Text()))
	summary.ParagraphCount = doc.Find("p").Length()
	summary.ListCount = doc.Find("ul, ol").Length()
	summary.LinkCount = doc.Find("a[href]").Length()

	images := doc.Find("img")
	summary.ImageCount = images.Length()
	images.Each(func(_ int, s *goquery.Selection) {
		if _, exists := s.Attr("alt"); exists {
			summary.ImagesWithAlt++
		}
	})

	summary.FAQSections = collectFAQSections(doc)

	return summary, nil
}

// collectFAQSections finds container elements whose class or id marks
// them as FAQ sections and returns their trimmed text.
func collectFAQSections(doc *goquery.Document) []string {
	var sections []string
	doc.Find("div, section").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		if !containsFAQ(class) && !containsFAQ(id) {
			return
		}
		if text := strings.Join(strings.Fields(s.Text()), " "); text != "" {
			sections = append(sections, text)
		}
	})
	return sections
}

// containsFAQ reports whether the attribute value names an FAQ section.
func containsFAQ(attr string) bool {
	return strings.Contains(strings.ToLower(attr), "faq")
}

// headingLevel converts a heading tag name ("h1".."h6") to its level.
func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

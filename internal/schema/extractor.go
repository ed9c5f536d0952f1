package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pageaudit/pageaudit/internal/model"
)

// jsonLDSelector matches embedded JSON-LD payloads.
const jsonLDSelector = `script[type="application/ld+json"]`

// Metadata keys that describe the JSON-LD envelope rather than the
// entity itself. They never count as declared fields.
var jsonLDMetaKeys = map[string]bool{
	"@context": true,
	"@type":    true,
	"@id":      true,
	"@graph":   true,
}

// Extractor scans a page for structured-data blocks.
//
// Design decision: JSON-LD scanning uses goquery because it is a pure
// selector lookup, while microdata uses a golang.org/x/net/html walk:
// microdata semantics depend on the nesting of itemscope elements,
// which is awkward to express with selectors but natural on the node
// tree.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns all structured-data blocks found in the page, JSON-LD
// blocks first and microdata blocks second, each group in document
// order. Blocks that fail to decode are skipped and reported as
// warnings; the scan always continues. A page with no structured data
// yields an empty slice and no error.
func (e *Extractor) Extract(page *model.PageDocument) ([]model.SchemaBlock, []model.ParseWarning, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var blocks []model.SchemaBlock
	var warnings []model.ParseWarning

	doc.Find(jsonLDSelector).Each(func(i int, s *goquery.Selection) {
		found, warns := decodeJSONLD(s.Text(), i+1)
		blocks = append(blocks, found...)
		warnings = append(warnings, warns...)
	})

	if root := firstNode(doc); root != nil {
		blocks = append(blocks, extractMicrodata(root)...)
	}

	return blocks, warnings, nil
}

// firstNode returns the document's root html node, or nil for an empty
// document.
func firstNode(doc *goquery.Document) *html.Node {
	nodes := doc.Selection.Nodes
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// decodeJSONLD decodes one JSON-LD payload into zero or more blocks.
// Top-level arrays and @graph containers are unwrapped; each contained
// object becomes its own block. index is the 1-based position of the
// script element, used for warning locations.
func decodeJSONLD(payload string, index int) ([]model.SchemaBlock, []model.ParseWarning) {
	location := fmt.Sprintf("json-ld script #%d", index)

	var decoded any
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return nil, []model.ParseWarning{{
			Source:   model.SourceJSONLD,
			Location: location,
			Message:  fmt.Sprintf("invalid JSON: %v", err),
		}}
	}

	var blocks []model.SchemaBlock
	var warnings []model.ParseWarning

	for _, obj := range unwrapEntities(decoded) {
		block, warn := blockFromObject(obj, location)
		if warn != nil {
			warnings = append(warnings, *warn)
			continue
		}
		blocks = append(blocks, block)
	}

	return blocks, warnings
}

// unwrapEntities flattens a decoded JSON-LD value into the list of
// entity objects it declares. Handles a single object, a top-level
// array, and an object whose entities live under @graph.
func unwrapEntities(decoded any) []map[string]any {
	switch v := decoded.(type) {
	case map[string]any:
		if graph, ok := v["@graph"].([]any); ok {
			var entities []map[string]any
			for _, item := range graph {
				if obj, ok := item.(map[string]any); ok {
					entities = append(entities, obj)
				}
			}
			return entities
		}
		return []map[string]any{v}
	case []any:
		var entities []map[string]any
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok {
				entities = append(entities, obj)
			}
		}
		return entities
	default:
		return nil
	}
}

// blockFromObject converts one JSON-LD entity object into a SchemaBlock.
// Objects without a usable @type produce a warning instead of a block.
func blockFromObject(obj map[string]any, location string) (model.SchemaBlock, *model.ParseWarning) {
	typeName := declaredType(obj["@type"])
	if typeName == "" {
		return model.SchemaBlock{}, &model.ParseWarning{
			Source:   model.SourceJSONLD,
			Location: location,
			Message:  "entity declares no @type",
		}
	}

	fields := make(map[string]bool, len(obj))
	for key := range obj {
		if !jsonLDMetaKeys[key] {
			fields[key] = true
		}
	}

	return model.SchemaBlock{
		Type:     NormalizeTypeName(typeName),
		Source:   model.SourceJSONLD,
		Fields:   fields,
		Location: location,
	}, nil
}

// declaredType extracts the type name from a JSON-LD @type value,
// which may be a string or an array of strings (first entry wins).
func declaredType(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// extractMicrodata walks the node tree and returns one block per
// element carrying both itemscope and itemtype, in pre-order (document)
// order. Fields are the itemprop names declared in the element's
// subtree; nested itemscope elements become blocks of their own while
// their properties still count toward the enclosing item, matching how
// validators attribute nested entities to their parent field.
func extractMicrodata(root *html.Node) []model.SchemaBlock {
	var blocks []model.SchemaBlock
	index := 0

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasAttr(n, "itemscope") {
			if itemtype := getAttr(n, "itemtype"); itemtype != "" {
				index++
				blocks = append(blocks, model.SchemaBlock{
					Type:     NormalizeTypeName(itemtype),
					Source:   model.SourceMicrodata,
					Fields:   collectItemprops(n),
					Location: fmt.Sprintf("microdata item #%d", index),
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return blocks
}

// collectItemprops gathers itemprop names declared below the given
// itemscope element.
func collectItemprops(scope *html.Node) map[string]bool {
	fields := make(map[string]bool)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n != scope {
			if prop := getAttr(n, "itemprop"); prop != "" {
				// A single itemprop attribute may declare multiple
				// space-separated names.
				for _, name := range strings.Fields(prop) {
					fields[name] = true
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(scope)

	return fields
}

// NormalizeTypeName reduces a declared type to its bare name:
// "https://schema.org/Article" and "Article" both become "Article".
func NormalizeTypeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, "/")
	if idx := strings.LastIndex(name, "/"); idx != -1 {
		name = name[idx+1:]
	}
	return name
}

// hasAttr reports whether an HTML node carries the given attribute.
func hasAttr(n *html.Node, key string) bool {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return true
		}
	}
	return false
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

package model

// SchemaSource identifies how a structured-data block was embedded in the page.
type SchemaSource string

const (
	// SourceJSONLD marks blocks found in <script type="application/ld+json"> payloads.
	SourceJSONLD SchemaSource = "json-ld"

	// SourceMicrodata marks blocks found via itemscope/itemtype/itemprop attributes.
	SourceMicrodata SchemaSource = "microdata"
)

// SchemaBlock is a single structured-data declaration found in the page.
// A page may contain zero or more blocks; the extractor preserves
// document order because the evaluator and the report rely on it.
type SchemaBlock struct {
	// Type is the declared type name as written in the page,
	// e.g. "Article" or "https://schema.org/Product" reduced to "Product".
	Type string `json:"type"`

	// Source is where the block was embedded.
	Source SchemaSource `json:"source"`

	// Fields maps declared field names to presence. A field is present
	// when the block declares it at the top level, regardless of value.
	Fields map[string]bool `json:"fields"`

	// Location is a human-readable note on where the block was found,
	// e.g. "json-ld script #2". Used in report output.
	Location string `json:"location,omitempty"`
}

// HasField reports whether the block declares the given field name.
func (b *SchemaBlock) HasField(name string) bool {
	return b.Fields[name]
}

// FieldCount returns the number of declared fields.
func (b *SchemaBlock) FieldCount() int {
	return len(b.Fields)
}

// ParseWarning records a structured-data block that could not be decoded.
// Decode failures are never fatal: the block is skipped and the warning
// surfaces in the rendered report so that no error is silently dropped.
type ParseWarning struct {
	// Source is the embedding kind of the offending block.
	Source SchemaSource `json:"source"`

	// Location identifies the block, e.g. "json-ld script #3".
	Location string `json:"location"`

	// Message is the decode error in human-readable form.
	Message string `json:"message"`
}

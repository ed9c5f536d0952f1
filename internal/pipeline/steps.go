package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pageaudit/pageaudit/internal/analyze"
	"github.com/pageaudit/pageaudit/internal/fetch"
	"github.com/pageaudit/pageaudit/internal/model"
	"github.com/pageaudit/pageaudit/internal/schema"
)

// FetchStep retrieves the page for the report URL.
// A fetch failure is the one fatal condition in the pipeline: nothing
// downstream can run without the document, so the step always returns
// the error and the default pipeline stops.
type FetchStep struct {
	fetcher *fetch.Fetcher
}

// NewFetchStep creates a fetch step using the given fetcher.
func NewFetchStep(fetcher *fetch.Fetcher) *FetchStep {
	return &FetchStep{fetcher: fetcher}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do fetches the page and stores it in the report.
func (s *FetchStep) Do(ctx context.Context, report *model.AuditReport) error {
	doc, err := s.fetcher.Fetch(ctx, report.URL)
	if err != nil {
		return err
	}

	report.Document = doc
	report.StatusCode = doc.StatusCode
	return nil
}

// StructureStep computes the structural summary of the fetched page.
type StructureStep struct {
	analyzer *analyze.Analyzer
}

// NewStructureStep creates a structure analysis step.
func NewStructureStep(analyzer *analyze.Analyzer) *StructureStep {
	return &StructureStep{analyzer: analyzer}
}

// Name returns the step name.
func (s *StructureStep) Name() string {
	return "structure"
}

// Do analyzes the page structure and stores the summary in the report.
func (s *StructureStep) Do(_ context.Context, report *model.AuditReport) error {
	if report.Document == nil {
		return errors.New("structure step requires a fetched document")
	}

	summary, err := s.analyzer.Analyze(report.Document)
	if err != nil {
		return err
	}

	report.Structure = summary
	return nil
}

// SchemaStep scans the page for structured-data blocks.
// Individual blocks that fail to decode are recorded as warnings in the
// report and never fail the step.
type SchemaStep struct {
	extractor *schema.Extractor
	logger    *slog.Logger
}

// SchemaStepOption configures a SchemaStep.
type SchemaStepOption func(*SchemaStep)

// WithSchemaLogger sets a custom logger for the schema step.
func WithSchemaLogger(logger *slog.Logger) SchemaStepOption {
	return func(s *SchemaStep) {
		s.logger = logger
	}
}

// NewSchemaStep creates a structured-data extraction step.
func NewSchemaStep(extractor *schema.Extractor, opts ...SchemaStepOption) *SchemaStep {
	s := &SchemaStep{
		extractor: extractor,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *SchemaStep) Name() string {
	return "schema_extract"
}

// Do extracts blocks and warnings into the report.
func (s *SchemaStep) Do(_ context.Context, report *model.AuditReport) error {
	if report.Document == nil {
		return errors.New("schema step requires a fetched document")
	}

	blocks, warnings, err := s.extractor.Extract(report.Document)
	if err != nil {
		return err
	}

	report.Blocks = blocks
	for _, warning := range warnings {
		s.logger.Debug("skipped structured-data block",
			"location", warning.Location,
			"message", warning.Message,
		)
		report.AddWarning(warning)
	}

	return nil
}

// EvaluateStep scores the extracted blocks against the checklist and
// assembles recommendations and suggested fixes.
type EvaluateStep struct {
	checklist *schema.Checklist
}

// NewEvaluateStep creates a checklist evaluation step.
func NewEvaluateStep(checklist *schema.Checklist) *EvaluateStep {
	return &EvaluateStep{checklist: checklist}
}

// Name returns the step name.
func (s *EvaluateStep) Name() string {
	return "evaluate"
}

// Do evaluates every block in discovery order, then derives structural
// recommendations and example-snippet fixes.
func (s *EvaluateStep) Do(_ context.Context, report *model.AuditReport) error {
	for _, result := range s.checklist.EvaluateAll(report.Blocks) {
		report.AddResult(result)

		// One fix per missing required field, when a snippet exists.
		for _, field := range result.MissingRequired {
			if fix, ok := schema.ExampleFix(result.Type, field); ok {
				report.AddFix(fix)
			}
		}
	}

	if !report.HasStructuredData() {
		report.AddFix(schema.NoSchemaFix())
	}

	if report.Structure != nil {
		for _, rec := range analyze.Recommendations(report.Structure, report.HasStructuredData()) {
			report.AddRecommendation(rec)
		}
	}

	return nil
}

// Default builds the standard audit pipeline: fetch, structure,
// schema_extract, evaluate.
func Default(fetcher *fetch.Fetcher, checklist *schema.Checklist, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewFetchStep(fetcher),
		NewStructureStep(analyze.New()),
		NewSchemaStep(schema.NewExtractor(), WithSchemaLogger(p.logger)),
		NewEvaluateStep(checklist),
	)
	return p
}

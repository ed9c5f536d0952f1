package model

import "testing"

// TestNewAuditReport tests report construction.
func TestNewAuditReport(t *testing.T) {
	t.Parallel()

	report := NewAuditReport("https://example.com")

	if report.URL != "https://example.com" {
		t.Errorf("URL = %q, want %q", report.URL, "https://example.com")
	}
	if report.DateAudited.IsZero() {
		t.Error("expected DateAudited to be set")
	}
	if report.HasStructuredData() {
		t.Error("new report should have no structured data")
	}
	if report.TotalResults() != 0 {
		t.Errorf("TotalResults() = %d, want 0", report.TotalResults())
	}
}

// TestAuditReportAddResult tests verdict counter updates.
func TestAuditReportAddResult(t *testing.T) {
	t.Parallel()

	report := NewAuditReport("https://example.com")

	report.AddResult(ComplianceResult{Type: "Article", Verdict: VerdictPass})
	report.AddResult(ComplianceResult{Type: "Product", Verdict: VerdictFail})
	report.AddResult(ComplianceResult{Type: "WebPage", Verdict: VerdictPassWithWarnings})
	report.AddResult(ComplianceResult{Type: "Recipe", Verdict: VerdictUnknownType})
	report.AddResult(ComplianceResult{Type: "Product", Verdict: VerdictFail})

	if report.PassCount != 1 {
		t.Errorf("PassCount = %d, want 1", report.PassCount)
	}
	if report.WarnCount != 1 {
		t.Errorf("WarnCount = %d, want 1", report.WarnCount)
	}
	if report.FailCount != 2 {
		t.Errorf("FailCount = %d, want 2", report.FailCount)
	}
	if report.UnknownCount != 1 {
		t.Errorf("UnknownCount = %d, want 1", report.UnknownCount)
	}
	if report.TotalResults() != 5 {
		t.Errorf("TotalResults() = %d, want 5", report.TotalResults())
	}
	if !report.HasFailures() {
		t.Error("expected HasFailures() to be true")
	}
}

// TestAuditReportAddRecommendation tests duplicate suppression.
func TestAuditReportAddRecommendation(t *testing.T) {
	t.Parallel()

	report := NewAuditReport("https://example.com")

	report.AddRecommendation("Add an H1 heading")
	report.AddRecommendation("Add an H1 heading")
	report.AddRecommendation("Add alt text to all images")

	if len(report.Recommendations) != 2 {
		t.Fatalf("len(Recommendations) = %d, want 2", len(report.Recommendations))
	}
	if report.Recommendations[0] != "Add an H1 heading" {
		t.Errorf("Recommendations[0] = %q, want %q", report.Recommendations[0], "Add an H1 heading")
	}
}

// TestAuditReportHasStructuredData tests block presence detection.
func TestAuditReportHasStructuredData(t *testing.T) {
	t.Parallel()

	report := NewAuditReport("https://example.com")
	report.Blocks = append(report.Blocks, SchemaBlock{
		Type:   "Article",
		Source: SourceJSONLD,
		Fields: map[string]bool{"headline": true},
	})

	if !report.HasStructuredData() {
		t.Error("expected HasStructuredData() to be true")
	}
}

// TestSchemaBlockHasField tests field presence lookups.
func TestSchemaBlockHasField(t *testing.T) {
	t.Parallel()

	block := SchemaBlock{
		Type:   "Article",
		Source: SourceJSONLD,
		Fields: map[string]bool{"headline": true, "author": true},
	}

	if !block.HasField("headline") {
		t.Error("expected headline to be present")
	}
	if block.HasField("datePublished") {
		t.Error("expected datePublished to be absent")
	}
	if block.FieldCount() != 2 {
		t.Errorf("FieldCount() = %d, want 2", block.FieldCount())
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestTypesCmd tests the checklist listing.
func TestTypesCmd(t *testing.T) {
	t.Parallel()

	t.Run("lists built-in types", func(t *testing.T) {
		t.Parallel()

		cmd := NewTypesCmd()
		cmd.SetArgs([]string{})
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{"Article", "FAQPage", "Organization", "Product", "WebPage"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to list %q", want)
			}
		}
		if !strings.Contains(output, "required:") {
			t.Error("expected required field listings")
		}
	})

	t.Run("includes config file entries", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".pageaudit")
		content := "checklist:\n  Recipe:\n    required: [name, recipeIngredient]\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewTypesCmd()
		cmd.SetArgs([]string{"--config", path})
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Recipe") {
			t.Error("expected the Recipe entry from the config file")
		}
	})

	t.Run("explicit missing config file fails", func(t *testing.T) {
		t.Parallel()

		cmd := NewTypesCmd()
		cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		if err := cmd.Execute(); err == nil {
			t.Fatal("expected an error for a missing config file")
		}
	})
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTempConfig writes a config file under t.TempDir and returns its path.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// TestLoadConfigFile tests configuration file parsing.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()

		path := writeTempConfig(t, `
defaults:
  timeout_seconds: 15
  user_agent: "my-auditor/1.0"
  format: markdown
checklist:
  Recipe:
    required: [name, recipeIngredient]
    recommended: [image, cookTime]
  Article:
    required: [headline, author, datePublished, dateModified]
`)

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cf.Defaults.TimeoutSeconds != 15 {
			t.Errorf("TimeoutSeconds = %d, want 15", cf.Defaults.TimeoutSeconds)
		}
		if cf.Defaults.UserAgent != "my-auditor/1.0" {
			t.Errorf("UserAgent = %q, want my-auditor/1.0", cf.Defaults.UserAgent)
		}
		if cf.Defaults.Format != "markdown" {
			t.Errorf("Format = %q, want markdown", cf.Defaults.Format)
		}

		recipe, ok := cf.Checklist["Recipe"]
		if !ok {
			t.Fatal("expected a Recipe checklist entry")
		}
		if !reflect.DeepEqual(recipe.Required, []string{"name", "recipeIngredient"}) {
			t.Errorf("Recipe.Required = %v", recipe.Required)
		}
		if !reflect.DeepEqual(recipe.Recommended, []string{"image", "cookTime"}) {
			t.Errorf("Recipe.Recommended = %v", recipe.Recommended)
		}

		article, ok := cf.Checklist["Article"]
		if !ok {
			t.Fatal("expected an Article checklist entry")
		}
		if len(article.Required) != 4 {
			t.Errorf("Article.Required = %v, want 4 fields", article.Required)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		cf, err := LoadConfigFile(writeTempConfig(t, ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Checklist == nil {
			t.Error("expected a non-nil checklist map")
		}
		if cf.Defaults.TimeoutSeconds != 0 {
			t.Errorf("TimeoutSeconds = %d, want 0", cf.Defaults.TimeoutSeconds)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "does-not-exist"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("err = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(writeTempConfig(t, "defaults: [not: a: map"))
		if err == nil {
			t.Fatal("expected an error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the explicit-path branch of the search.
// The directory-walk branches depend on the caller's environment, so
// only the explicit path behavior is pinned here.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path", func(t *testing.T) {
		t.Parallel()

		path := writeTempConfig(t, "defaults:\n  timeout_seconds: 5\n")
		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile(%q) = %q, want the same path", path, got)
		}
	})

	t.Run("explicit missing path", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "nope.yaml")
		if got := FindConfigFile(missing); got != "" {
			t.Errorf("FindConfigFile(%q) = %q, want empty", missing, got)
		}
	})
}

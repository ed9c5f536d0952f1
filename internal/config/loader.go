package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".pageaudit"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the parsed configuration file.
//
// Example:
//
//	defaults:
//	  timeout_seconds: 15
//	  user_agent: "my-auditor/1.0"
//	  format: markdown
//	checklist:
//	  Recipe:
//	    required: [name, recipeIngredient]
//	    recommended: [image, cookTime]
//	  Article:
//	    required: [headline, author, datePublished, dateModified]
type File struct {
	// Defaults override the built-in fetch and output defaults.
	Defaults Defaults `yaml:"defaults"`

	// Checklist adds new Schema.org types to the requirement table or
	// replaces the field sets of built-in ones. Keys are type names.
	Checklist map[string]ChecklistEntry `yaml:"checklist"`
}

// Defaults are operator-provided default values. Zero values mean
// "keep the built-in default"; CLI flags still take precedence.
type Defaults struct {
	// TimeoutSeconds is the fetch timeout in whole seconds.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// UserAgent replaces the default User-Agent header.
	UserAgent string `yaml:"user_agent"`

	// Format is the default report format (html, markdown, json).
	Format string `yaml:"format"`
}

// ChecklistEntry is one requirement table row in the config file.
type ChecklistEntry struct {
	// Required are field names whose absence fails the block.
	Required []string `yaml:"required"`

	// Recommended are field names whose absence only warns.
	Recommended []string `yaml:"recommended"`
}

// LoadConfigFile loads a configuration file from the given path.
// If the file does not exist, it returns ErrConfigNotFound. Callers
// should handle this error appropriately based on whether the config
// file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Checklist == nil {
		cf.Checklist = make(map[string]ChecklistEntry)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .pageaudit in the current directory
//  3. Look for .pageaudit in the XDG config directory
//  4. Look for .pageaudit in the user's home directory
//
// Returns the path to the configuration file if found, or empty string
// if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)

	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}

	candidates = append(candidates, filepath.Join(XDGConfigDir(), DefaultConfigFile))

	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

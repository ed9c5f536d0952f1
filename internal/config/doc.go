// Package config provides configuration structures and utilities for pageaudit.
// It defines the main options for fetching, report generation preferences,
// and the YAML configuration file that can override the built-in
// Schema.org checklist table.
package config

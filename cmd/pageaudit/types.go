package main

import (
	"fmt"
	"strings"

	"github.com/pageaudit/pageaudit/internal/config"
	"github.com/pageaudit/pageaudit/internal/schema"
	"github.com/spf13/cobra"
)

// NewTypesCmd creates the types command.
// It prints the active checklist so operators can see which Schema.org
// types the audit recognizes and which fields each one requires.
func NewTypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the Schema.org types and fields the audit checks",
		Long: `Types prints the active requirement checklist.

Each listed type shows its required fields (missing one fails the block)
and recommended fields (missing one only warns). Entries from the
configuration file's checklist section are included.`,
		Args: cobra.NoArgs,
		RunE: runTypesCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pageaudit in current, XDG config, or home directory)")

	return cmd
}

// runTypesCmd prints the active checklist.
func runTypesCmd(cmd *cobra.Command, _ []string) error {
	configFlag, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	checklist := schema.NewChecklist()

	configPath := config.FindConfigFile(configFlag)
	if configPath == "" && configFlag != "" {
		return fmt.Errorf("configuration file not found: %s", configFlag)
	}
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		for name, entry := range cf.Checklist {
			checklist.Set(name, schema.FieldRequirement{
				Required:    entry.Required,
				Recommended: entry.Recommended,
			})
		}
	}

	out := cmd.OutOrStdout()
	for _, name := range checklist.Types() {
		req := checklist.Requirements(name)
		fmt.Fprintf(out, "%s\n", name)
		fmt.Fprintf(out, "  required:    %s\n", joinOrNone(req.Required))
		fmt.Fprintf(out, "  recommended: %s\n", joinOrNone(req.Recommended))
	}

	return nil
}

// joinOrNone joins field names with commas, or "(none)" for empty lists.
func joinOrNone(fields []string) string {
	if len(fields) == 0 {
		return "(none)"
	}
	return strings.Join(fields, ", ")
}

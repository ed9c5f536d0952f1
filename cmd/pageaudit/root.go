package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pageaudit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pageaudit",
		Short: "Structured-data and content audit for a single web page",
		Long: `pageaudit fetches one web page, analyzes its content structure,
extracts Schema.org structured data (JSON-LD and microdata), and checks
each block against a field checklist.

The result is a report with a verdict per block, structural
recommendations, and copy-paste example snippets for missing fields.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewTypesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/pageaudit/pageaudit/internal/config"
	"github.com/pageaudit/pageaudit/internal/fetch"
	"github.com/pageaudit/pageaudit/internal/model"
	"github.com/pageaudit/pageaudit/internal/pipeline"
	"github.com/pageaudit/pageaudit/internal/report"
	"github.com/pageaudit/pageaudit/internal/schema"
	"github.com/spf13/cobra"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit <url>",
		Short: "Audit a web page for structure and structured-data compliance",
		Long: `Audit fetches a single web page and evaluates it.

The audit runs four stages:
- Fetch the page over HTTP(S)
- Analyze content structure (headings, text, images, links)
- Extract Schema.org blocks (JSON-LD and microdata)
- Check each block against the field checklist

Examples:
  # Audit a page and write an HTML report to the working directory
  pageaudit audit https://example.com/blog/post

  # Write a Markdown report instead
  pageaudit audit --markdown https://example.com

  # Print a JSON report to stdout
  pageaudit audit --json --stdout https://example.com

  # Use a custom configuration file with checklist overrides
  pageaudit audit -c myconfig.yaml https://example.com

Configuration file (.pageaudit) example:
  defaults:
    timeout_seconds: 15
    format: markdown
  checklist:
    Recipe:
      required: [name, recipeIngredient]
      recommended: [image, cookTime]`,
		Args: cobra.ExactArgs(1),
		RunE: runAuditCmd,
	}

	// Fetch behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Total timeout for the page fetch")
	cmd.Flags().StringP("user-agent", "u", config.DefaultUserAgent,
		"User-Agent header sent with the request")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pageaudit in current, XDG config, or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("stdout", false,
		"Write the report to stdout instead of a file")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runAudit(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Precedence: flags > config file > built-in defaults.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.URL = args[0]

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the configuration file first so that explicitly set flags can
	// override its defaults below.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.File, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		applyFileDefaults(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("user-agent") {
		cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
		if err != nil {
			return nil, err
		}
	}

	jsonReport, err := cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	markdownReport, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	if jsonReport && markdownReport {
		return nil, config.ErrConflictingReportFormats
	}
	if jsonReport {
		cfg.Format = config.FormatJSON
	} else if markdownReport {
		cfg.Format = config.FormatMarkdown
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.ToStdout, err = cmd.Flags().GetBool("stdout")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFileDefaults copies non-zero config file defaults into the config.
// Called before flag processing so flags keep the last word.
func applyFileDefaults(cfg *config.Config) {
	defaults := cfg.File.Defaults

	if defaults.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(defaults.TimeoutSeconds) * time.Second
	}
	if defaults.UserAgent != "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if defaults.Format != "" {
		cfg.Format = config.ReportFormat(strings.ToLower(defaults.Format))
	}
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// buildChecklist creates the requirement table: built-in entries plus
// operator overrides from the configuration file.
func buildChecklist(cfg *config.Config) *schema.Checklist {
	checklist := schema.NewChecklist()

	if cfg.File == nil {
		return checklist
	}

	for name, entry := range cfg.File.Checklist {
		checklist.Set(name, schema.FieldRequirement{
			Required:    entry.Required,
			Recommended: entry.Recommended,
		})
	}

	return checklist
}

// runAudit executes the audit pipeline and renders the report.
func runAudit(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting audit",
		"url", cfg.URL,
		"timeout", cfg.Timeout,
		"format", cfg.Format,
	)

	fetcher := fetch.New(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
	)

	p := pipeline.Default(fetcher, buildChecklist(cfg),
		pipeline.WithLogger(logger),
	)

	auditReport := model.NewAuditReport(cfg.URL)

	fmt.Fprintf(os.Stderr, "Auditing %s...\n", cfg.URL)
	startTime := time.Now()

	if err := p.Execute(ctx, auditReport); err != nil {
		// A fetch or cancellation error means there is nothing to report.
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) {
			return fmt.Errorf("audit failed: %w", fetchErr)
		}
		return fmt.Errorf("audit failed for %s: %w", cfg.URL, err)
	}

	elapsed := time.Since(startTime)
	fmt.Fprintf(os.Stderr, "Audit completed in %s\n", elapsed.Round(time.Millisecond))

	return outputReport(cfg, auditReport)
}

// outputReport renders the audit report in the requested format.
// The report goes to stdout when requested, otherwise to the explicit
// output path or a name derived from the audited URL.
func outputReport(cfg *config.Config, auditReport *model.AuditReport) error {
	if cfg.ToStdout {
		_, err := newWriter(cfg.Format, os.Stdout).Write(auditReport)
		return err
	}

	path := cfg.ReportFile
	if path == "" {
		path = report.OutputPath("", cfg.URL, cfg.Format)
	}

	// Create directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return &report.RenderError{Path: path, Err: err}
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return &report.RenderError{Path: path, Err: err}
	}
	defer f.Close()

	if _, err := newWriter(cfg.Format, f).Write(auditReport); err != nil {
		return &report.RenderError{Path: path, Err: err}
	}

	fmt.Printf("Report written to %s\n", path)
	return nil
}

// newWriter returns the report writer for the configured format.
func newWriter(format config.ReportFormat, output io.Writer) report.Writer {
	switch format {
	case config.FormatJSON:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case config.FormatMarkdown:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewHTMLWriter(output)
	}
}

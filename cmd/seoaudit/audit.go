package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Bandit-AI/seo-auditor/internal/audit"
	"github.com/Bandit-AI/seo-auditor/internal/config"
	"github.com/Bandit-AI/seo-auditor/internal/fetch"
	"github.com/Bandit-AI/seo-auditor/internal/log"
	"github.com/Bandit-AI/seo-auditor/internal/model"
	"github.com/Bandit-AI/seo-auditor/internal/report"
	"github.com/spf13/cobra"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [url]",
		Short: "Audit a web page for SEO issues",
		Long: `Audit fetches a web page and analyzes it for common SEO issues.

Each page is fetched exactly once and checked for:
- Title and meta description quality
- Heading structure (H1 presence, hierarchy)
- Image alt attributes
- Internal, external, and unusual links
- Mobile friendliness (viewport meta tag)
- Performance signals (page size, blocking scripts)
- Structured data, canonical URL, and social tags

Findings are classified as critical issues, warnings, or passed checks,
and the page receives a score from 0 to 100.

Examples:
  # Audit a single page
  seoaudit audit https://example.com

  # Audit multiple pages concurrently
  seoaudit audit https://example.com https://example.com/pricing

  # Output JSON report
  seoaudit audit --json https://example.com

  # Write a Markdown report to a file
  seoaudit audit --markdown -o report.md https://example.com

  # Use a custom configuration file
  seoaudit audit -c myconfig.yaml https://example.com

Configuration file (seoaudit.yaml) example:
  userAgent: "SEO-Auditor/1.0"
  timeoutSeconds: 10
  headers:
    Authorization: "Bearer token"
  format: markdown`,
		Args: cobra.ArbitraryArgs,
		RunE: runAuditCmd,
	}

	// Fetch behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for fetching each page")
	cmd.Flags().StringP("user-agent", "u", config.DefaultUserAgent,
		"User-Agent header sent with page requests")

	// Multi-target flags
	cmd.Flags().IntP("concurrency", "n", config.DefaultConcurrency,
		"Number of concurrent audits when processing multiple URLs")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: seoaudit.yaml in current or XDG config directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags and the optional config file
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with credential redaction
	cfg.Verbose = getVerboseFlag(cmd)
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
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
// configuration file. The file fills gaps; flags the user actually set
// take precedence over file values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Get positional arguments (page URLs)
	cfg.Targets = args

	// Load settings from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cfg.ApplyFile(file); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags the user set override file values. Unset flags keep whatever
	// the file or the defaults provided.
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

	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("output") {
		cfg.ReportFile, err = cmd.Flags().GetString("output")
		if err != nil {
			return nil, err
		}
	}

	// Format flags replace any file-configured format rather than
	// combining with it.
	if cmd.Flags().Changed("json") || cmd.Flags().Changed("markdown") {
		cfg.JSONReport = false
		cfg.MarkdownReport = false

		cfg.JSONReport, err = cmd.Flags().GetBool("json")
		if err != nil {
			return nil, err
		}
		cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// runAudit executes the audit over all configured targets.
func runAudit(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting audit",
		"targets", cfg.Targets,
		"concurrency", cfg.Concurrency,
		"timeout", cfg.Timeout,
	)

	fetchOpts := []fetch.Option{
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
	}
	if cfg.MaxBodySize > 0 {
		fetchOpts = append(fetchOpts, fetch.WithMaxBodySize(cfg.MaxBodySize))
	}
	if len(cfg.Headers) > 0 {
		fetchOpts = append(fetchOpts, fetch.WithHeaders(cfg.Headers))
	}

	auditor := audit.New(
		audit.WithFetcher(fetch.NewClient(fetchOpts...)),
		audit.WithLogger(logger),
		audit.WithConcurrency(cfg.Concurrency),
	)

	// Audit concurrently when processing multiple targets
	if len(cfg.Targets) > 1 && cfg.Concurrency > 1 {
		return runBatchAudit(ctx, cfg, auditor, logger)
	}

	// Single target or sequential auditing
	return runSequentialAudit(ctx, cfg, auditor, logger)
}

// runSequentialAudit audits targets one at a time.
func runSequentialAudit(ctx context.Context, cfg *config.Config, auditor *audit.Auditor, logger *slog.Logger) error {
	failed := 0

	for _, target := range cfg.Targets {
		fmt.Printf("Auditing %s...\n", target)
		startTime := time.Now()

		result, err := auditor.Run(ctx, target)
		if err != nil {
			// Run only errors on cancellation; the remaining targets
			// would fail the same way.
			return err
		}

		elapsed := time.Since(startTime)
		fmt.Printf("Audit completed in %s\n\n", elapsed.Round(time.Millisecond))

		if err := outputReport(cfg, result); err != nil {
			logger.Error("report failed", "target", target, "error", err)
		}

		if !result.Success {
			failed++
		}
	}

	return failedTargetsError(failed, len(cfg.Targets))
}

// runBatchAudit audits multiple targets concurrently.
func runBatchAudit(ctx context.Context, cfg *config.Config, auditor *audit.Auditor, logger *slog.Logger) error {
	fmt.Printf("Starting batch audit of %d targets (concurrency: %d)...\n\n",
		len(cfg.Targets), cfg.Concurrency)

	startTime := time.Now()

	results, err := auditor.RunAll(ctx, cfg.Targets)
	if err != nil {
		return err
	}

	failed := 0
	for i, result := range results {
		fmt.Printf("[%d/%d] Audit completed: %s\n", i+1, len(cfg.Targets), cfg.Targets[i])

		if err := outputReport(cfg, result); err != nil {
			logger.Error("report failed", "target", cfg.Targets[i], "error", err)
		}

		if !result.Success {
			failed++
		}
	}

	elapsed := time.Since(startTime)
	fmt.Printf("\nBatch audit completed in %s\n", elapsed.Round(time.Millisecond))

	return failedTargetsError(failed, len(cfg.Targets))
}

// failedTargetsError converts a failure count into the command's exit error.
// A target whose page cannot be fetched produces a failed report rather than
// aborting the run, so the non-zero exit code is decided here at the end.
func failedTargetsError(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d audits failed", failed, total)
}

// outputReport outputs the audit result in the requested format.
func outputReport(cfg *config.Config, result *model.AuditResult) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Create/overwrite the output file with secure permissions (0600)
		// Reports may cover staging pages whose URLs should only be readable by the owner
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	// JSON output (machine-readable, lossless)
	if cfg.JSONReport {
		writer := report.NewJSONWriter(output, report.WithPrettyPrint())
		_, err := writer.Write(result)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(result)
		return err
	}

	// Human-readable report (default)
	writer := report.NewTextWriter(output)
	_, err := writer.Write(result)
	return err
}

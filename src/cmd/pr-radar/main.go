package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gh-nvat/pr-radar/src/internal/runner"
	"github.com/gh-nvat/pr-radar/src/pkg/config"
	"github.com/gh-nvat/pr-radar/src/pkg/trace"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	QUERY_MODE_CLI = "cli"
	QUERY_MODE_API = "api"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &runner.Options{}

	cmd := &cobra.Command{
		Use:   "pr-radar",
		Short: "Weekly pull request report for team repositories",
		Long: `pr-radar enumerates open and merged pull requests targeting the main branch
across the team repository roster of one GitHub organization, filters them by
the most recent Friday cutoff, and prints a grouped report with per-category
counts. It can optionally pipe the report to an external AI assistant.`,
		Version: fmt.Sprintf("%s (built: %s)", Version, BuildTime),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	// Query mode
	cmd.Flags().StringVar(&opts.QueryMode, "query-mode", QUERY_MODE_CLI, "Query mode: cli (gh tool) or api (GitHub REST API)")

	// Common flags
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to YAML report config (defaults are built in)")
	cmd.Flags().StringVar(&opts.TemplatesPath, "templates-path", "./templates", "Path to templates directory")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Directory to write the report file (stdout only when empty)")

	// Optional steps
	cmd.Flags().BoolVar(&opts.Analyze, "analyze", false, "Pipe the rendered report to the configured AI assistant")
	cmd.Flags().BoolVar(&opts.EnableTrace, "enable-trace", false, "Record per-query spans and export performance-report.json")

	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	return cmd
}

func validateOptions(opts *runner.Options) error {
	if opts.QueryMode != QUERY_MODE_CLI && opts.QueryMode != QUERY_MODE_API {
		return fmt.Errorf("query-mode must be 'cli' or 'api', got: %s", opts.QueryMode)
	}
	if opts.EnableTrace && opts.OutputDir == "" {
		return fmt.Errorf("--enable-trace requires --output-dir for the performance report")
	}
	return nil
}

// Do all initialization steps here:
// 1. Configure logging
// 2. Load and validate the report configuration
// 3. Initialize the runner instance for the selected query mode
// 4. Run the query preflight (fatal when it fails)
func initialize(ctx context.Context, opts *runner.Options) (runner.RunnerInterface, error) {
	level, err := log.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	fmt.Println("📋 Loading report configuration...")
	cfg, err := config.NewLoader().LoadReportConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load report config: %w", err)
	}
	fmt.Printf("✅ Reporting on %d teams in %s\n\n", cfg.TeamCount, cfg.Organization)

	var runnerInstance runner.RunnerInterface
	switch opts.QueryMode {
	case QUERY_MODE_CLI:
		runnerInstance, err = runner.NewRunnerCLI(ctx, opts, cfg)
	case QUERY_MODE_API:
		runnerInstance, err = runner.NewRunnerAPI(ctx, opts, cfg)
	default:
		return nil, fmt.Errorf("invalid query mode: %s", opts.QueryMode)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	if err := runnerInstance.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize runner: %w", err)
	}

	return runnerInstance, nil
}

func run(ctx context.Context, opts *runner.Options) error {
	if err := validateOptions(opts); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	shutdown, err := trace.InitTracer("pr-radar", opts.EnableTrace, opts.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer shutdown()

	runnerInstance, err := initialize(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	return runnerInstance.Process()
}

package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gh-nvat/pr-radar/src/pkg/analyze"
	"github.com/gh-nvat/pr-radar/src/pkg/config"
	"github.com/gh-nvat/pr-radar/src/pkg/github"
	"github.com/gh-nvat/pr-radar/src/pkg/models"
	"github.com/gh-nvat/pr-radar/src/pkg/report"
	"github.com/gh-nvat/pr-radar/src/pkg/template"
	"github.com/gh-nvat/pr-radar/src/pkg/trace"

	log "github.com/sirupsen/logrus"
)

var logger *log.Entry = log.WithFields(log.Fields{
	"package": "runner",
})

type RunnerBase struct {
	Context context.Context
	Options *Options
	Config  *config.ReportConfig

	Lister   github.PullRequestLister
	Builder  *report.Builder
	Renderer *template.Renderer
	Analyzer *analyze.Analyzer
}

// make RunnerBase implement RunnerInterface
var _ RunnerInterface = (*RunnerBase)(nil)

func NewRunnerBase(
	ctx context.Context,
	options *Options,
	cfg *config.ReportConfig,
	lister github.PullRequestLister,
) (*RunnerBase, error) {
	if lister == nil {
		return nil, fmt.Errorf("pull request lister is not initialized")
	}
	runner := &RunnerBase{
		Context:  ctx,
		Options:  options,
		Config:   cfg,
		Lister:   lister,
		Builder:  report.NewBuilder(cfg, lister),
		Renderer: template.NewRenderer(),
		Analyzer: analyze.NewAnalyzer(cfg.Analyzer),
	}
	return runner, nil
}

func (r *RunnerBase) Initialize() error {
	logger.Info("Initializing runner: starting...")

	if r.Builder == nil || r.Renderer == nil || r.Analyzer == nil {
		return fmt.Errorf("builder, renderer, and analyzer are required")
	}

	logger.Info("Initialize runner: running query preflight")
	if err := r.Lister.Preflight(r.Context, r.Config.Organization); err != nil {
		return err
	}

	logger.Info("Initialize runner: done.")
	return nil
}

// Collect walks the roster and builds the report data
func (r *RunnerBase) Collect() (*models.ReportData, error) {
	logger.Info("Collect: starting...")

	ctx, span := trace.StartSpan(r.Context, "collect")
	defer span.End()

	data := r.Builder.Build(ctx, time.Now())
	logger.WithField("open", data.OpenCount).
		WithField("merged", data.MergedCount).
		WithField("failedQueries", data.FailedQueries).
		Info("Collect: done.")
	return data, nil
}

// Render turns the report data into the final report text, using the
// templates directory when it exists and the embedded default otherwise
func (r *RunnerBase) Render(data *models.ReportData) (string, error) {
	logger.Info("Render: starting...")

	if _, err := os.Stat(r.Options.TemplatesPath); err == nil {
		logger.WithField("templatesPath", r.Options.TemplatesPath).Info("Render: using template directory")
		return r.Renderer.RenderWithTemplates(r.Options.TemplatesPath, data)
	}

	logger.Info("Render: using default embedded template")
	return r.Renderer.RenderString(r.Renderer.GetDefaultReportTemplate(), data)
}

// Output prints the report to stdout and, when an output directory is
// configured, writes it to a file as well
func (r *RunnerBase) Output(rendered string) error {
	logger.Info("Output: starting...")

	fmt.Print(rendered)

	if r.Options.OutputDir != "" {
		if err := os.MkdirAll(r.Options.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		outputFile := filepath.Join(r.Options.OutputDir, "pr-report.md")
		if err := os.WriteFile(outputFile, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("✅ Report written to: %s\n", outputFile)
	}

	logger.Info("Output: done.")
	return nil
}

func (r *RunnerBase) Process() error {
	logger.Info("Process: starting...")

	data, err := r.Collect()
	if err != nil {
		return err
	}

	rendered, err := r.Render(data)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if err := r.Output(rendered); err != nil {
		return err
	}

	if r.Options.Analyze {
		// Reuse the already-rendered text; analysis failures are
		// warnings, the report above is complete either way.
		r.runAnalysis(rendered)
	}

	logger.Info("Process: done.")
	return nil
}

func (r *RunnerBase) runAnalysis(rendered string) {
	fmt.Println("\n🤖 Sending report for analysis...")

	_, span := trace.StartSpan(r.Context, "analyze")
	output, err := r.Analyzer.Analyze(r.Context, rendered)
	span.End()

	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Analysis failed: %v\n", err)
		fmt.Fprintln(os.Stderr, r.Analyzer.Guidance())
		return
	}

	fmt.Println(output)
}

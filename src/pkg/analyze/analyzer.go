package analyze

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gh-nvat/pr-radar/src/pkg/config"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("package", "analyze")

// Fixed prompt prepended to the rendered report before it is handed to
// the assistant.
const analysisPrompt = `You are reviewing a weekly pull request status report for a multi-team
GitHub organization. Summarize the overall activity, call out teams with
no activity since the cutoff date, and highlight anything unusual.
The report follows below.`

// commandRunner abstracts subprocess execution so tests can stub the
// assistant command
type commandRunner func(ctx context.Context, stdin, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, stdin, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	return cmd.CombinedOutput()
}

// Analyzer pipes an already-rendered report to an external AI assistant
// command. The report text is reused as-is; nothing is recomputed.
type Analyzer struct {
	command string
	args    []string
	run     commandRunner
}

// NewAnalyzer creates an analyzer from configuration
func NewAnalyzer(cfg config.AnalyzerConfig) *Analyzer {
	return &Analyzer{
		command: cfg.Command,
		args:    cfg.Args,
		run:     runCommand,
	}
}

// Analyze sends the analysis prompt and the rendered report on stdin
// and returns the assistant's output verbatim
func (a *Analyzer) Analyze(ctx context.Context, report string) (string, error) {
	logger.WithField("command", a.command).Debug("invoking analysis assistant")

	input := analysisPrompt + "\n\n" + report
	output, err := a.run(ctx, input, a.command, a.args...)
	if err != nil {
		return string(output), fmt.Errorf("%s failed: %w", a.command, err)
	}

	return string(output), nil
}

// Guidance returns remediation hints printed when the assistant command
// is missing or not authenticated
func (a *Analyzer) Guidance() string {
	return fmt.Sprintf("Hint: make sure %q is installed, on PATH, and logged in, or point analyzer.command in the config file at another assistant.", a.command)
}

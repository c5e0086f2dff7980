package runner

import (
	"context"

	"github.com/gh-nvat/pr-radar/src/pkg/config"
	"github.com/gh-nvat/pr-radar/src/pkg/github"
)

// RunnerCLI queries through the gh command line tool (default mode)
type RunnerCLI struct {
	RunnerBase
}

// make RunnerCLI implement RunnerInterface
var _ RunnerInterface = (*RunnerCLI)(nil)

func NewRunnerCLI(
	ctx context.Context,
	options *Options,
	cfg *config.ReportConfig,
) (*RunnerCLI, error) {
	baseRunner, err := NewRunnerBase(ctx, options, cfg, github.NewCLIClient(cfg.BaseBranch))
	if err != nil {
		return nil, err
	}
	return &RunnerCLI{
		RunnerBase: *baseRunner,
	}, nil
}

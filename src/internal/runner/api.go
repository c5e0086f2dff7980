package runner

import (
	"context"
	"fmt"

	"github.com/gh-nvat/pr-radar/src/pkg/config"
	"github.com/gh-nvat/pr-radar/src/pkg/github"
)

// RunnerAPI queries through the GitHub REST API instead of the gh tool
type RunnerAPI struct {
	RunnerBase
}

// make RunnerAPI implement RunnerInterface
var _ RunnerInterface = (*RunnerAPI)(nil)

func NewRunnerAPI(
	ctx context.Context,
	options *Options,
	cfg *config.ReportConfig,
) (*RunnerAPI, error) {
	client, err := github.NewClient(cfg.BaseBranch)
	if err != nil {
		return nil, fmt.Errorf("GitHub authentication failed: %w", err)
	}

	baseRunner, err := NewRunnerBase(ctx, options, cfg, client)
	if err != nil {
		return nil, err
	}
	return &RunnerAPI{
		RunnerBase: *baseRunner,
	}, nil
}

package github

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/gh-nvat/pr-radar/src/pkg/models"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("package", "github")

// PullRequestLister is the query boundary shared by the CLI and API
// backends. State is one of models.QueryStateOpen/QueryStateMerged.
type PullRequestLister interface {
	// Preflight verifies tool availability, authentication and
	// organization access before any report work starts
	Preflight(ctx context.Context, organization string) error
	// ListPullRequests queries one repository ("org/name") for pull
	// requests targeting the configured base branch
	ListPullRequests(ctx context.Context, repo, state string, limit int) models.QueryResult
}

// commandRunner abstracts subprocess execution so tests can stub gh
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// CLIClient queries pull requests by shelling out to the gh command
// line tool. This is the default backend.
type CLIClient struct {
	baseBranch string
	run        commandRunner
}

// Ensure CLIClient implements PullRequestLister
var _ PullRequestLister = (*CLIClient)(nil)

// NewCLIClient creates a gh-backed client querying against baseBranch
func NewCLIClient(baseBranch string) *CLIClient {
	return &CLIClient{
		baseBranch: baseBranch,
		run:        runCommand,
	}
}

// Preflight verifies that gh is installed, authenticated, and that the
// organization is reachable. Any failure here is fatal to the run.
func (c *CLIClient) Preflight(ctx context.Context, organization string) error {
	if _, err := c.run(ctx, "gh", "--version"); err != nil {
		return fmt.Errorf("gh CLI not found: %w (install it from https://cli.github.com)", err)
	}
	if _, err := c.run(ctx, "gh", "auth", "status"); err != nil {
		return fmt.Errorf("gh CLI is not authenticated: %w (run `gh auth login`)", err)
	}
	if _, err := c.run(ctx, "gh", "api", "orgs/"+organization); err != nil {
		return fmt.Errorf("no access to organization %q: %w (check your membership and token scopes)", organization, err)
	}
	return nil
}

// ListPullRequests runs `gh pr list` for one repository/state pair. A
// non-zero exit or malformed JSON becomes a failure on the QueryResult;
// no error propagates past the result.
func (c *CLIClient) ListPullRequests(ctx context.Context, repo, state string, limit int) models.QueryResult {
	result := models.QueryResult{Repository: repo, State: state}
	logger.WithField("repository", repo).WithField("state", state).Debug("querying pull requests via gh")

	output, err := c.run(ctx, "gh", "pr", "list",
		"-R", repo,
		"--base", c.baseBranch,
		"--state", state,
		"--limit", strconv.Itoa(limit),
		"--json", "number,title,headRefName,state,updatedAt")
	if err != nil {
		result.Err = fmt.Errorf("gh pr list failed for %s: %w", repo, err)
		return result
	}

	var prs []models.PullRequest
	if err := json.Unmarshal(output, &prs); err != nil {
		result.Err = fmt.Errorf("invalid JSON from gh for %s: %w", repo, err)
		return result
	}

	result.PullRequests = prs
	return result
}

package github

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gh-nvat/pr-radar/src/pkg/models"
	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// Client queries pull requests through the GitHub REST API using
// go-github. Selected with --query-mode api; mirrors the CLI backend's
// semantics (base branch filter, page cap, merged = closed with a merge
// timestamp).
type Client struct {
	client     *github.Client
	baseBranch string
}

// Ensure Client implements PullRequestLister
var _ PullRequestLister = (*Client)(nil)

// NewClient creates a new GitHub API client
func NewClient(baseBranch string) (*Client, error) {
	token := os.Getenv("GH_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("GitHub token not found. Set GH_TOKEN or GITHUB_TOKEN environment variable")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	return &Client{
		client:     github.NewClient(tc),
		baseBranch: baseBranch,
	}, nil
}

// Preflight verifies the token grants access to the organization
func (c *Client) Preflight(ctx context.Context, organization string) error {
	if _, _, err := c.client.Organizations.Get(ctx, organization); err != nil {
		return fmt.Errorf("no access to organization %q: %w (check GH_TOKEN scopes)", organization, err)
	}
	return nil
}

// ListPullRequests queries one repository/state pair through the REST
// API. Merged pull requests are closed pull requests carrying a merge
// timestamp; the API has no direct merged filter.
func (c *Client) ListPullRequests(ctx context.Context, repo, state string, limit int) models.QueryResult {
	result := models.QueryResult{Repository: repo, State: state}

	owner, name, err := ParseOwnerRepo(repo)
	if err != nil {
		result.Err = fmt.Errorf("failed to parse repository: %w", err)
		return result
	}

	apiState := "open"
	if state == models.QueryStateMerged {
		apiState = "closed"
	}

	opts := &github.PullRequestListOptions{
		State:     apiState,
		Base:      c.baseBranch,
		Sort:      "updated",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: limit,
		},
	}

	prs, _, err := c.client.PullRequests.List(ctx, owner, name, opts)
	if err != nil {
		result.Err = fmt.Errorf("failed to list pull requests for %s: %w", repo, err)
		return result
	}

	for _, pr := range prs {
		merged := pr.MergedAt != nil
		if state == models.QueryStateMerged && !merged {
			continue
		}

		prState := strings.ToUpper(pr.GetState())
		if merged {
			prState = "MERGED"
		}

		result.PullRequests = append(result.PullRequests, models.PullRequest{
			Number:      pr.GetNumber(),
			Title:       pr.GetTitle(),
			HeadRefName: pr.GetHead().GetRef(),
			State:       prState,
			UpdatedAt:   pr.GetUpdatedAt().Time,
		})
	}

	return result
}

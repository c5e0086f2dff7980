package models

import "time"

// RepoCategory distinguishes frontend and backend team repositories
type RepoCategory string

const (
	CategoryFrontend RepoCategory = "FE"
	CategoryBackend  RepoCategory = "BE"
)

// Query states accepted by the query layer (`gh pr list --state`)
const (
	QueryStateOpen   = "open"
	QueryStateMerged = "merged"
)

// TeamRepository identifies one repository in the team roster
type TeamRepository struct {
	Name     string
	Category RepoCategory
}

// PullRequest represents one pull request record as returned by the
// query layer. Field tags match the `gh pr list --json` output.
type PullRequest struct {
	Number      int       `json:"number"`
	Title       string    `json:"title"`
	HeadRefName string    `json:"headRefName"`
	State       string    `json:"state"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// QueryResult carries either the pull requests for one repository/state
// pair or the reason that query failed. The default reporting path
// treats a failure as an empty list via OrEmpty; callers that need the
// distinction inspect Err directly.
type QueryResult struct {
	Repository   string
	State        string
	PullRequests []PullRequest
	Err          error
}

// Failed reports whether the underlying query failed
func (r QueryResult) Failed() bool {
	return r.Err != nil
}

// OrEmpty returns the pull requests, conflating a failed query with an
// empty result set. This conflation is deliberate: a repository whose
// query failed is simply absent from the report.
func (r QueryResult) OrEmpty() []PullRequest {
	if r.Err != nil {
		return nil
	}
	return r.PullRequests
}

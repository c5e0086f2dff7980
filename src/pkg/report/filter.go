package report

import (
	"time"

	"github.com/gh-nvat/pr-radar/src/pkg/models"
	"github.com/gh-nvat/pr-radar/src/pkg/schedule"
)

// UpdatedSince keeps the pull requests whose last-updated calendar date
// is on or after the cutoff date. The cutoff applies to every state,
// open included, using updatedAt: an old pull request with any recent
// update still counts as in scope.
func UpdatedSince(prs []models.PullRequest, cutoff time.Time) []models.PullRequest {
	var kept []models.PullRequest
	for _, pr := range prs {
		if schedule.SameOrAfterDate(pr.UpdatedAt, cutoff) {
			kept = append(kept, pr)
		}
	}
	return kept
}

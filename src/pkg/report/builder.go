package report

import (
	"context"
	"fmt"
	"time"

	"github.com/gh-nvat/pr-radar/src/pkg/config"
	"github.com/gh-nvat/pr-radar/src/pkg/github"
	"github.com/gh-nvat/pr-radar/src/pkg/models"
	"github.com/gh-nvat/pr-radar/src/pkg/roster"
	"github.com/gh-nvat/pr-radar/src/pkg/schedule"
	"github.com/gh-nvat/pr-radar/src/pkg/trace"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("package", "report")

// Builder assembles the grouped pull request report from roster queries
type Builder struct {
	config *config.ReportConfig
	lister github.PullRequestLister
}

// NewBuilder creates a new report builder
func NewBuilder(cfg *config.ReportConfig, lister github.PullRequestLister) *Builder {
	return &Builder{
		config: cfg,
		lister: lister,
	}
}

// Build walks the roster sequentially per state (open, then merged) and
// per category (FE, then BE), queries each repository, and accumulates
// the entries that pass the recency filter. A failed query contributes
// zero entries; the reason is counted and logged at debug level only.
func (b *Builder) Build(ctx context.Context, now time.Time) *models.ReportData {
	cutoff := schedule.LastFriday(now)
	repos := roster.Generate(b.config.TeamCount)

	data := &models.ReportData{
		Organization: b.config.Organization,
		BaseBranch:   b.config.BaseBranch,
		Cutoff:       cutoff,
		GeneratedAt:  now,
	}

	data.OpenSections, data.OpenCount = b.collectState(ctx, repos, models.QueryStateOpen, cutoff, data)
	data.MergedSections, data.MergedCount = b.collectState(ctx, repos, models.QueryStateMerged, cutoff, data)

	return data
}

func (b *Builder) collectState(
	ctx context.Context,
	repos []models.TeamRepository,
	state string,
	cutoff time.Time,
	data *models.ReportData,
) ([]models.ReportSection, int) {
	var sections []models.ReportSection
	count := 0

	for _, category := range []models.RepoCategory{models.CategoryFrontend, models.CategoryBackend} {
		section := models.ReportSection{State: state, Category: category}

		for _, repo := range roster.FilterByCategory(repos, category) {
			fullRepo := github.FullRepoName(b.config.Organization, repo.Name)

			spanCtx, span := trace.StartSpan(ctx, fmt.Sprintf("query/%s/%s", repo.Name, state))
			result := b.lister.ListPullRequests(spanCtx, fullRepo, state, b.config.PageLimit)
			span.End()

			if result.Failed() {
				logger.WithField("repository", fullRepo).
					WithField("state", state).
					WithError(result.Err).
					Debug("query failed, reporting as empty")
				data.FailedQueries++
			}

			for _, pr := range UpdatedSince(result.OrEmpty(), cutoff) {
				section.Entries = append(section.Entries, models.ReportEntry{
					Repository:  repo.Name,
					Number:      pr.Number,
					Title:       pr.Title,
					HeadRefName: pr.HeadRefName,
					State:       pr.State,
					UpdatedAt:   pr.UpdatedAt,
				})
				count++
			}
		}

		sections = append(sections, section)
	}

	return sections, count
}

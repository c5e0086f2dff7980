package roster

import (
	"fmt"

	"github.com/gh-nvat/pr-radar/src/pkg/models"
)

// Team 17 created their repositories in all caps before the naming
// convention settled, so their entries keep the historical form.
const uppercaseTeam = 17

// Generate returns the full repository roster: FE repositories for
// teams 1..teamCount followed by BE repositories for the same teams.
func Generate(teamCount int) []models.TeamRepository {
	repos := make([]models.TeamRepository, 0, 2*teamCount)

	for _, category := range []models.RepoCategory{models.CategoryFrontend, models.CategoryBackend} {
		for i := 1; i <= teamCount; i++ {
			repos = append(repos, models.TeamRepository{
				Name:     repoName(i, category),
				Category: category,
			})
		}
	}

	return repos
}

// FilterByCategory returns the roster entries of one category in their
// original order
func FilterByCategory(repos []models.TeamRepository, category models.RepoCategory) []models.TeamRepository {
	var filtered []models.TeamRepository
	for _, repo := range repos {
		if repo.Category == category {
			filtered = append(filtered, repo)
		}
	}
	return filtered
}

func repoName(team int, category models.RepoCategory) string {
	if team == uppercaseTeam {
		return fmt.Sprintf("TEAM%d_%s", team, category)
	}
	return fmt.Sprintf("Team%d_%s", team, category)
}

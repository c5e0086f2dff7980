package report

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gh-nvat/pr-radar/src/pkg/config"
	"github.com/gh-nvat/pr-radar/src/pkg/models"
)

// fakeLister returns canned results per repository/state pair
type fakeLister struct {
	results map[string]models.QueryResult // "repo|state" -> result
	calls   []string
}

func (f *fakeLister) Preflight(ctx context.Context, organization string) error {
	return nil
}

func (f *fakeLister) ListPullRequests(ctx context.Context, repo, state string, limit int) models.QueryResult {
	key := repo + "|" + state
	f.calls = append(f.calls, key)
	if result, ok := f.results[key]; ok {
		return result
	}
	return models.QueryResult{Repository: repo, State: state}
}

func testConfig(teamCount int) *config.ReportConfig {
	cfg := config.Default()
	cfg.Organization = "test-org"
	cfg.TeamCount = teamCount
	return cfg
}

// Sunday 2025-09-07 14:00, cutoff 2025-09-05
var testNow = time.Date(2025, time.September, 7, 14, 0, 0, 0, time.Local)

func recentPR(number int, title string) models.PullRequest {
	return models.PullRequest{
		Number:      number,
		Title:       title,
		HeadRefName: "feature/x",
		State:       "OPEN",
		UpdatedAt:   time.Date(2025, time.September, 6, 12, 0, 0, 0, time.UTC),
	}
}

func stalePR(number int) models.PullRequest {
	return models.PullRequest{
		Number:      number,
		Title:       "stale",
		HeadRefName: "old/branch",
		State:       "OPEN",
		UpdatedAt:   time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC),
	}
}

// TestBuilder_Build tests grouping, counting and recency filtering
func TestBuilder_Build(t *testing.T) {
	lister := &fakeLister{results: map[string]models.QueryResult{
		"test-org/Team1_FE|open": {
			PullRequests: []models.PullRequest{recentPR(1, "fresh"), stalePR(2)},
		},
		"test-org/Team2_BE|open": {
			PullRequests: []models.PullRequest{recentPR(3, "backend work")},
		},
		"test-org/Team1_FE|merged": {
			PullRequests: []models.PullRequest{recentPR(4, "shipped")},
		},
	}}

	builder := NewBuilder(testConfig(2), lister)
	data := builder.Build(context.Background(), testNow)

	if data.OpenCount != 2 {
		t.Errorf("OpenCount = %d, want 2 (stale entry must be filtered)", data.OpenCount)
	}
	if data.MergedCount != 1 {
		t.Errorf("MergedCount = %d, want 1", data.MergedCount)
	}
	if data.Total() != 3 {
		t.Errorf("Total() = %d, want 3", data.Total())
	}

	wantCutoff := time.Date(2025, time.September, 5, 0, 0, 0, 0, time.Local)
	if !data.Cutoff.Equal(wantCutoff) {
		t.Errorf("Cutoff = %v, want %v", data.Cutoff, wantCutoff)
	}

	// FE section then BE section, per state
	if len(data.OpenSections) != 2 {
		t.Fatalf("OpenSections = %d, want 2", len(data.OpenSections))
	}
	if data.OpenSections[0].Category != models.CategoryFrontend || data.OpenSections[1].Category != models.CategoryBackend {
		t.Errorf("section order = %s, %s, want FE, BE", data.OpenSections[0].Category, data.OpenSections[1].Category)
	}
	if len(data.OpenSections[0].Entries) != 1 || data.OpenSections[0].Entries[0].Repository != "Team1_FE" {
		t.Errorf("FE open entries = %+v, want single Team1_FE entry", data.OpenSections[0].Entries)
	}
	if len(data.OpenSections[1].Entries) != 1 || data.OpenSections[1].Entries[0].Number != 3 {
		t.Errorf("BE open entries = %+v, want single #3 entry", data.OpenSections[1].Entries)
	}

	// 2 teams x 2 categories x 2 states
	if len(lister.calls) != 8 {
		t.Errorf("lister called %d times, want 8", len(lister.calls))
	}
}

// TestBuilder_Build_FailedQuery checks a failed repository contributes
// nothing to either section and the run still completes
func TestBuilder_Build_FailedQuery(t *testing.T) {
	lister := &fakeLister{results: map[string]models.QueryResult{
		"test-org/Team5_FE|open": {
			Err: fmt.Errorf("exit status 1"),
		},
		"test-org/Team5_FE|merged": {
			Err: fmt.Errorf("exit status 1"),
		},
		"test-org/Team5_BE|open": {
			PullRequests: []models.PullRequest{recentPR(10, "still fine")},
		},
	}}

	builder := NewBuilder(testConfig(5), lister)
	data := builder.Build(context.Background(), testNow)

	if data.OpenCount != 1 || data.MergedCount != 0 {
		t.Errorf("counts = %d open / %d merged, want 1 / 0", data.OpenCount, data.MergedCount)
	}
	if data.FailedQueries != 2 {
		t.Errorf("FailedQueries = %d, want 2", data.FailedQueries)
	}

	for _, section := range append(data.OpenSections, data.MergedSections...) {
		for _, entry := range section.Entries {
			if entry.Repository == "Team5_FE" {
				t.Errorf("failed repository Team5_FE appeared in section %s/%s", section.State, section.Category)
			}
		}
	}
}

// TestBuilder_Build_QueryOrder checks FE repositories are queried before BE
func TestBuilder_Build_QueryOrder(t *testing.T) {
	lister := &fakeLister{}
	builder := NewBuilder(testConfig(2), lister)
	builder.Build(context.Background(), testNow)

	wantPrefix := []string{
		"test-org/Team1_FE|open",
		"test-org/Team2_FE|open",
		"test-org/Team1_BE|open",
		"test-org/Team2_BE|open",
	}
	for i, want := range wantPrefix {
		if lister.calls[i] != want {
			t.Fatalf("call %d = %q, want %q (all calls: %s)", i, lister.calls[i], want, strings.Join(lister.calls, ", "))
		}
	}
}

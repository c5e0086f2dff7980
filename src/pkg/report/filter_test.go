package report

import (
	"testing"
	"time"

	"github.com/gh-nvat/pr-radar/src/pkg/models"
)

// TestUpdatedSince tests the recency filter against the cutoff date
func TestUpdatedSince(t *testing.T) {
	cutoff := time.Date(2025, time.September, 5, 0, 0, 0, 0, time.Local)

	prs := []models.PullRequest{
		{Number: 1, Title: "on the cutoff date", UpdatedAt: time.Date(2025, time.September, 5, 10, 0, 0, 0, time.UTC)},
		{Number: 2, Title: "day before", UpdatedAt: time.Date(2025, time.September, 4, 23, 59, 59, 0, time.UTC)},
		{Number: 3, Title: "well after", UpdatedAt: time.Date(2025, time.September, 8, 9, 0, 0, 0, time.UTC)},
	}

	kept := UpdatedSince(prs, cutoff)

	if len(kept) != 2 {
		t.Fatalf("UpdatedSince kept %d entries, want 2", len(kept))
	}
	if kept[0].Number != 1 || kept[1].Number != 3 {
		t.Errorf("UpdatedSince kept %v, want numbers 1 and 3", kept)
	}
}

// TestUpdatedSince_Empty checks nil input stays empty
func TestUpdatedSince_Empty(t *testing.T) {
	cutoff := time.Date(2025, time.September, 5, 0, 0, 0, 0, time.Local)
	if kept := UpdatedSince(nil, cutoff); len(kept) != 0 {
		t.Errorf("UpdatedSince(nil) = %v, want empty", kept)
	}
}

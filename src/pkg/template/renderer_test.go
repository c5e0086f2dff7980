package template

import (
	"strings"
	"testing"
	"time"

	"github.com/gh-nvat/pr-radar/src/pkg/models"
)

func sampleReportData() *models.ReportData {
	return &models.ReportData{
		Organization: "test-org",
		BaseBranch:   "main",
		Cutoff:       time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC),
		GeneratedAt:  time.Date(2025, time.September, 7, 14, 0, 0, 0, time.UTC),
		OpenSections: []models.ReportSection{
			{
				State:    models.QueryStateOpen,
				Category: models.CategoryFrontend,
				Entries: []models.ReportEntry{
					{Repository: "Team1_FE", Number: 12, Title: "Add login page", HeadRefName: "feature/login", State: "OPEN"},
				},
			},
			{State: models.QueryStateOpen, Category: models.CategoryBackend},
		},
		MergedSections: []models.ReportSection{
			{State: models.QueryStateMerged, Category: models.CategoryFrontend},
			{
				State:    models.QueryStateMerged,
				Category: models.CategoryBackend,
				Entries: []models.ReportEntry{
					{
						Repository:  "TEAM17_BE",
						Number:      3,
						Title:       "Fix race",
						HeadRefName: "fix/race",
						State:       "MERGED",
						UpdatedAt:   time.Date(2025, time.September, 6, 9, 0, 0, 0, time.UTC),
					},
				},
			},
		},
		OpenCount:   1,
		MergedCount: 1,
	}
}

// TestRenderer_DefaultTemplate renders the embedded template end to end
func TestRenderer_DefaultTemplate(t *testing.T) {
	r := NewRenderer()

	rendered, err := r.RenderString(r.GetDefaultReportTemplate(), sampleReportData())
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}

	wantFragments := []string{
		"test-org PR status (main branch)",
		"Period: 2025-09-05 ~ 2025-09-07 14:00:00",
		"🔵 OPEN pull requests",
		"Frontend (FE)",
		"Backend (BE)",
		"Team1_FE - #12: Add login page (main ← feature/login) [OPEN]",
		"TEAM17_BE - #3: Fix race (main ← fix/race) ✅ MERGED (2025-09-06)",
		"OPEN: 1",
		"MERGED: 1",
		"Total: 2",
	}

	for _, fragment := range wantFragments {
		if !strings.Contains(rendered, fragment) {
			t.Errorf("rendered report missing %q\n---\n%s", fragment, rendered)
		}
	}
}

// TestRenderer_RenderString tests error handling on bad templates
func TestRenderer_RenderString(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantErr  bool
	}{
		{name: "plain text", template: "no placeholders", wantErr: false},
		{name: "valid placeholder", template: "org: {{.Organization}}", wantErr: false},
		{name: "unclosed action", template: "{{.Organization", wantErr: true},
		{name: "unknown field", template: "{{.DoesNotExist}}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer()
			_, err := r.RenderString(tt.template, sampleReportData())
			if (err != nil) != tt.wantErr {
				t.Errorf("RenderString() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestRenderer_RenderWithTemplates tests the missing-directory error path
func TestRenderer_RenderWithTemplates(t *testing.T) {
	r := NewRenderer()
	if _, err := r.RenderWithTemplates("/nonexistent/templates", sampleReportData()); err == nil {
		t.Error("RenderWithTemplates() expected an error for missing directory")
	}
}

package models

import "time"

// ReportEntry is one pull request line in the rendered report
type ReportEntry struct {
	Repository  string
	Number      int
	Title       string
	HeadRefName string
	State       string
	UpdatedAt   time.Time
}

// ReportSection groups the entries of one query state for one category
type ReportSection struct {
	State    string
	Category RepoCategory
	Entries  []ReportEntry
}

// ReportData represents the complete report data structure passed to
// the template renderer
type ReportData struct {
	Organization string
	BaseBranch   string
	Cutoff       time.Time
	GeneratedAt  time.Time

	// FE section followed by BE section, per state
	OpenSections   []ReportSection
	MergedSections []ReportSection

	OpenCount   int
	MergedCount int

	// Number of repository/state queries that failed and were reported
	// as empty
	FailedQueries int
}

// Total returns the combined open and merged entry count
func (d *ReportData) Total() int {
	return d.OpenCount + d.MergedCount
}

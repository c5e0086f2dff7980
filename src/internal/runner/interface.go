package runner

import "github.com/gh-nvat/pr-radar/src/pkg/models"

type RunnerInterface interface {
	// Initialize verifies preconditions (tool availability,
	// authentication, organization access) before any report work
	Initialize() error

	// Collect walks the roster and builds the report data
	Collect() (*models.ReportData, error)

	// Render turns report data into the final report text
	Render(data *models.ReportData) (string, error)

	// Output prints the report and writes optional artifacts
	Output(report string) error

	// Main routine to process the runner
	Process() error
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the values the report was originally hardwired to.
const (
	DefaultOrganization = "kakao-tech-campus-3rd-step3"
	DefaultBaseBranch   = "main"
	DefaultTeamCount    = 22
	DefaultPageLimit    = 50
	DefaultAnalyzerCmd  = "claude"
)

// ConfigLoader defines the interface for loading configuration files
type ConfigLoader interface {
	// LoadReportConfig loads the report configuration from a YAML file,
	// falling back to defaults when path is empty
	LoadReportConfig(path string) (*ReportConfig, error)
	// ValidateReportConfig validates the report configuration
	ValidateReportConfig(config *ReportConfig) error
}

// Loader handles loading configuration files
type Loader struct{}

// Ensure Loader implements ConfigLoader
var _ ConfigLoader = (*Loader)(nil)

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// Default returns the built-in report configuration
func Default() *ReportConfig {
	return &ReportConfig{
		Organization: DefaultOrganization,
		BaseBranch:   DefaultBaseBranch,
		TeamCount:    DefaultTeamCount,
		PageLimit:    DefaultPageLimit,
		Analyzer: AnalyzerConfig{
			Command: DefaultAnalyzerCmd,
			Args:    []string{"-p"},
		},
	}
}

// LoadReportConfig loads the report configuration from a YAML file.
// Values absent from the file keep their defaults. An empty path
// returns the defaults unchanged.
func (l *Loader) LoadReportConfig(path string) (*ReportConfig, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse report config: %w", err)
	}

	if err := l.ValidateReportConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ValidateReportConfig validates the report configuration
func (l *Loader) ValidateReportConfig(config *ReportConfig) error {
	if config.Organization == "" {
		return fmt.Errorf("organization is required")
	}
	if config.BaseBranch == "" {
		return fmt.Errorf("baseBranch is required")
	}
	if config.TeamCount <= 0 {
		return fmt.Errorf("teamCount must be positive, got %d", config.TeamCount)
	}
	if config.PageLimit <= 0 {
		return fmt.Errorf("pageLimit must be positive, got %d", config.PageLimit)
	}
	if config.Analyzer.Command == "" {
		return fmt.Errorf("analyzer command is required")
	}
	return nil
}

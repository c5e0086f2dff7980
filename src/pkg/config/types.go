package config

// ReportConfig represents the complete report configuration
type ReportConfig struct {
	Organization string         `yaml:"organization"`
	BaseBranch   string         `yaml:"baseBranch"`
	TeamCount    int            `yaml:"teamCount"`
	PageLimit    int            `yaml:"pageLimit"`
	Analyzer     AnalyzerConfig `yaml:"analyzer"`
}

// AnalyzerConfig defines the external AI assistant the rendered report
// is piped to when analysis is requested
type AnalyzerConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
}

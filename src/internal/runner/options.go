package runner

type Options struct {
	// Query mode
	QueryMode string // "cli" or "api"

	// Common options
	ConfigPath    string
	TemplatesPath string
	OutputDir     string

	// Optional steps
	Analyze     bool
	EnableTrace bool

	LogLevel string
}

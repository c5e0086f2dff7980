package template

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/gh-nvat/pr-radar/src/pkg/models"
)

// Renderer handles template rendering
type Renderer struct {
	funcMap template.FuncMap
}

// NewRenderer creates a new template renderer
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: template.FuncMap{
			"gt": func(a, b int) bool { return a > b },
			"categoryLabel": func(c models.RepoCategory) string {
				switch c {
				case models.CategoryFrontend:
					return "Frontend (FE)"
				case models.CategoryBackend:
					return "Backend (BE)"
				default:
					return string(c)
				}
			},
		},
	}
}

// RenderWithTemplates renders the report from a template directory. The
// directory must contain report.md.tmpl (main) and section.md.tmpl
// (included per section under the name "section").
func (r *Renderer) RenderWithTemplates(templateDir string, data interface{}) (string, error) {
	reportPath := filepath.Join(templateDir, "report.md.tmpl")
	sectionPath := filepath.Join(templateDir, "section.md.tmpl")

	if _, err := os.Stat(reportPath); err != nil {
		return "", fmt.Errorf("report template not found: %w", err)
	}
	if _, err := os.Stat(sectionPath); err != nil {
		return "", fmt.Errorf("section template not found: %w", err)
	}

	tmpl := template.New("").Funcs(r.funcMap)

	sectionContent, err := os.ReadFile(sectionPath)
	if err != nil {
		return "", fmt.Errorf("failed to read section template: %w", err)
	}
	if _, err := tmpl.New("section").Parse(string(sectionContent)); err != nil {
		return "", fmt.Errorf("failed to parse section template: %w", err)
	}

	reportContent, err := os.ReadFile(reportPath)
	if err != nil {
		return "", fmt.Errorf("failed to read report template: %w", err)
	}
	mainTmpl, err := tmpl.New("report").Parse(string(reportContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	var buf bytes.Buffer
	if err := mainTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute report template: %w", err)
	}

	return buf.String(), nil
}

// RenderString renders a template string with the provided data
func (r *Renderer) RenderString(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("template").Funcs(r.funcMap).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GetDefaultReportTemplate returns the default report template.
// It expects a models.ReportData value.
func (r *Renderer) GetDefaultReportTemplate() string {
	return `============================================================
📋 {{.Organization}} PR status ({{.BaseBranch}} branch)
Period: {{.Cutoff.Format "2006-01-02"}} ~ {{.GeneratedAt.Format "2006-01-02 15:04:05"}}
============================================================

🔵 OPEN pull requests
--------------------------------------------------
{{range .OpenSections}}### {{categoryLabel .Category}}
{{range .Entries}}  {{.Repository}} - #{{.Number}}: {{.Title}} ({{$.BaseBranch}} ← {{.HeadRefName}}) [OPEN]
{{end}}
{{end}}🟢 MERGED pull requests (since {{.Cutoff.Format "2006-01-02"}})
--------------------------------------------------
{{range .MergedSections}}### {{categoryLabel .Category}}
{{range .Entries}}  {{.Repository}} - #{{.Number}}: {{.Title}} ({{$.BaseBranch}} ← {{.HeadRefName}}) ✅ MERGED ({{.UpdatedAt.Format "2006-01-02"}})
{{end}}
{{end}}============================================================
📊 Summary
--------------------------------------------------
OPEN: {{.OpenCount}}
MERGED: {{.MergedCount}}
Total: {{.Total}}
============================================================
`
}

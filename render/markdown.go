package render

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"

	"github.com/awaitly-go/analyzer"
	"github.com/awaitly-go/analyzer/ir"
)

var markdownTemplate = template.Must(template.New("markdown").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`# {{.Workflow.WorkflowName}}

{{if .Workflow.Description}}{{.Workflow.Description}}

{{end -}}
## Dependencies

| Name | Type |
|---|---|
{{range .Workflow.Dependencies}}| {{.Name}} | {{if .TypeSignature}}{{.TypeSignature}}{{else}}-{{end}} |
{{end}}
## Steps

| Step | Errors | Out | Reads |
|---|---|---|---|
{{range .Steps}}| {{.StepID}} | {{if .Errors}}{{join .Errors ", "}}{{else}}-{{end}} | {{if .Out}}{{.Out}}{{else}}-{{end}} | {{if .Reads}}{{join .Reads ", "}}{{else}}-{{end}} |
{{end}}
## Data-flow edges

| From | To | Key |
|---|---|---|
{{range .DataFlow.Edges}}| {{.From}} | {{.To}} | {{.Key}} |
{{end}}
{{if .Findings}}## Diagnostics

| Rule | Step | Message |
|---|---|---|
{{range .Findings}}| {{.RuleID}} | {{.StepID}} | {{.Message}} |
{{end}}
{{end}}`))

type markdownData struct {
	Workflow ir.Workflow
	Steps    []*ir.Step
	analyzer.WorkflowAnalysis
}

// Markdown renders wa as a GitHub-flavored Markdown workflow summary:
// dependency table, step table (errors/out/reads), data-flow edge list,
// and strict-diagnostic findings.
func Markdown(wa analyzer.WorkflowAnalysis) (string, error) {
	var buf bytes.Buffer
	data := markdownData{
		Workflow:         wa.Workflow,
		Steps:            ir.Steps(wa.Workflow.Children),
		WorkflowAnalysis: wa,
	}
	if err := markdownTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MarkdownHTML renders wa's Markdown summary, then converts it to an HTML
// fragment via goldmark for --format=markdown --html (a second, lighter
// HTML path alongside the Mermaid-sidecar HTML document).
func MarkdownHTML(wa analyzer.WorkflowAnalysis) (string, error) {
	md, err := Markdown(wa)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

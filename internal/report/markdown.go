package report

import (
	"bytes"
	"fmt"
	"text/template"
)

var markdownTemplate = template.Must(
	template.ParseFS(templateFs, "templates/report.md.tmpl"),
)

// RenderMarkdown produces the report as a Markdown document from the same
// payload the HTML renderer consumes.
func RenderMarkdown(data Data) (string, error) {
	buf := new(bytes.Buffer)
	if err := markdownTemplate.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

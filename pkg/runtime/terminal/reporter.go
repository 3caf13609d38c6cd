package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

// Reporter outputs reports to the console as plain indented text
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

const textTemplate = `
{{.Title}}{{if .Period.Duration}} ({{.Period.Duration}} days){{end}}
{{if not .Period.Start.IsZero}}Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}}
{{end}}Total: {{.Currency}} {{printf "%.2f" .TotalAmount}}
{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{range .Details}}- {{.Name}}: {{.Value}}{{if .Unit}} {{.Unit}}{{end}}
{{if .Description}}  {{.Description}}
{{end}}{{end}}{{end}}`

func (c *Reporter) Handle(report *domain.Report) error {
	t, err := template.New("report").Parse(textTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

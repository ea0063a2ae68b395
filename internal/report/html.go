package report

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"
	"time"

	"rojobs/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/report.html.tmpl
var reportTemplate string

var pageTmpl = template.Must(template.New("report").Parse(reportTemplate))

type Options struct {
	RunID       string
	Keyword     string
	GeneratedAt time.Time
}

type card struct {
	domain.JobRecord
	SearchTitle    string
	SearchLocation string
}

type pageData struct {
	Total        int
	SourceCount  int
	CompanyCount int
	Companies    []Count
	Sources      []Count
	Jobs         []card
	RunID        string
	Keyword      string
	GeneratedAt  string
}

// RenderHTML writes the self-contained report page. Record text is escaped
// by html/template for the context it lands in.
func RenderHTML(w io.Writer, jobs []domain.JobRecord, opts Options) error {
	t := Compute(jobs)
	lower := cases.Lower(language.Romanian)

	data := pageData{
		Total:        t.Total,
		SourceCount:  len(t.BySource),
		CompanyCount: len(t.ByCompany),
		Companies:    ByName(t.ByCompany),
		Sources:      ByName(t.BySource),
		Jobs:         make([]card, 0, len(jobs)),
		RunID:        opts.RunID,
		Keyword:      opts.Keyword,
	}
	if !opts.GeneratedAt.IsZero() {
		data.GeneratedAt = opts.GeneratedAt.Format("2006-01-02 15:04:05")
	}
	for _, j := range jobs {
		data.Jobs = append(data.Jobs, card{
			JobRecord:      j,
			SearchTitle:    lower.String(j.Title),
			SearchLocation: lower.String(j.Location),
		})
	}
	return pageTmpl.Execute(w, data)
}

func BuildHTML(jobs []domain.JobRecord, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, jobs, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

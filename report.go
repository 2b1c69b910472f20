package cdmn

import (
	"io"
	"strconv"
	"text/template"
)

const reportTemplateData = `{{ if .Columns -}}
Cannot translate {{ .Len }} cell{{ if ne .Len 1 }}s{{ end }}:
{{ range .Columns -}}
column {{ quote .Header }}:
{{ range .Values }}	{{ quote . }}
{{ end -}}
{{ end -}}
{{ else -}}
All cells translated.
{{ end -}}
`

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(reportTemplateData))

type columnData struct {
	Header string
	Values []string
}

type reportData struct {
	Len     int
	Columns []columnData
}

// WriteReport writes a human readable list of the failed values per
// column to w.
func (l *ErrorLog) WriteReport(w io.Writer) error {
	data := reportData{Len: l.Len()}
	for _, header := range l.Columns() {
		data.Columns = append(data.Columns, columnData{
			Header: header,
			Values: l.Values(header),
		})
	}
	return reportTemplate.Execute(w, data)
}

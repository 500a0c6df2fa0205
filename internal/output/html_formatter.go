package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
)

// HTMLFormatter produces a standalone HTML page with the charts, gauge and table.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"payment": FormatPayment,
	"pct":     FormatPercentage,
	"amount":  FormatAmountLabel,
	"json":    templateJSON,
}).Parse(htmlTemplateSource))

// templateJSON embeds v as a JS literal; marshal failures abort Execute.
func templateJSON(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"EMI=₹43,957.94", "TotalInterest=₹27,495", "Category: Medium loan (₹5L - ₹25L)"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in output, got: %s", want, content)
		}
	}
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(buildTestReport(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"EMI AMORTIZATION REPORT", "1 (2026)", "2 (2027)", "Nov-2026", "Oct-2027", "94.79%", "TOTAL"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in verbose output", want)
		}
	}
}

func TestConsoleFormattersEmptySchedule(t *testing.T) {
	for _, f := range []Formatter{ConsoleFormatter{}, ConsoleVerboseFormatter{}} {
		out, err := f.Format(emptyTestReport())
		if err != nil {
			t.Fatalf("%s: %v", f.Name(), err)
		}
		if !strings.Contains(string(out), "No schedule") {
			t.Fatalf("%s: expected no-data message, got: %s", f.Name(), out)
		}
	}
}

func TestCSVScheduleExporter(t *testing.T) {
	out, err := CSVScheduleExporter{}.Format(buildTestReport(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 13 {
		t.Fatalf("expected 13 lines (header+12 rows), got %d", len(lines))
	}
	if lines[1] != "1,Nov-2026,43957.94,4166.67,39791.28,460208.72,7.96" {
		t.Fatalf("first row = %q", lines[1])
	}
	if !strings.HasSuffix(lines[12], ",0.00,100.00") {
		t.Fatalf("last row = %q", lines[12])
	}
}

func TestCSVScheduleExporterEmpty(t *testing.T) {
	out, err := CSVScheduleExporter{}.Format(emptyTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(string(out)), "\n"); len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
}

func TestCSVYearlyExporter(t *testing.T) {
	out, err := CSVYearlyExporter{}.Format(buildTestReport(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "1,2026,2,true,") || !strings.HasPrefix(lines[2], "2,2027,10,true,") {
		t.Fatalf("rows = %v", lines[1:])
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded struct {
		Summary struct {
			Periods int    `json:"periods"`
			TierKey string `json:"tier_key"`
		} `json:"summary"`
		Chart struct {
			Labels []string `json:"labels"`
		} `json:"chart"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded.Summary.Periods != 12 || decoded.Summary.TierKey != "medium" || len(decoded.Chart.Labels) != 12 {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestHTMLFormatterBasic(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport(t))
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"<canvas id=\"bar\">", "1 (2026)", "Medium loan (₹5L - ₹25L)", "Nov-2026"} {
		if !strings.Contains(content, want) {
			t.Fatalf("html output missing %q", want)
		}
	}
}

func TestTemplateJSONSurfacesMarshalErrors(t *testing.T) {
	if got, err := templateJSON(map[string]int{"n": 1}); err != nil || got != `{"n":1}` {
		t.Fatalf("templateJSON = %q, %v", got, err)
	}

	tmpl := template.Must(template.New("t").Funcs(template.FuncMap{"json": templateJSON}).Parse(`<script>var v = {{json .}};</script>`))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, math.Inf(1)); err == nil {
		t.Fatalf("expected execute error for an unmarshalable value, got output %q", buf.String())
	}
}

// Golden snapshot tests (prefix-based) ensure key headers remain stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
	}{
		{"console_verbose", "console_verbose.golden", ConsoleVerboseFormatter{}},
		{"console_lite", "console_lite.golden", ConsoleFormatter{}},
		{"csv_schedule", "csv_schedule.golden", CSVScheduleExporter{}},
		{"csv_yearly", "csv_yearly.golden", CSVYearlyExporter{}},
		{"html", "html_prefix.golden", HTMLFormatter{}},
		{"json", "json_prefix.golden", JSONFormatter{}},
	}

	report := buildTestReport(t)
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	for _, tc := range cases {
		out, err := tc.formatter.Format(report)
		if err != nil {
			t.Fatalf("%s: format error: %v", tc.name, err)
		}
		goldenPath := filepath.Join("testdata", tc.golden)
		if update {
			line := firstLine(string(out)) + "\n"
			if err := os.WriteFile(goldenPath, []byte(line), 0644); err != nil {
				t.Fatalf("%s: update golden failed: %v", tc.name, err)
			}
		}
		data, err := os.ReadFile(goldenPath)
		if err != nil {
			t.Fatalf("%s: read golden: %v", tc.name, err)
		}
		if !strings.HasPrefix(string(out), strings.TrimSpace(string(data))) {
			t.Fatalf("%s: output does not match golden prefix %q", tc.name, strings.TrimSpace(string(data)))
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func TestFormatterAliasResolution(t *testing.T) {
	cases := map[string]string{
		"console-verbose": "console",
		" JSON ":          "json",
		"summary":         "console-lite",
		"csv-yearly":      "yearly-csv",
		"schedule":        "csv",
	}
	for alias, want := range cases {
		f := GetFormatterByName(alias)
		if f == nil {
			t.Fatalf("alias %q did not resolve to a formatter", alias)
		}
		if f.Name() != want {
			t.Fatalf("alias %q resolved to %q, want %q", alias, f.Name(), want)
		}
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := GenerateReport(buildTestReport(t), "definitely-not-a-format", t.TempDir())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "Try one of:") || !strings.Contains(msg, "yearly-csv") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}
}

func TestGenerateReportWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	report := buildTestReport(t)

	files, err := GenerateReport(report, "csv", dir)
	if err != nil {
		t.Fatalf("GenerateReport csv error: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "emi_schedule_20261017_100000.csv" {
		t.Fatalf("files = %v", files)
	}

	files, err = GenerateReport(report, "all", dir)
	if err != nil {
		t.Fatalf("GenerateReport all error: %v", err)
	}
	if len(files) != 2 || filepath.Ext(files[0]) != ".txt" || filepath.Ext(files[1]) != ".csv" {
		t.Fatalf("files = %v", files)
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			t.Fatalf("missing report file %s: %v", f, err)
		}
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, buildTestReport(t), "lite"); err != nil {
		t.Fatalf("WriteReport error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "EMI SUMMARY") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
	if err := WriteReport(&buf, buildTestReport(t), "xml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestAvailableFormatterNamesSorted(t *testing.T) {
	names := AvailableFormatterNames()
	want := []string{"console", "console-lite", "csv", "html", "json", "yearly-csv"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("names = %v, want %v", names, want)
	}
}

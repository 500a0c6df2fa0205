package output

import (
	"fmt"
	"io"

	"github.com/loanlens/emi-calculator/internal/calculation"
	"github.com/loanlens/emi-calculator/internal/domain"
)

// Report is everything a formatter renders for one calculation.
type Report struct {
	Result  *domain.CalculationResult `json:"result"`
	Summary Summary                   `json:"summary"`
	Chart   ChartData                 `json:"chart"`
	Pie     PieData                   `json:"pie"`
	Gauge   Gauge                     `json:"gauge"`
	Table   Table                     `json:"table"`
}

// BuildReport assembles the presentation views of a result. A nil classifier
// uses the default tier table and gauge.
func BuildReport(result *domain.CalculationResult, c *calculation.Classifier, style LabelStyle) *Report {
	if c == nil {
		c = calculation.DefaultClassifier()
	}
	summary := BuildSummary(result)
	return &Report{
		Result:  result,
		Summary: summary,
		Chart:   BuildChartData(result, style),
		Pie:     BuildPieData(result.Input.Principal, summary.TotalInterest),
		Gauge:   BuildGauge(c, result.Input.Principal),
		Table:   BuildTable(result.Schedule, nil),
	}
}

// GenerateReport formats the report and writes it to a timestamped file in dir.
// The special format "all" writes the verbose console and per-period CSV outputs.
func GenerateReport(report *Report, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVScheduleExporter{}} {
			name, err := WriteFormatted(f, report, dir)
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupportedFormat(format)
	}
	name, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// WriteReport renders the report in the given format to w.
func WriteReport(w io.Writer, report *Report, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupportedFormat(format)
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format %s report: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

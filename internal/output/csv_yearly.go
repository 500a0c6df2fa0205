package output

import (
	"bytes"
	"encoding/csv"
)

// CSVYearlyExporter writes one row per calendar year, flagging partial years.
type CSVYearlyExporter struct{}

func (c CSVYearlyExporter) Name() string      { return "yearly-csv" }
func (c CSVYearlyExporter) Extension() string { return "csv" }

func (c CSVYearlyExporter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Year", "CalendarYear", "Months", "Partial", "Payment", "Interest", "Principal", "ClosingBalance", "PercentPaid"}); err != nil {
		return nil, err
	}
	for _, y := range report.Table.Years {
		row := []string{
			intToString(y.Ordinal),
			intToString(y.Year),
			intToString(len(y.Months)),
			boolToString(len(y.Months) < 12),
			y.Payment.StringFixed(2),
			y.Interest.StringFixed(2),
			y.Principal.StringFixed(2),
			y.ClosingBalance.StringFixed(2),
			y.PercentPaid.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

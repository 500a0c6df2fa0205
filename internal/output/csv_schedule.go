package output

import (
	"bytes"
	"encoding/csv"

	"github.com/loanlens/emi-calculator/pkg/dateutil"
)

// CSVScheduleExporter writes one row per period.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string      { return "csv" }
func (c CSVScheduleExporter) Extension() string { return "csv" }

func (c CSVScheduleExporter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Period", "Month", "Payment", "Interest", "Principal", "Balance", "PercentPaid"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	sch := report.Result.Schedule
	if !sch.IsEmpty() {
		for _, p := range sch.Periods {
			row := []string{
				intToString(p.Index),
				dateutil.MonthLabel(p.Date),
				p.Payment.StringFixed(2),
				p.Interest.StringFixed(2),
				p.Principal.StringFixed(2),
				p.Balance.StringFixed(2),
				PercentPaid(sch.Principal, p.Balance).StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ConsoleVerboseFormatter renders the full amortization report with every month.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

const ruleWidth = 81

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	s := report.Summary

	fmt.Fprintln(&buf, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(&buf, "EMI AMORTIZATION REPORT")
	fmt.Fprintln(&buf, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "LOAN DETAILS")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "Loan Amount:      %s\n", FormatAmountLabel(s.Principal))
	fmt.Fprintf(&buf, "Interest Rate:    %s p.a.\n", FormatPercentage(report.Result.Input.AnnualRatePercent))
	fmt.Fprintf(&buf, "Tenure:           %d months\n", report.Result.Input.TermMonths)
	fmt.Fprintf(&buf, "Category:         %s\n", s.TierLabel)
	fmt.Fprintf(&buf, "Gauge:            %.2f° (needle %.2f°)\n", s.GaugeAngle, s.NeedleAngle)
	fmt.Fprintln(&buf)

	if s.Periods == 0 {
		fmt.Fprintln(&buf, "No schedule: enter a loan amount and tenure.")
		return buf.Bytes(), nil
	}

	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "Monthly EMI:      %s\n", FormatPayment(s.Payment))
	fmt.Fprintf(&buf, "Principal:        %s (%.2f%%)\n", FormatCurrency(s.Principal), report.Pie.Shares[0])
	fmt.Fprintf(&buf, "Total Interest:   %s (%.2f%%)\n", FormatCurrency(s.TotalInterest), report.Pie.Shares[1])
	fmt.Fprintf(&buf, "Total Payment:    %s\n", FormatCurrency(s.TotalPayment))
	fmt.Fprintln(&buf)

	writeScheduleTable(&buf, report.Table)
	return buf.Bytes(), nil
}

func writeScheduleTable(w io.Writer, table Table) {
	fmt.Fprintln(w, "AMORTIZATION SCHEDULE")
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(w, "%-12s %16s %16s %16s %18s\n", "Year", "Principal", "Interest", "Total", "Balance")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	for _, y := range table.Years {
		fmt.Fprintf(w, "%-12s %16s %16s %16s %18s  %s%%\n",
			y.Title(),
			FormatCurrency(y.Principal),
			FormatCurrency(y.Interest),
			FormatCurrency(y.Payment),
			FormatCurrency(y.ClosingBalance),
			y.PercentPaid.StringFixed(2),
		)
		for _, m := range y.Months {
			fmt.Fprintf(w, "  %-10s %16s %16s %16s %18s  %s%%\n",
				m.Label,
				FormatCurrency(m.Principal),
				FormatCurrency(m.Interest),
				FormatCurrency(m.Payment),
				FormatCurrency(m.Balance),
				m.PercentPaid.StringFixed(2),
			)
		}
	}
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(w, "%-12s %16s %16s %16s\n", "TOTAL",
		FormatCurrency(table.TotalPrincipal),
		FormatCurrency(table.TotalInterest),
		FormatCurrency(table.TotalPayment),
	)
}

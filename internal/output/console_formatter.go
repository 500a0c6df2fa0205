package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter provides a concise console summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	s := report.Summary
	fmt.Fprintln(&buf, "EMI SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if s.Periods == 0 {
		fmt.Fprintln(&buf, "No schedule: enter a loan amount and tenure.")
		return buf.Bytes(), nil
	}
	fmt.Fprintf(&buf, "Loan: %s  Rate: %s  Tenure: %d months\n",
		FormatCurrency(s.Principal), FormatPercentage(report.Result.Input.AnnualRatePercent), s.Periods)
	fmt.Fprintf(&buf, "EMI=%s TotalInterest=%s TotalPayment=%s\n",
		FormatPayment(s.Payment), FormatCurrency(s.TotalInterest), FormatCurrency(s.TotalPayment))
	fmt.Fprintf(&buf, "Category: %s\n", s.TierLabel)
	return buf.Bytes(), nil
}

package output

import (
	"time"

	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/loanlens/emi-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// MonthRow is one expandable row under a year in the amortization table.
type MonthRow struct {
	Index       int             `json:"index"`
	Label       string          `json:"label"`
	Date        time.Time       `json:"date"`
	Payment     decimal.Decimal `json:"payment"`
	Interest    decimal.Decimal `json:"interest"`
	Principal   decimal.Decimal `json:"principal"`
	Balance     decimal.Decimal `json:"balance"`
	PercentPaid decimal.Decimal `json:"percent_paid"`
}

// YearRow is the collapsed per-year summary row.
type YearRow struct {
	Ordinal        int             `json:"ordinal"`
	Year           int             `json:"year"`
	Payment        decimal.Decimal `json:"payment"`
	Interest       decimal.Decimal `json:"interest"`
	Principal      decimal.Decimal `json:"principal"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	PercentPaid    decimal.Decimal `json:"percent_paid"`
	Months         []MonthRow      `json:"months"`
}

// Title renders the "1 (2026)" heading used by the table.
func (y YearRow) Title() string {
	return intToString(y.Ordinal) + " (" + intToString(y.Year) + ")"
}

// Table is the year/month amortization table.
type Table struct {
	Years          []YearRow       `json:"years"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	TotalPrincipal decimal.Decimal `json:"total_principal"`
}

// BuildTable groups the schedule into year rows with nested month rows.
// Month labels come from each period's Date so they always match the chart.
// A nil labelFn uses dateutil.MonthLabel.
func BuildTable(schedule *domain.Schedule, labelFn func(time.Time) string) Table {
	if labelFn == nil {
		labelFn = dateutil.MonthLabel
	}
	table := Table{Years: []YearRow{}}
	if schedule.IsEmpty() {
		return table
	}
	principal := schedule.Principal
	table.TotalPayment = schedule.TotalPayment
	table.TotalInterest = schedule.TotalInterest
	table.TotalPrincipal = schedule.TotalPrincipal

	table.Years = make([]YearRow, 0, len(schedule.Years))
	for _, y := range schedule.Years {
		row := YearRow{
			Ordinal:        y.Ordinal,
			Year:           y.Year,
			Payment:        y.Payment,
			Interest:       y.Interest,
			Principal:      y.Principal,
			ClosingBalance: y.ClosingBalance,
			PercentPaid:    PercentPaid(principal, y.ClosingBalance),
			Months:         make([]MonthRow, 0, len(y.Periods)),
		}
		for _, p := range y.Periods {
			row.Months = append(row.Months, MonthRow{
				Index:       p.Index,
				Label:       labelFn(p.Date),
				Date:        p.Date,
				Payment:     p.Payment,
				Interest:    p.Interest,
				Principal:   p.Principal,
				Balance:     p.Balance,
				PercentPaid: PercentPaid(principal, p.Balance),
			})
		}
		table.Years = append(table.Years, row)
	}
	return table
}

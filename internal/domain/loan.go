package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmountUnit names the unit a principal was entered in.
type AmountUnit string

const (
	UnitRaw      AmountUnit = "raw"
	UnitThousand AmountUnit = "thousand"
	UnitLakh     AmountUnit = "lakh"
	UnitCrore    AmountUnit = "crore"
)

var unitMultipliers = map[AmountUnit]decimal.Decimal{
	UnitRaw:      decimal.NewFromInt(1),
	UnitThousand: decimal.NewFromInt(1000),
	UnitLakh:     decimal.NewFromInt(100000),
	UnitCrore:    decimal.NewFromInt(10000000),
}

// Multiplier returns the factor that converts an amount in this unit into
// currency units. The empty unit is treated as raw currency.
func (u AmountUnit) Multiplier() (decimal.Decimal, bool) {
	if u == "" {
		u = UnitRaw
	}
	m, ok := unitMultipliers[u]
	return m, ok
}

// LoanInput is a single calculation request.
type LoanInput struct {
	Principal         decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	TermMonths        int             `yaml:"term_months" json:"term_months"`
	Unit              AmountUnit      `yaml:"unit,omitempty" json:"unit,omitempty"`
	StartDate         time.Time       `yaml:"start_date,omitempty" json:"start_date,omitempty"`
}

// PeriodRecord is one row of an amortization schedule.
type PeriodRecord struct {
	Index     int             `json:"index"`
	Date      time.Time       `json:"date"` // first day of the period's calendar month
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Payment   decimal.Decimal `json:"payment"`
	Balance   decimal.Decimal `json:"balance"` // remaining after this payment
}

// YearAggregate rolls up the periods that fall in one calendar year.
type YearAggregate struct {
	Ordinal        int             `json:"ordinal"`
	Year           int             `json:"year"`
	Periods        []PeriodRecord  `json:"periods"`
	Interest       decimal.Decimal `json:"interest"`
	Principal      decimal.Decimal `json:"principal"`
	Payment        decimal.Decimal `json:"payment"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// Schedule is a complete amortization schedule. It is never mutated after
// the generator returns it.
type Schedule struct {
	StartDate      time.Time       `json:"start_date"`
	Principal      decimal.Decimal `json:"principal"`
	PeriodicRate   decimal.Decimal `json:"periodic_rate"`
	Payment        decimal.Decimal `json:"payment"`
	Periods        []PeriodRecord  `json:"periods"`
	Years          []YearAggregate `json:"years"`
	TotalPrincipal decimal.Decimal `json:"total_principal"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
}

// IsEmpty reports whether the schedule has no periods ("no data" state).
func (s *Schedule) IsEmpty() bool {
	return s == nil || len(s.Periods) == 0
}

// FinalBalance returns the balance after the last period.
func (s *Schedule) FinalBalance() decimal.Decimal {
	if s.IsEmpty() {
		return decimal.Zero
	}
	return s.Periods[len(s.Periods)-1].Balance
}

// CalculationResult bundles everything the presentation layer needs for one request.
type CalculationResult struct {
	Input        LoanInput `json:"input"`
	Schedule     *Schedule `json:"schedule"`
	Tier         SizeTier  `json:"tier"`
	GaugeAngle   float64   `json:"gauge_angle"`
	NeedleAngle  float64   `json:"needle_angle"`
	CalculatedAt time.Time `json:"calculated_at"`
}

// LoanMessage is the envelope an embedding page posts to the chart frame.
type LoanMessage struct {
	Type string          `json:"type"`
	Data LoanMessageData `json:"data"`
}

// LoanMessageData carries loose numeric fields; anything unparsable is zero.
type LoanMessageData struct {
	Loan float64 `json:"loan"`
	Rate float64 `json:"rate"`
	Term int     `json:"term"`
}

// Classification is the gauge-facing view of a single amount.
type Classification struct {
	Amount      decimal.Decimal `json:"amount"` // currency units
	Tier        SizeTier        `json:"tier"`
	TierIndex   int             `json:"tier_index"`
	GaugeAngle  float64         `json:"gauge_angle"`
	NeedleAngle float64         `json:"needle_angle"`
	LegacyClass string          `json:"legacy_class"`
}

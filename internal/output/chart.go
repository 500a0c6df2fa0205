package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/loanlens/emi-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// LabelStyle selects how chart x-axis labels are rendered.
type LabelStyle string

const (
	LabelIndex LabelStyle = "index" // "1", "2", ...
	LabelMonth LabelStyle = "month" // "Jan-2026", ...
)

// ParseLabelStyle accepts "index" or "month" (empty means index).
func ParseLabelStyle(s string) (LabelStyle, error) {
	switch LabelStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "", LabelIndex:
		return LabelIndex, nil
	case LabelMonth:
		return LabelMonth, nil
	}
	return "", fmt.Errorf("unknown label style %q: expected index or month", s)
}

// Summary holds the scalar figures shown next to every chart.
type Summary struct {
	Principal     decimal.Decimal `json:"principal"`
	Payment       decimal.Decimal `json:"payment"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	TotalPayment  decimal.Decimal `json:"total_payment"`
	Periods       int             `json:"periods"`
	TierKey       string          `json:"tier_key"`
	TierName      string          `json:"tier_name"`
	TierLabel     string          `json:"tier_label"`
	TierColor     string          `json:"tier_color,omitempty"`
	GaugeAngle    float64         `json:"gauge_angle"`
	NeedleAngle   float64         `json:"needle_angle"`
}

// ChartData is the stacked bar chart payload. Every series has one entry per period.
type ChartData struct {
	Labels    []string  `json:"labels"`
	Principal []float64 `json:"principal"`
	Interest  []float64 `json:"interest"`
	Payment   []float64 `json:"payment"`
	Balance   []float64 `json:"balance"`
	Summary   Summary   `json:"summary"`
}

// PieData splits the total paid into principal and interest.
type PieData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Shares []float64 `json:"shares"` // percent of total, 2 decimals
	Colors []string  `json:"colors"`
}

// BuildSummary extracts the headline figures from a result.
func BuildSummary(result *domain.CalculationResult) Summary {
	s := Summary{
		Principal:   result.Input.Principal,
		TierKey:     result.Tier.Key,
		TierName:    result.Tier.Name,
		TierLabel:   TierLabel(result.Tier),
		TierColor:   result.Tier.Color,
		GaugeAngle:  result.GaugeAngle,
		NeedleAngle: result.NeedleAngle,
	}
	if sch := result.Schedule; sch != nil {
		s.Payment = sch.Payment
		s.TotalInterest = sch.TotalInterest
		s.TotalPayment = sch.TotalPayment
		s.Periods = len(sch.Periods)
	}
	return s
}

// BuildChartData lays the schedule out as parallel series rounded to 2 decimals.
func BuildChartData(result *domain.CalculationResult, style LabelStyle) ChartData {
	var periods []domain.PeriodRecord
	if result.Schedule != nil {
		periods = result.Schedule.Periods
	}
	n := len(periods)
	data := ChartData{
		Labels:    make([]string, 0, n),
		Principal: make([]float64, 0, n),
		Interest:  make([]float64, 0, n),
		Payment:   make([]float64, 0, n),
		Balance:   make([]float64, 0, n),
		Summary:   BuildSummary(result),
	}
	for _, p := range periods {
		label := strconv.Itoa(p.Index)
		if style == LabelMonth {
			label = dateutil.MonthLabel(p.Date)
		}
		data.Labels = append(data.Labels, label)
		data.Principal = append(data.Principal, round2(p.Principal))
		data.Interest = append(data.Interest, round2(p.Interest))
		data.Payment = append(data.Payment, round2(p.Payment))
		data.Balance = append(data.Balance, round2(p.Balance))
	}
	return data
}

// BuildPieData returns the principal vs total interest split.
func BuildPieData(principal, totalInterest decimal.Decimal) PieData {
	total := principal.Add(totalInterest)
	shares := []float64{0, 0}
	if total.IsPositive() {
		principalShare := principal.Mul(hundred).DivRound(total, 2)
		shares = []float64{principalShare.InexactFloat64(), hundred.Sub(principalShare).InexactFloat64()}
	}
	return PieData{
		Labels: []string{"Principal Amount", "Total Interest"},
		Values: []float64{round2(principal), round2(totalInterest)},
		Shares: shares,
		Colors: []string{"#355872", "#9CD5FF"},
	}
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

package output

import (
	"context"
	"testing"
	"time"

	"github.com/loanlens/emi-calculator/internal/calculation"
	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var fixtureStart = time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)

// buildTestResult is 5 lakh at 10% over 12 months starting Nov 2026,
// which splits into a two-month and a ten-month year.
func buildTestResult(t *testing.T) *domain.CalculationResult {
	t.Helper()
	calculation.SetNowFunc(func() time.Time { return time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC) })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })

	res, err := calculation.NewCalculationEngine().Calculate(context.Background(), domain.LoanInput{
		Principal:         decimal.NewFromInt(500000),
		AnnualRatePercent: decimal.NewFromInt(10),
		TermMonths:        12,
		StartDate:         fixtureStart,
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	return res
}

func buildTestReport(t *testing.T) *Report {
	t.Helper()
	return BuildReport(buildTestResult(t), nil, LabelMonth)
}

func emptyTestReport() *Report {
	res := &domain.CalculationResult{
		Schedule: &domain.Schedule{Periods: []domain.PeriodRecord{}, Years: []domain.YearAggregate{}},
		Tier:     domain.DefaultTierTable()[0],
	}
	return BuildReport(res, nil, LabelIndex)
}

package calculation

import (
	"math"
	"strconv"
	"time"

	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/loanlens/emi-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

const (
	// workingPlaces is the scale kept for payments and interest between periods.
	workingPlaces = 10
	// ratePlaces is the scale of the periodic rate and of intermediate powers.
	ratePlaces = 24
)

var (
	decimalOne    = decimal.NewFromInt(1)
	monthsPercent = decimal.NewFromInt(1200)
)

// PeriodicRate converts an annual percentage into a monthly fraction: (rate/100)/12.
func PeriodicRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.DivRound(monthsPercent, ratePlaces)
}

// ComputePeriodicPayment returns the fixed monthly payment (EMI) that retires
// principal over n months at the given annual rate. A zero rate amortizes linearly.
func ComputePeriodicPayment(principal, annualRatePercent decimal.Decimal, n int) (decimal.Decimal, error) {
	if !principal.IsPositive() {
		return decimal.Zero, invalidInput("principal", principal.String(), "must be greater than zero")
	}
	if n <= 0 {
		return decimal.Zero, invalidInput("term", strconv.Itoa(n), "must be at least one month")
	}
	if annualRatePercent.IsNegative() {
		return decimal.Zero, invalidInput("rate", annualRatePercent.String(), "cannot be negative")
	}

	r := PeriodicRate(annualRatePercent)
	if r.IsZero() {
		return principal.DivRound(decimal.NewFromInt(int64(n)), workingPlaces), nil
	}

	growth := powInt(decimalOne.Add(r), n)
	return principal.Mul(r).Mul(growth).DivRound(growth.Sub(decimalOne), workingPlaces), nil
}

// ComputePeriodicPaymentFloat is ComputePeriodicPayment for callers holding
// float64 inputs. NaN and infinities are rejected.
func ComputePeriodicPaymentFloat(principal, annualRatePercent float64, n int) (float64, error) {
	if math.IsNaN(principal) || math.IsInf(principal, 0) {
		return 0, invalidInput("principal", "", "must be a finite number")
	}
	if math.IsNaN(annualRatePercent) || math.IsInf(annualRatePercent, 0) {
		return 0, invalidInput("rate", "", "must be a finite number")
	}
	payment, err := ComputePeriodicPayment(decimal.NewFromFloat(principal), decimal.NewFromFloat(annualRatePercent), n)
	if err != nil {
		return 0, err
	}
	return payment.InexactFloat64(), nil
}

// powInt raises base to a non-negative integer power by squaring, rounding
// each product to ratePlaces so precision stays bounded for long terms.
func powInt(base decimal.Decimal, exp int) decimal.Decimal {
	result := decimalOne
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base).Round(ratePlaces)
		}
		exp >>= 1
		if exp > 0 {
			base = base.Mul(base).Round(ratePlaces)
		}
	}
	return result
}

// GenerateSchedule builds the per-period breakdown for a fixed payment.
//
// The last period always pays off the exact remaining balance, so the
// schedule ends at zero and the principal column sums to the loan amount.
// Non-positive principal or term yields an empty schedule rather than an error.
func GenerateSchedule(principal, annualRatePercent decimal.Decimal, n int, payment decimal.Decimal, startDate time.Time) *domain.Schedule {
	start := scheduleStart(startDate)
	schedule := &domain.Schedule{
		StartDate:      start,
		Principal:      principal,
		Payment:        payment,
		Periods:        []domain.PeriodRecord{},
		Years:          []domain.YearAggregate{},
		TotalPrincipal: decimal.Zero,
		TotalInterest:  decimal.Zero,
		TotalPayment:   decimal.Zero,
	}
	if n <= 0 || !principal.IsPositive() {
		return schedule
	}

	r := PeriodicRate(annualRatePercent)
	if r.IsNegative() {
		r = decimal.Zero
	}
	schedule.PeriodicRate = r

	balance := principal
	cursor := start
	periods := make([]domain.PeriodRecord, 0, n)
	for i := 1; i <= n; i++ {
		interest := decimal.Zero
		if !r.IsZero() {
			interest = balance.Mul(r).Round(workingPlaces)
		}

		var paid decimal.Decimal
		if i == n {
			paid = balance
		} else {
			paid = payment.Sub(interest)
			if paid.IsNegative() {
				paid = decimal.Zero
			}
			if paid.GreaterThan(balance) {
				paid = balance
			}
		}
		balance = balance.Sub(paid)

		periods = append(periods, domain.PeriodRecord{
			Index:     i,
			Date:      cursor,
			Interest:  interest,
			Principal: paid,
			Payment:   interest.Add(paid),
			Balance:   balance,
		})
		cursor = dateutil.AddMonths(cursor, 1)
	}

	schedule.Periods = periods
	schedule.Years = groupByYear(periods, dateutil.MonthsLeftInYear(start))
	for _, p := range periods {
		schedule.TotalPrincipal = schedule.TotalPrincipal.Add(p.Principal)
		schedule.TotalPayment = schedule.TotalPayment.Add(p.Payment)
	}
	schedule.TotalInterest = schedule.TotalPayment.Sub(principal)
	return schedule
}

// groupByYear splits chronologically ordered periods into calendar years.
func groupByYear(periods []domain.PeriodRecord, firstYearLen int) []domain.YearAggregate {
	var years []domain.YearAggregate
	for _, p := range periods {
		if len(years) == 0 || years[len(years)-1].Year != p.Date.Year() {
			capacity := 12
			if len(years) == 0 {
				capacity = firstYearLen
			}
			years = append(years, domain.YearAggregate{
				Ordinal:   len(years) + 1,
				Year:      p.Date.Year(),
				Periods:   make([]domain.PeriodRecord, 0, capacity),
				Interest:  decimal.Zero,
				Principal: decimal.Zero,
				Payment:   decimal.Zero,
			})
		}
		y := &years[len(years)-1]
		y.Periods = append(y.Periods, p)
		y.Interest = y.Interest.Add(p.Interest)
		y.Principal = y.Principal.Add(p.Principal)
		y.Payment = y.Payment.Add(p.Payment)
		y.ClosingBalance = p.Balance
	}
	return years
}

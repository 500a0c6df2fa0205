package calculation

import (
	"strconv"

	"github.com/loanlens/emi-calculator/internal/domain"
	money "github.com/loanlens/emi-calculator/pkg/decimal"
)

// ValidateInput checks the structural invariants every calculation needs:
// a positive principal, a term of at least one month and a non-negative rate.
func ValidateInput(input domain.LoanInput) error {
	if !input.Principal.IsPositive() {
		return invalidInput("principal", input.Principal.String(), "must be greater than zero")
	}
	if input.TermMonths <= 0 {
		return invalidInput("term", strconv.Itoa(input.TermMonths), "must be at least one month")
	}
	if input.AnnualRatePercent.IsNegative() {
		return invalidInput("rate", input.AnnualRatePercent.String(), "cannot be negative")
	}
	return nil
}

// ValidatePolicy rejects inputs outside the configured form ranges. The
// principal must already be in currency units.
func ValidatePolicy(input domain.LoanInput, policy domain.InputPolicy) error {
	p := input.Principal
	if p.LessThan(policy.MinPrincipal) || p.GreaterThan(policy.MaxPrincipal) {
		return invalidInput("principal", money.NewMoneyFromDecimal(p).Format(0),
			"loan amount must be between %s and %s",
			money.NewMoneyFromDecimal(policy.MinPrincipal).Format(0),
			money.NewMoneyFromDecimal(policy.MaxPrincipal).Format(0))
	}
	r := input.AnnualRatePercent
	if r.LessThan(policy.MinRate) || r.GreaterThan(policy.MaxRate) {
		return invalidInput("rate", r.String()+"%",
			"interest rate must be between %s%% and %s%%", policy.MinRate, policy.MaxRate)
	}
	if input.TermMonths < policy.MinTerm || input.TermMonths > policy.MaxTerm {
		return invalidInput("term", strconv.Itoa(input.TermMonths),
			"tenure must be between %d and %d months", policy.MinTerm, policy.MaxTerm)
	}
	return nil
}

package calculation

import (
	"errors"
	"testing"

	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePolicy(t *testing.T) {
	policy := domain.DefaultInputPolicy()
	valid := domain.LoanInput{Principal: d(500000), AnnualRatePercent: d(10), TermMonths: 12}
	require.NoError(t, ValidatePolicy(valid, policy))

	tests := []struct {
		name    string
		mutate  func(*domain.LoanInput)
		field   string
		message string
	}{
		{"principal too small", func(in *domain.LoanInput) { in.Principal = d(9999) }, "principal", "between ₹10,000 and ₹1,00,00,000"},
		{"principal too large", func(in *domain.LoanInput) { in.Principal = d(10000000.01) }, "principal", "loan amount"},
		{"rate too low", func(in *domain.LoanInput) { in.AnnualRatePercent = d(0.5) }, "rate", "between 1% and 25%"},
		{"rate too high", func(in *domain.LoanInput) { in.AnnualRatePercent = d(25.5) }, "rate", "interest rate"},
		{"term too long", func(in *domain.LoanInput) { in.TermMonths = 361 }, "term", "between 1 and 360 months"},
		{"term too short", func(in *domain.LoanInput) { in.TermMonths = 0 }, "term", "tenure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := ValidatePolicy(in, policy)
			require.Error(t, err)

			var invalid *InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
			assert.Contains(t, invalid.Message, tt.message)
		})
	}
}

func TestValidatePolicyBoundsAreInclusive(t *testing.T) {
	policy := domain.DefaultInputPolicy()
	for _, in := range []domain.LoanInput{
		{Principal: d(10000), AnnualRatePercent: d(1), TermMonths: 1},
		{Principal: d(10000000), AnnualRatePercent: d(25), TermMonths: 360},
	} {
		assert.NoError(t, ValidatePolicy(in, policy))
	}
}

func TestValidateInput(t *testing.T) {
	assert.NoError(t, ValidateInput(domain.LoanInput{Principal: d(1), TermMonths: 1}))
	assert.ErrorIs(t, ValidateInput(domain.LoanInput{Principal: d(0), TermMonths: 1}), ErrInvalidInput)
	assert.ErrorIs(t, ValidateInput(domain.LoanInput{Principal: d(1), TermMonths: 0}), ErrInvalidInput)
	assert.ErrorIs(t, ValidateInput(domain.LoanInput{Principal: d(1), TermMonths: 1, AnnualRatePercent: d(-1)}), ErrInvalidInput)
}

func TestInvalidInputErrorMessage(t *testing.T) {
	err := invalidInput("term", "0", "must be at least one month")
	assert.Equal(t, "invalid term 0: must be at least one month", err.Error())

	err = invalidInput("rate", "", "must be a finite number")
	assert.Equal(t, "invalid rate: must be a finite number", err.Error())
}

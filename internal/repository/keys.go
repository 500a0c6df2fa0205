package repository

import (
	"strconv"
	"strings"

	"github.com/loanlens/emi-calculator/internal/domain"
)

const keyPrefix = "emi:v1"

// CalculationKey identifies a canonical (raw-unit) loan input. Equal inputs
// always map to the same key; the start date contributes its month only.
func CalculationKey(input domain.LoanInput) string {
	var b strings.Builder
	b.WriteString(keyPrefix)
	b.WriteString(":calc:")
	b.WriteString(input.Principal.String())
	b.WriteByte(':')
	b.WriteString(input.AnnualRatePercent.String())
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(input.TermMonths))
	b.WriteByte(':')
	if input.StartDate.IsZero() {
		b.WriteString("now")
	} else {
		b.WriteString(input.StartDate.Format("2006-01"))
	}
	return b.String()
}

// ClassificationKey identifies a classification of a raw-unit amount.
func ClassificationKey(amount string) string {
	return keyPrefix + ":class:" + amount
}

package output

import (
	"strings"

	"github.com/loanlens/emi-calculator/internal/domain"
	money "github.com/loanlens/emi-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as rupees with Indian grouping and no decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format(0)
}

// FormatPayment formats the periodic payment with 2 decimals.
func FormatPayment(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format(2)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// PercentPaid is (principal - remaining) / principal * 100 rounded to 2
// decimals, or 0 when principal is zero.
func PercentPaid(principal, remaining decimal.Decimal) decimal.Decimal {
	if principal.IsZero() {
		return decimal.Zero
	}
	return principal.Sub(remaining).Mul(hundred).DivRound(principal, 2)
}

// FormatCompactAmount renders gauge-style labels: "50,000", "5L", "1.2Cr".
func FormatCompactAmount(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign, amount = "-", amount.Neg()
	}
	m := money.NewMoneyFromDecimal(amount)
	switch {
	case m.IsCrore():
		return sign + formatNumberIN(m.Crores()) + "Cr"
	case m.IsLakh():
		return sign + formatNumberIN(m.Lakhs()) + "L"
	default:
		return sign + formatNumberIN(amount)
	}
}

// FormatAmountLabel renders "₹25,00,000 (25 Lakh)" and adds the crore
// figure once the amount reaches one crore.
func FormatAmountLabel(amount decimal.Decimal) string {
	m := money.NewMoneyFromDecimal(amount)
	var b strings.Builder
	b.WriteString(FormatCurrency(amount))
	b.WriteString(" (")
	b.WriteString(formatNumberIN(m.Lakhs()))
	b.WriteString(" Lakh")
	if amount.IsPositive() && m.IsCrore() {
		b.WriteString(" · ")
		b.WriteString(formatNumberIN(m.Crores()))
		b.WriteString(" Cr")
	}
	b.WriteString(")")
	return b.String()
}

// TierLabel names a tier with its range, e.g. "Medium loan (₹5L - ₹25L)".
func TierLabel(tier domain.SizeTier) string {
	if tier.Upper == nil {
		return tier.Name + " (" + money.CurrencySymbol + FormatCompactAmount(tier.Lower) + "+)"
	}
	lower := FormatCompactAmount(tier.Lower)
	if !tier.Lower.IsZero() {
		lower = money.CurrencySymbol + lower
	}
	return tier.Name + " (" + lower + " - " + money.CurrencySymbol + FormatCompactAmount(*tier.Upper) + ")"
}

// formatNumberIN groups like en-IN with at most 2 decimals and no trailing zeros.
func formatNumberIN(d decimal.Decimal) string {
	d = d.Round(2)
	places := int32(0)
	if s := d.String(); strings.Contains(s, ".") {
		places = int32(len(s) - strings.IndexByte(s, '.') - 1)
	}
	return money.NewMoneyFromDecimal(d).Grouped(places)
}

package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "₹"

var (
	lakh  = decimal.NewFromInt(100000)
	crore = decimal.NewFromInt(10000000)

	indianEnglish = language.MustParse("en-IN")
)

// Money is a rupee amount rendered the en-IN way.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Lakhs expresses the amount in lakhs (1 lakh = 1,00,000).
func (m Money) Lakhs() decimal.Decimal {
	return m.Decimal.Div(lakh)
}

// Crores expresses the amount in crores (1 crore = 100 lakh).
func (m Money) Crores() decimal.Decimal {
	return m.Decimal.Div(crore)
}

// IsCrore reports whether the amount has reached one crore.
func (m Money) IsCrore() bool {
	return m.Decimal.Abs().GreaterThanOrEqual(crore)
}

// IsLakh reports whether the amount has reached one lakh.
func (m Money) IsLakh() bool {
	return m.Decimal.Abs().GreaterThanOrEqual(lakh)
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Grouped renders the amount with en-IN digit grouping (12,34,567) and
// exactly places decimals, without a currency symbol.
func (m Money) Grouped(places int32) string {
	if places < 0 {
		places = 0
	}
	f, _ := m.Decimal.Round(places).Float64()
	p := message.NewPrinter(indianEnglish)
	return p.Sprint(number.Decimal(f,
		number.MinFractionDigits(int(places)),
		number.MaxFractionDigits(int(places))))
}

// Format formats the amount as rupees with Indian grouping and the given decimals.
func (m Money) Format(places int32) string {
	g := m.Grouped(places)
	if strings.HasPrefix(g, "-") {
		return "-" + CurrencySymbol + g[1:]
	}
	return CurrencySymbol + g
}

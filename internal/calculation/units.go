package calculation

import (
	"strings"

	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var unitAliases = map[string]domain.AmountUnit{
	"":         domain.UnitRaw,
	"raw":      domain.UnitRaw,
	"inr":      domain.UnitRaw,
	"rupees":   domain.UnitRaw,
	"rs":       domain.UnitRaw,
	"₹":        domain.UnitRaw,
	"thousand": domain.UnitThousand,
	"k":        domain.UnitThousand,
	"lakh":     domain.UnitLakh,
	"lakhs":    domain.UnitLakh,
	"lac":      domain.UnitLakh,
	"l":        domain.UnitLakh,
	"crore":    domain.UnitCrore,
	"crores":   domain.UnitCrore,
	"cr":       domain.UnitCrore,
}

// ParseAmountUnit resolves a unit name or alias (case-insensitive).
func ParseAmountUnit(s string) (domain.AmountUnit, error) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", invalidInput("unit", s, "expected one of raw, thousand, lakh, crore")
	}
	return u, nil
}

// ParseAmount reads a loosely formatted number such as "₹5,00,000". Every
// character other than digits and '.' is dropped, the longest numeric prefix
// is used, and anything unreadable is zero.
func ParseAmount(s string) decimal.Decimal {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if seenDot {
				return parseOrZero(b.String())
			}
			seenDot = true
			b.WriteRune(r)
		}
	}
	return parseOrZero(b.String())
}

func parseOrZero(s string) decimal.Decimal {
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "." {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ToCanonical converts an amount expressed in unit into currency units.
func ToCanonical(amount decimal.Decimal, unit domain.AmountUnit) (decimal.Decimal, error) {
	m, ok := unit.Multiplier()
	if !ok {
		return decimal.Zero, invalidInput("unit", string(unit), "expected one of raw, thousand, lakh, crore")
	}
	return amount.Mul(m), nil
}

package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func m(s string) Money {
	return NewMoneyFromDecimal(stddec.RequireFromString(s))
}

func TestString(t *testing.T) {
	if got := m("12.345").String(); got != "12.35" { // rounded for display
		t.Fatalf("display mismatch: got %s", got)
	}
	d := stddec.NewFromFloat(10.125)
	if !NewMoneyFromDecimal(d).Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal changed the value")
	}
}

func TestLakhCroreConversions(t *testing.T) {
	if got := m("2500000").Lakhs().String(); got != "25" {
		t.Fatalf("Lakhs got %s", got)
	}
	if got := m("12000000").Crores().String(); got != "1.2" {
		t.Fatalf("Crores got %s", got)
	}
	cases := []struct {
		in          string
		lakh, crore bool
	}{
		{"99999.99", false, false},
		{"100000", true, false},
		{"9999999", true, false},
		{"10000000", true, true},
		{"-10000000", true, true},
	}
	for _, c := range cases {
		if got := m(c.in).IsLakh(); got != c.lakh {
			t.Fatalf("IsLakh(%s) = %v", c.in, got)
		}
		if got := m(c.in).IsCrore(); got != c.crore {
			t.Fatalf("IsCrore(%s) = %v", c.in, got)
		}
	}
}

func TestIndianGrouping(t *testing.T) {
	cases := []struct {
		in     string
		places int32
		want   string
	}{
		{"0", 0, "0"},
		{"999", 0, "999"},
		{"1000", 0, "1,000"},
		{"100000", 0, "1,00,000"},
		{"500000", 0, "5,00,000"},
		{"12345678", 0, "1,23,45,678"},
		{"43957.9436", 2, "43,957.94"},
		{"-2500000", 0, "-25,00,000"},
		{"-0.001", 2, "0.00"},
		{"1234567.891", 2, "12,34,567.89"},
		{"1234.5", 2, "1,234.50"},
		{"2.345", 2, "2.35"},
		{"-2.345", 2, "-2.35"},
		{"999999999.995", 2, "1,00,00,00,000.00"},
		{"43957.5", 0, "43,958"},
	}
	for _, c := range cases {
		if got := m(c.in).Grouped(c.places); got != c.want {
			t.Fatalf("Grouped(%s,%d) got %q want %q", c.in, c.places, got, c.want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := m("500000").Format(0); got != "₹5,00,000" {
		t.Fatalf("Format got %s", got)
	}
	if got := m("1234.5").Format(2); got != "₹1,234.50" {
		t.Fatalf("Format got %s", got)
	}
	if got := m("-1500").Format(0); got != "-₹1,500" {
		t.Fatalf("Format got %s", got)
	}
}

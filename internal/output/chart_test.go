package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildChartDataSeriesLengths(t *testing.T) {
	res := buildTestResult(t)
	for _, style := range []LabelStyle{LabelIndex, LabelMonth} {
		data := BuildChartData(res, style)
		n := len(res.Schedule.Periods)
		for name, l := range map[string]int{
			"labels":    len(data.Labels),
			"principal": len(data.Principal),
			"interest":  len(data.Interest),
			"payment":   len(data.Payment),
			"balance":   len(data.Balance),
		} {
			if l != n {
				t.Fatalf("%s: %s has %d entries, want %d", style, name, l, n)
			}
		}
	}
}

func TestBuildChartDataLabels(t *testing.T) {
	res := buildTestResult(t)
	idx := BuildChartData(res, LabelIndex)
	if idx.Labels[0] != "1" || idx.Labels[11] != "12" {
		t.Fatalf("index labels = %v", idx.Labels)
	}
	months := BuildChartData(res, LabelMonth)
	if months.Labels[0] != "Nov-2026" || months.Labels[2] != "Jan-2027" || months.Labels[11] != "Oct-2027" {
		t.Fatalf("month labels = %v", months.Labels)
	}
	if months.Interest[0] != 4166.67 || months.Principal[0] != 39791.28 || months.Payment[0] != 43957.94 {
		t.Fatalf("first period = %v / %v / %v", months.Interest[0], months.Principal[0], months.Payment[0])
	}
	if months.Balance[11] != 0 {
		t.Fatalf("final balance = %v, want 0", months.Balance[11])
	}
}

func TestBuildChartDataEmpty(t *testing.T) {
	data := emptyTestReport().Chart
	if data.Labels == nil || len(data.Labels) != 0 || len(data.Payment) != 0 {
		t.Fatalf("expected empty non-nil series, got %+v", data)
	}
	if data.Summary.Periods != 0 {
		t.Fatalf("periods = %d", data.Summary.Periods)
	}
}

func TestBuildSummary(t *testing.T) {
	s := BuildSummary(buildTestResult(t))
	if s.TierKey != "medium" || s.TierLabel != "Medium loan (₹5L - ₹25L)" {
		t.Fatalf("tier = %s / %s", s.TierKey, s.TierLabel)
	}
	if s.Periods != 12 {
		t.Fatalf("periods = %d", s.Periods)
	}
	if got := s.TotalPayment.Sub(s.TotalInterest); !got.Equal(s.Principal) {
		t.Fatalf("total payment - interest = %s, want %s", got, s.Principal)
	}
}

func TestBuildPieData(t *testing.T) {
	pie := BuildPieData(decimal.NewFromInt(500000), decimal.RequireFromString("27495.3233800576"))
	if pie.Labels[0] != "Principal Amount" || pie.Labels[1] != "Total Interest" {
		t.Fatalf("labels = %v", pie.Labels)
	}
	if pie.Shares[0] != 94.79 || pie.Shares[1] != 5.21 {
		t.Fatalf("shares = %v", pie.Shares)
	}
	if pie.Values[1] != 27495.32 {
		t.Fatalf("values = %v", pie.Values)
	}

	zero := BuildPieData(decimal.Zero, decimal.Zero)
	if zero.Shares[0] != 0 || zero.Shares[1] != 0 {
		t.Fatalf("zero shares = %v", zero.Shares)
	}
}

func TestParseLabelStyle(t *testing.T) {
	for in, want := range map[string]LabelStyle{"": LabelIndex, "INDEX": LabelIndex, " month ": LabelMonth} {
		got, err := ParseLabelStyle(in)
		if err != nil || got != want {
			t.Fatalf("ParseLabelStyle(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseLabelStyle("weekly"); err == nil {
		t.Fatalf("expected error for unknown style")
	}
}

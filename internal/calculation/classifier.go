package calculation

import (
	"fmt"

	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	gaugeMin   = -90.0
	gaugeMax   = 90.0
	gaugeSweep = gaugeMax - gaugeMin
)

var legacyGoldThreshold = decimal.NewFromInt(500000)

// Classifier maps amounts onto a tier table and a half-circle gauge.
type Classifier struct {
	Tiers domain.TierTable
	Gauge domain.GaugeSettings
}

// NewClassifier validates the tier table and gauge settings.
func NewClassifier(tiers domain.TierTable, gauge domain.GaugeSettings) (*Classifier, error) {
	if err := tiers.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tier table: %w", err)
	}
	last := tiers[len(tiers)-1]
	if !gauge.MaxDisplay.GreaterThan(last.Lower) {
		return nil, fmt.Errorf("gauge max_display %s must exceed the last tier's lower bound %s", gauge.MaxDisplay, last.Lower)
	}
	if gauge.MinorTicks < 0 {
		return nil, fmt.Errorf("gauge minor_ticks cannot be negative, got %d", gauge.MinorTicks)
	}
	return &Classifier{Tiers: tiers, Gauge: gauge}, nil
}

// DefaultClassifier uses the stock tier table and gauge settings.
func DefaultClassifier() *Classifier {
	return &Classifier{Tiers: domain.DefaultTierTable(), Gauge: domain.DefaultGaugeSettings()}
}

// ClassifyIndex returns the position of the first tier whose [Lower, Upper)
// contains amount. Amounts below every tier land in the first one.
func (c *Classifier) ClassifyIndex(amount decimal.Decimal) int {
	for i, t := range c.Tiers {
		if t.Contains(amount) {
			return i
		}
	}
	return 0
}

// Classify returns the tier for amount.
func (c *Classifier) Classify(amount decimal.Decimal) domain.SizeTier {
	return c.Tiers[c.ClassifyIndex(amount)]
}

// AngleFor maps clamp(amount, 0, maxDisplay) linearly onto [-90, 90] degrees.
func AngleFor(amount, maxDisplay decimal.Decimal) float64 {
	if !maxDisplay.IsPositive() {
		if amount.IsPositive() {
			return gaugeMax
		}
		return gaugeMin
	}
	if !amount.IsPositive() {
		return gaugeMin
	}
	if amount.GreaterThanOrEqual(maxDisplay) {
		return gaugeMax
	}
	frac := amount.Div(maxDisplay).InexactFloat64()
	return gaugeMin + gaugeSweep*frac
}

// AngleFor is the proportional gauge angle using the configured display cap.
func (c *Classifier) AngleFor(amount decimal.Decimal) float64 {
	return AngleFor(amount, c.Gauge.MaxDisplay)
}

// NeedleAngle is where the gauge needle points. With EqualArcs every tier
// owns the same slice of the dial and the needle interpolates within it;
// otherwise it is the proportional AngleFor.
func (c *Classifier) NeedleAngle(amount decimal.Decimal) float64 {
	if !c.Gauge.EqualArcs {
		return c.AngleFor(amount)
	}
	i := c.ClassifyIndex(amount)
	start, end := c.TierArc(i)
	lower, upper := c.tierSpan(i)
	span := upper.Sub(lower)
	if !span.IsPositive() {
		return end
	}
	pos := decimal.Min(decimal.Max(amount, lower), upper).Sub(lower)
	return start + (end-start)*pos.Div(span).InexactFloat64()
}

// TierArc returns the gauge angles covered by the tier at index i.
func (c *Classifier) TierArc(i int) (start, end float64) {
	if i < 0 || i >= len(c.Tiers) {
		return 0, 0
	}
	if c.Gauge.EqualArcs {
		width := gaugeSweep / float64(len(c.Tiers))
		return gaugeMin + width*float64(i), gaugeMin + width*float64(i+1)
	}
	lower, upper := c.tierSpan(i)
	return c.AngleFor(lower), c.AngleFor(upper)
}

// tierSpan returns the tier's bounds with the open end capped at MaxDisplay.
func (c *Classifier) tierSpan(i int) (lower, upper decimal.Decimal) {
	t := c.Tiers[i]
	if t.Upper != nil {
		return t.Lower, *t.Upper
	}
	return t.Lower, decimal.Max(t.Lower, c.Gauge.MaxDisplay)
}

// LegacyClass is the two-way label used by the amortization table page.
func LegacyClass(amount decimal.Decimal) string {
	if amount.GreaterThan(legacyGoldThreshold) {
		return "Gold Loan Class"
	}
	return "Standard Loan Class"
}

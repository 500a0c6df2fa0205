package output

import (
	"github.com/loanlens/emi-calculator/internal/calculation"
	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Tick is a gauge scale mark.
type Tick struct {
	Value decimal.Decimal `json:"value"`
	Angle float64         `json:"angle"`
	Major bool            `json:"major"`
	Label string          `json:"label,omitempty"`
}

// ArcSegment is the coloured band of one tier on the dial.
type ArcSegment struct {
	Key   string  `json:"key"`
	Name  string  `json:"name"`
	Color string  `json:"color,omitempty"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Gauge is the speedometer payload for a single amount.
type Gauge struct {
	Amount      decimal.Decimal `json:"amount"`
	AmountLabel string          `json:"amount_label"`
	Tier        domain.SizeTier `json:"tier"`
	TierLabel   string          `json:"tier_label"`
	Needle      float64         `json:"needle"`
	EqualArcs   bool            `json:"equal_arcs"`
	Arcs        []ArcSegment    `json:"arcs"`
	Ticks       []Tick          `json:"ticks"`
}

// BuildGauge places amount on the dial described by the classifier.
func BuildGauge(c *calculation.Classifier, amount decimal.Decimal) Gauge {
	tier := c.Classify(amount)
	g := Gauge{
		Amount:      amount,
		AmountLabel: FormatAmountLabel(amount),
		Tier:        tier,
		TierLabel:   TierLabel(tier),
		Needle:      c.NeedleAngle(amount),
		EqualArcs:   c.Gauge.EqualArcs,
		Arcs:        make([]ArcSegment, 0, len(c.Tiers)),
	}
	for i, t := range c.Tiers {
		start, end := c.TierArc(i)
		g.Arcs = append(g.Arcs, ArcSegment{Key: t.Key, Name: t.Name, Color: t.Color, Start: start, End: end})
	}
	g.Ticks = buildTicks(c)
	return g
}

// buildTicks puts a labelled major tick on every tier boundary and the
// display cap, with evenly spaced minor ticks in between.
func buildTicks(c *calculation.Classifier) []Tick {
	majors := make([]decimal.Decimal, 0, len(c.Tiers)+1)
	for _, t := range c.Tiers {
		majors = append(majors, t.Lower)
	}
	majors = append(majors, c.Gauge.MaxDisplay)

	steps := decimal.NewFromInt(int64(c.Gauge.MinorTicks + 1))
	ticks := make([]Tick, 0, len(majors)*(c.Gauge.MinorTicks+1))
	for i, v := range majors {
		ticks = append(ticks, Tick{Value: v, Angle: c.NeedleAngle(v), Major: true, Label: FormatCompactAmount(v)})
		if i == len(majors)-1 {
			break
		}
		step := majors[i+1].Sub(v).Div(steps)
		for k := 1; k <= c.Gauge.MinorTicks; k++ {
			mv := v.Add(step.Mul(decimal.NewFromInt(int64(k))))
			ticks = append(ticks, Tick{Value: mv, Angle: c.NeedleAngle(mv)})
		}
	}
	return ticks
}

package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SizeTier is a named amount bucket [Lower, Upper). A nil Upper means unbounded.
type SizeTier struct {
	Key   string           `yaml:"key" json:"key"`
	Name  string           `yaml:"name" json:"name"`
	Lower decimal.Decimal  `yaml:"lower" json:"lower"`
	Upper *decimal.Decimal `yaml:"upper,omitempty" json:"upper,omitempty"`
	Color string           `yaml:"color,omitempty" json:"color,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for SizeTier
func (t *SizeTier) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Key   string  `yaml:"key"`
		Name  string  `yaml:"name"`
		Lower string  `yaml:"lower"`
		Upper *string `yaml:"upper,omitempty"`
		Color string  `yaml:"color,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	t.Key = aux.Key
	t.Name = aux.Name
	t.Color = aux.Color

	lower := decimal.Zero
	if aux.Lower != "" {
		v, err := decimal.NewFromString(aux.Lower)
		if err != nil {
			return fmt.Errorf("tier %q lower: %w", aux.Key, err)
		}
		lower = v
	}
	t.Lower = lower

	t.Upper = nil
	if aux.Upper != nil && *aux.Upper != "" {
		v, err := decimal.NewFromString(*aux.Upper)
		if err != nil {
			return fmt.Errorf("tier %q upper: %w", aux.Key, err)
		}
		t.Upper = &v
	}
	return nil
}

// Contains reports whether amount falls in [Lower, Upper).
func (t SizeTier) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(t.Lower) {
		return false
	}
	return t.Upper == nil || amount.LessThan(*t.Upper)
}

// Unbounded reports whether the tier has no upper bound.
func (t SizeTier) Unbounded() bool { return t.Upper == nil }

// TierTable is an ordered, gap-free partition of [0, ∞).
type TierTable []SizeTier

// Validate checks that the tiers partition [0, ∞) with no gaps or overlaps.
func (tt TierTable) Validate() error {
	if len(tt) == 0 {
		return fmt.Errorf("at least one tier is required")
	}
	if !tt[0].Lower.IsZero() {
		return fmt.Errorf("first tier %q must start at 0, got %s", tt[0].Key, tt[0].Lower)
	}
	seen := make(map[string]bool, len(tt))
	for i, t := range tt {
		if t.Key == "" || t.Name == "" {
			return fmt.Errorf("tier %d: key and name are required", i)
		}
		if seen[t.Key] {
			return fmt.Errorf("tier %d: duplicate key %q", i, t.Key)
		}
		seen[t.Key] = true

		last := i == len(tt)-1
		if last {
			if t.Upper != nil {
				return fmt.Errorf("last tier %q must be unbounded", t.Key)
			}
			continue
		}
		if t.Upper == nil {
			return fmt.Errorf("tier %q: only the last tier may be unbounded", t.Key)
		}
		if !t.Upper.GreaterThan(t.Lower) {
			return fmt.Errorf("tier %q: upper bound %s must exceed lower bound %s", t.Key, t.Upper, t.Lower)
		}
		if next := tt[i+1]; !next.Lower.Equal(*t.Upper) {
			return fmt.Errorf("tier %q ends at %s but %q starts at %s", t.Key, t.Upper, next.Key, next.Lower)
		}
	}
	return nil
}

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultTierTable returns the stock Small/Medium/Large/Mega tiers in rupees.
func DefaultTierTable() TierTable {
	return TierTable{
		{Key: "small", Name: "Small loan", Lower: decimal.Zero, Upper: bound(500000), Color: "#22c55e"},
		{Key: "medium", Name: "Medium loan", Lower: decimal.NewFromInt(500000), Upper: bound(2500000), Color: "#3b82f6"},
		{Key: "large", Name: "Large loan", Lower: decimal.NewFromInt(2500000), Upper: bound(10000000), Color: "#f59e0b"},
		{Key: "mega", Name: "Mega loan", Lower: decimal.NewFromInt(10000000), Color: "#ef4444"},
	}
}

// GaugeSettings controls how amounts map onto the half-circle gauge.
type GaugeSettings struct {
	MaxDisplay decimal.Decimal `yaml:"max_display" json:"max_display"` // display cap, amounts above saturate
	EqualArcs  bool            `yaml:"equal_arcs" json:"equal_arcs"`   // one equal arc per tier instead of proportional
	MinorTicks int             `yaml:"minor_ticks" json:"minor_ticks"` // minor ticks between majors
}

// DefaultGaugeSettings caps the gauge at 1.2 crore with proportional arcs.
func DefaultGaugeSettings() GaugeSettings {
	return GaugeSettings{
		MaxDisplay: decimal.NewFromInt(12000000),
		MinorTicks: 4,
	}
}

// InputPolicy holds the accepted input ranges for interactive requests.
type InputPolicy struct {
	MinPrincipal   decimal.Decimal `yaml:"min_principal" json:"min_principal"`
	MaxPrincipal   decimal.Decimal `yaml:"max_principal" json:"max_principal"`
	MinRate        decimal.Decimal `yaml:"min_rate" json:"min_rate"`
	MaxRate        decimal.Decimal `yaml:"max_rate" json:"max_rate"`
	MinTerm        int             `yaml:"min_term" json:"min_term"`
	MaxTerm        int             `yaml:"max_term" json:"max_term"`
	MessageTermCap int             `yaml:"message_term_cap" json:"message_term_cap"`
}

// DefaultInputPolicy mirrors the calculator form limits.
func DefaultInputPolicy() InputPolicy {
	return InputPolicy{
		MinPrincipal:   decimal.NewFromInt(10000),
		MaxPrincipal:   decimal.NewFromInt(10000000),
		MinRate:        decimal.NewFromInt(1),
		MaxRate:        decimal.NewFromInt(25),
		MinTerm:        1,
		MaxTerm:        360,
		MessageTermCap: 360,
	}
}

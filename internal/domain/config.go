package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Configuration is the engine configuration file. Sections or fields left
// out of a file keep whatever value the target already holds, so decoding
// over DefaultConfiguration() yields a complete configuration.
type Configuration struct {
	Tiers    TierTable     `yaml:"tiers" json:"tiers"`
	Gauge    GaugeSettings `yaml:"gauge" json:"gauge"`
	Policy   InputPolicy   `yaml:"policy" json:"policy"`
	Defaults LoanDefaults  `yaml:"defaults" json:"defaults"`
}

// LoanDefaults pre-fills calculator requests that omit a field.
type LoanDefaults struct {
	Principal         decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	TermMonths        int             `yaml:"term_months" json:"term_months"`
	Unit              AmountUnit      `yaml:"unit" json:"unit"`
	Format            string          `yaml:"format" json:"format"`
}

// DefaultLoanDefaults is the sample loan the chart shows before any input.
func DefaultLoanDefaults() LoanDefaults {
	return LoanDefaults{
		Principal:         decimal.NewFromInt(50000),
		AnnualRatePercent: decimal.NewFromInt(5),
		TermMonths:        12,
		Unit:              UnitRaw,
		Format:            "console",
	}
}

// DefaultConfiguration returns the stock tiers, gauge, policy and defaults.
func DefaultConfiguration() Configuration {
	return Configuration{
		Tiers:    DefaultTierTable(),
		Gauge:    DefaultGaugeSettings(),
		Policy:   DefaultInputPolicy(),
		Defaults: DefaultLoanDefaults(),
	}
}

// decodeDecimal parses an optional decimal field; nil leaves dst untouched.
func decodeDecimal(field string, raw *string, dst *decimal.Decimal) error {
	if raw == nil {
		return nil
	}
	v, err := decimal.NewFromString(*raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*dst = v
	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for GaugeSettings
func (g *GaugeSettings) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		MaxDisplay *string `yaml:"max_display"`
		EqualArcs  *bool   `yaml:"equal_arcs"`
		MinorTicks *int    `yaml:"minor_ticks"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	if err := decodeDecimal("max_display", aux.MaxDisplay, &g.MaxDisplay); err != nil {
		return err
	}
	if aux.EqualArcs != nil {
		g.EqualArcs = *aux.EqualArcs
	}
	if aux.MinorTicks != nil {
		g.MinorTicks = *aux.MinorTicks
	}
	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for InputPolicy
func (p *InputPolicy) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		MinPrincipal   *string `yaml:"min_principal"`
		MaxPrincipal   *string `yaml:"max_principal"`
		MinRate        *string `yaml:"min_rate"`
		MaxRate        *string `yaml:"max_rate"`
		MinTerm        *int    `yaml:"min_term"`
		MaxTerm        *int    `yaml:"max_term"`
		MessageTermCap *int    `yaml:"message_term_cap"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		raw  *string
		dst  *decimal.Decimal
	}{
		{"min_principal", aux.MinPrincipal, &p.MinPrincipal},
		{"max_principal", aux.MaxPrincipal, &p.MaxPrincipal},
		{"min_rate", aux.MinRate, &p.MinRate},
		{"max_rate", aux.MaxRate, &p.MaxRate},
	} {
		if err := decodeDecimal(f.name, f.raw, f.dst); err != nil {
			return err
		}
	}
	if aux.MinTerm != nil {
		p.MinTerm = *aux.MinTerm
	}
	if aux.MaxTerm != nil {
		p.MaxTerm = *aux.MaxTerm
	}
	if aux.MessageTermCap != nil {
		p.MessageTermCap = *aux.MessageTermCap
	}
	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for LoanDefaults
func (l *LoanDefaults) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		Principal         *string `yaml:"principal"`
		AnnualRatePercent *string `yaml:"annual_rate_percent"`
		TermMonths        *int    `yaml:"term_months"`
		Unit              *string `yaml:"unit"`
		Format            *string `yaml:"format"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	if err := decodeDecimal("principal", aux.Principal, &l.Principal); err != nil {
		return err
	}
	if err := decodeDecimal("annual_rate_percent", aux.AnnualRatePercent, &l.AnnualRatePercent); err != nil {
		return err
	}
	if aux.TermMonths != nil {
		l.TermMonths = *aux.TermMonths
	}
	if aux.Unit != nil {
		l.Unit = AmountUnit(*aux.Unit)
	}
	if aux.Format != nil {
		l.Format = *aux.Format
	}
	return nil
}

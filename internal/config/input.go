package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/loanlens/emi-calculator/internal/calculation"
	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of engine configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML (or JSON) file. Anything the
// file leaves out keeps its default value.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates configuration bytes
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.DefaultConfiguration()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if _, err := calculation.NewClassifier(config.Tiers, config.Gauge); err != nil {
		return err
	}
	if err := ip.validatePolicy(&config.Policy); err != nil {
		return fmt.Errorf("policy validation failed: %w", err)
	}
	if err := ip.validateDefaults(&config.Defaults); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}
	return nil
}

// validatePolicy checks that every range is non-empty
func (ip *InputParser) validatePolicy(policy *domain.InputPolicy) error {
	if !policy.MinPrincipal.IsPositive() {
		return fmt.Errorf("min_principal must be positive, got %s", policy.MinPrincipal)
	}
	if policy.MaxPrincipal.LessThan(policy.MinPrincipal) {
		return fmt.Errorf("max_principal %s is below min_principal %s", policy.MaxPrincipal, policy.MinPrincipal)
	}
	if policy.MinRate.IsNegative() {
		return fmt.Errorf("min_rate cannot be negative, got %s", policy.MinRate)
	}
	if policy.MaxRate.LessThan(policy.MinRate) {
		return fmt.Errorf("max_rate %s is below min_rate %s", policy.MaxRate, policy.MinRate)
	}
	if policy.MinTerm < 1 {
		return fmt.Errorf("min_term must be at least 1, got %d", policy.MinTerm)
	}
	if policy.MaxTerm < policy.MinTerm {
		return fmt.Errorf("max_term %d is below min_term %d", policy.MaxTerm, policy.MinTerm)
	}
	if policy.MessageTermCap < 1 {
		return fmt.Errorf("message_term_cap must be at least 1, got %d", policy.MessageTermCap)
	}
	return nil
}

// validateDefaults checks the sample loan used when a request omits fields
func (ip *InputParser) validateDefaults(defaults *domain.LoanDefaults) error {
	unit, err := calculation.ParseAmountUnit(string(defaults.Unit))
	if err != nil {
		return err
	}
	defaults.Unit = unit

	input := domain.LoanInput{
		Principal:         defaults.Principal,
		AnnualRatePercent: defaults.AnnualRatePercent,
		TermMonths:        defaults.TermMonths,
		Unit:              unit,
	}
	if err := calculation.ValidateInput(input); err != nil {
		return err
	}
	if defaults.Format == "" {
		defaults.Format = "console"
	}
	defaults.Format = strings.ToLower(defaults.Format)
	return nil
}

// SaveConfiguration writes config as YAML to filename
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := domain.DefaultConfiguration()
	config.Defaults = domain.LoanDefaults{
		Principal:         decimal.NewFromInt(25),
		AnnualRatePercent: decimal.NewFromFloat(8.5),
		TermMonths:        240,
		Unit:              domain.UnitLakh,
		Format:            "console",
	}
	return &config
}

package calculation

import (
	"context"
	"fmt"

	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates validation, schedule generation and classification
type CalculationEngine struct {
	Classifier    *Classifier
	Policy        domain.InputPolicy
	EnforcePolicy bool // reject inputs outside Policy ranges (form requests)
	Logger        Logger
}

// NewCalculationEngine creates an engine with the stock tiers, gauge and policy
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Classifier:    DefaultClassifier(),
		Policy:        domain.DefaultInputPolicy(),
		EnforcePolicy: true,
		Logger:        NopLogger{},
	}
}

// NewCalculationEngineWithConfig creates an engine from configured tiers, gauge and policy
func NewCalculationEngineWithConfig(tiers domain.TierTable, gauge domain.GaugeSettings, policy domain.InputPolicy) (*CalculationEngine, error) {
	classifier, err := NewClassifier(tiers, gauge)
	if err != nil {
		return nil, err
	}
	return &CalculationEngine{
		Classifier:    classifier,
		Policy:        policy,
		EnforcePolicy: true,
		Logger:        NopLogger{},
	}, nil
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	ce.Logger = loggerOrNop(l)
}

// Calculate validates input, converts the principal to currency units and
// builds the schedule and classification. No partial result is returned on error.
func (ce *CalculationEngine) Calculate(ctx context.Context, input domain.LoanInput) (*domain.CalculationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := loggerOrNop(ce.Logger)

	normalized, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}
	if err := ValidateInput(normalized); err != nil {
		log.Debugf("rejected input: %v", err)
		return nil, err
	}
	if ce.EnforcePolicy {
		if err := ValidatePolicy(normalized, ce.Policy); err != nil {
			log.Debugf("input outside policy: %v", err)
			return nil, err
		}
	}

	result, err := ce.build(normalized)
	if err != nil {
		return nil, err
	}
	log.Infof("calculated schedule: principal=%s rate=%s%% term=%d payment=%s tier=%s",
		normalized.Principal, normalized.AnnualRatePercent, normalized.TermMonths,
		result.Schedule.Payment.StringFixed(2), result.Tier.Key)
	return result, nil
}

// Preview runs decoded cross-context values through the generator. The term
// is clamped to Policy.MessageTermCap and form ranges are not enforced.
// A zero loan or term yields an empty schedule; anything the generator
// cannot accept is logged and reported as ok=false.
func (ce *CalculationEngine) Preview(data domain.LoanMessageData) (*domain.CalculationResult, bool) {
	log := loggerOrNop(ce.Logger)
	input := MessageInput(data, ce.Policy.MessageTermCap)
	if data.Term > input.TermMonths {
		log.Debugf("message term %d clamped to %d", data.Term, input.TermMonths)
	}

	if !input.Principal.IsPositive() || input.TermMonths <= 0 {
		empty := GenerateSchedule(input.Principal, input.AnnualRatePercent, input.TermMonths, decimal.Zero, input.StartDate)
		return ce.result(input, empty), true
	}

	result, err := ce.build(input)
	if err != nil {
		log.Debugf("ignoring message: %v", err)
		return nil, false
	}
	return result, true
}

// HandleMessage decodes a raw cross-context message and previews it.
// Malformed messages are a no-op.
func (ce *CalculationEngine) HandleMessage(raw []byte) (*domain.CalculationResult, bool) {
	data, ok := DecodeLoanMessage(raw)
	if !ok {
		loggerOrNop(ce.Logger).Debugf("ignoring message: not an %s payload", UpdateValuesMessage)
		return nil, false
	}
	return ce.Preview(data)
}

// ClassifyAmount converts amount from unit and places it on the gauge.
func (ce *CalculationEngine) ClassifyAmount(amount decimal.Decimal, unit domain.AmountUnit) (domain.Classification, error) {
	canonical, err := ToCanonical(amount, unit)
	if err != nil {
		return domain.Classification{}, err
	}
	c := ce.classifier()
	idx := c.ClassifyIndex(canonical)
	return domain.Classification{
		Amount:      canonical,
		Tier:        c.Tiers[idx],
		TierIndex:   idx,
		GaugeAngle:  c.AngleFor(canonical),
		NeedleAngle: c.NeedleAngle(canonical),
		LegacyClass: LegacyClass(canonical),
	}, nil
}

func (ce *CalculationEngine) build(input domain.LoanInput) (*domain.CalculationResult, error) {
	payment, err := ComputePeriodicPayment(input.Principal, input.AnnualRatePercent, input.TermMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to compute payment: %w", err)
	}
	schedule := GenerateSchedule(input.Principal, input.AnnualRatePercent, input.TermMonths, payment, input.StartDate)
	return ce.result(input, schedule), nil
}

func (ce *CalculationEngine) result(input domain.LoanInput, schedule *domain.Schedule) *domain.CalculationResult {
	input.StartDate = schedule.StartDate
	c := ce.classifier()
	return &domain.CalculationResult{
		Input:        input,
		Schedule:     schedule,
		Tier:         c.Classify(input.Principal),
		GaugeAngle:   c.AngleFor(input.Principal),
		NeedleAngle:  c.NeedleAngle(input.Principal),
		CalculatedAt: nowFunc(),
	}
}

// TierClassifier returns the classifier results are placed with.
func (ce *CalculationEngine) TierClassifier() *Classifier { return ce.classifier() }

func (ce *CalculationEngine) classifier() *Classifier {
	if ce.Classifier == nil {
		return DefaultClassifier()
	}
	return ce.Classifier
}

// normalizeInput converts the principal into currency units.
func normalizeInput(input domain.LoanInput) (domain.LoanInput, error) {
	principal, err := ToCanonical(input.Principal, input.Unit)
	if err != nil {
		return domain.LoanInput{}, err
	}
	input.Principal = principal
	input.Unit = domain.UnitRaw
	return input, nil
}

package calculation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// UpdateValuesMessage is the only message type the chart frame reacts to.
const UpdateValuesMessage = "updateValues"

// DecodeLoanMessage reads an {"type":"updateValues","data":{loan,rate,term}}
// envelope. Fields that are missing or not numeric decode as 0 and the term
// is floored to a non-negative integer. ok is false when the payload is not
// JSON, has another type or carries no data object; it never fails otherwise.
func DecodeLoanMessage(raw []byte) (domain.LoanMessageData, bool) {
	var envelope struct {
		Type any             `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return domain.LoanMessageData{}, false
	}
	if t, _ := envelope.Type.(string); t != UpdateValuesMessage {
		return domain.LoanMessageData{}, false
	}

	var fields map[string]any
	if err := json.Unmarshal(envelope.Data, &fields); err != nil || fields == nil {
		return domain.LoanMessageData{}, false
	}

	term := math.Floor(looseNumber(fields["term"]))
	if term < 0 {
		term = 0
	}
	if term > math.MaxInt32 {
		term = math.MaxInt32
	}
	return domain.LoanMessageData{
		Loan: looseNumber(fields["loan"]),
		Rate: looseNumber(fields["rate"]),
		Term: int(term),
	}, true
}

// looseNumber coerces a decoded JSON value to a finite float, defaulting to 0.
func looseNumber(v any) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	case bool:
		if x {
			f = 1
		}
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// MessageInput turns decoded message fields into a LoanInput, clamping the
// term to termCap. A non-positive cap disables clamping.
func MessageInput(data domain.LoanMessageData, termCap int) domain.LoanInput {
	term := data.Term
	if termCap > 0 && term > termCap {
		term = termCap
	}
	return domain.LoanInput{
		Principal:         decimal.NewFromFloat(data.Loan),
		AnnualRatePercent: decimal.NewFromFloat(data.Rate),
		TermMonths:        term,
		Unit:              domain.UnitRaw,
	}
}

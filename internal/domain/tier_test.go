package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultTierTableIsValid(t *testing.T) {
	tiers := DefaultTierTable()
	require.NoError(t, tiers.Validate())
	assert.Len(t, tiers, 4)
	assert.True(t, tiers[3].Unbounded())
	assert.Equal(t, []string{"small", "medium", "large", "mega"},
		[]string{tiers[0].Key, tiers[1].Key, tiers[2].Key, tiers[3].Key})
}

func TestSizeTierContains(t *testing.T) {
	medium := DefaultTierTable()[1]
	assert.False(t, medium.Contains(decimal.NewFromInt(499999)))
	assert.True(t, medium.Contains(decimal.NewFromInt(500000)))
	assert.True(t, medium.Contains(decimal.NewFromFloat(2499999.99)))
	assert.False(t, medium.Contains(decimal.NewFromInt(2500000)))

	mega := DefaultTierTable()[3]
	assert.True(t, mega.Contains(decimal.NewFromInt(1_000_000_000)))
}

func TestTierTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(TierTable) TierTable
		wantErr string
	}{
		{"empty", func(TierTable) TierTable { return TierTable{} }, "at least one tier"},
		{"does not start at zero", func(tt TierTable) TierTable {
			tt[0].Lower = decimal.NewFromInt(1)
			return tt
		}, "must start at 0"},
		{"gap between tiers", func(tt TierTable) TierTable {
			tt[1].Lower = decimal.NewFromInt(600000)
			return tt
		}, "ends at 500000"},
		{"bounded last tier", func(tt TierTable) TierTable {
			tt[3].Upper = bound(20000000)
			return tt
		}, "must be unbounded"},
		{"unbounded middle tier", func(tt TierTable) TierTable {
			tt[1].Upper = nil
			return tt
		}, "only the last tier"},
		{"inverted bounds", func(tt TierTable) TierTable {
			tt[0].Upper = bound(0)
			return tt
		}, "must exceed"},
		{"duplicate key", func(tt TierTable) TierTable {
			tt[2].Key = "small"
			return tt
		}, "duplicate key"},
		{"missing name", func(tt TierTable) TierTable {
			tt[1].Name = ""
			return tt
		}, "key and name are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(DefaultTierTable()).Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSizeTierUnmarshalYAML(t *testing.T) {
	src := `
- key: small
  name: Small loan
  lower: 0
  upper: 500000
- key: big
  name: Big loan
  lower: "500000"
`
	var tiers TierTable
	require.NoError(t, yaml.Unmarshal([]byte(src), &tiers))
	require.Len(t, tiers, 2)
	assert.True(t, tiers[0].Upper.Equal(decimal.NewFromInt(500000)))
	assert.Nil(t, tiers[1].Upper)
	assert.NoError(t, tiers.Validate())

	bad := "- key: x\n  name: X\n  lower: abc\n"
	assert.Error(t, yaml.Unmarshal([]byte(bad), &tiers))
}

func TestAmountUnitMultiplier(t *testing.T) {
	m, ok := UnitLakh.Multiplier()
	require.True(t, ok)
	assert.True(t, m.Equal(decimal.NewFromInt(100000)))

	m, ok = AmountUnit("").Multiplier()
	require.True(t, ok)
	assert.True(t, m.Equal(decimal.NewFromInt(1)))

	_, ok = AmountUnit("furlong").Multiplier()
	assert.False(t, ok)
}

func TestScheduleHelpersOnEmpty(t *testing.T) {
	var s *Schedule
	assert.True(t, s.IsEmpty())
	assert.True(t, s.FinalBalance().IsZero())
}

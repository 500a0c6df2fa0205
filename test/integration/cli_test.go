package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanlens/emi-calculator/internal/output"
)

func TestOutputGeneration(t *testing.T) {
	cfg, engine := loadEngine(t)
	result, err := engine.Calculate(context.Background(), defaultInput(cfg))
	require.NoError(t, err)
	report := output.BuildReport(result, engine.TierClassifier(), output.LabelMonth)

	dir := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		files, err := output.GenerateReport(report, format, filepath.Join(dir, format))
		require.NoError(t, err, format)
		require.Len(t, files, 1, format)

		info, err := os.Stat(files[0])
		require.NoError(t, err, format)
		assert.Positive(t, info.Size(), format)
	}
}

func TestGaugeFollowsConfiguration(t *testing.T) {
	_, engine := loadEngine(t)
	c := engine.TierClassifier()

	g := output.BuildGauge(c, c.Gauge.MaxDisplay)
	assert.InDelta(t, 90, g.Needle, 1e-9)
	// five majors with two minor ticks between each pair
	assert.Len(t, g.Ticks, 13)
	assert.Equal(t, "6Cr", g.Ticks[len(g.Ticks)-1].Label)
	for _, arc := range g.Arcs {
		assert.InDelta(t, 45, arc.End-arc.Start, 1e-9)
	}
}

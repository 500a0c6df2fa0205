package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanlens/emi-calculator/internal/output"
)

func TestHTMLReport(t *testing.T) {
	cfg, engine := loadEngine(t)
	result, err := engine.Calculate(context.Background(), defaultInput(cfg))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, output.WriteReport(&buf, output.BuildReport(result, engine.TierClassifier(), output.LabelMonth), "html"))
	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "Large loan (₹25L - ₹1Cr)")
	assert.Contains(t, html, "1 (2026)")
	assert.Contains(t, html, "21 (2046)")
}

func TestPresenterKeepsOneLiveArtifactAcrossMessages(t *testing.T) {
	_, engine := loadEngine(t)
	p := output.NewPresenter(engine.TierClassifier(), output.LabelIndex)

	var views []*output.View
	for _, msg := range []string{
		`{"type":"updateValues","data":{"loan":50000,"rate":5,"term":12}}`,
		`{"type":"updateValues","data":{"loan":900000,"rate":9,"term":60}}`,
		`{"type":"updateValues","data":{"loan":0,"rate":9,"term":60}}`,
	} {
		result, ok := engine.HandleMessage([]byte(msg))
		require.True(t, ok, msg)
		view, err := p.Render(result)
		require.NoError(t, err)
		views = append(views, view)
	}

	for i, v := range views {
		live := i == len(views)-1
		assert.Equal(t, !live, v.Bar.Destroyed(), "view %d", i)
		assert.Equal(t, !live, v.Gauge.Destroyed(), "view %d", i)
	}
	current, ok := p.Bar.Current()
	require.True(t, ok)
	assert.Equal(t, uint64(3), current.Generation)
	assert.Empty(t, current.Payload.(output.ChartData).Labels)
}

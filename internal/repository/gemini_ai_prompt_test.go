package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stock-advisor/internal/dto"
)

func TestComputeTrend(t *testing.T) {
	tests := []struct {
		name      string
		quote     dto.Quote
		prices    []float64
		wantStart float64
		wantEnd   float64
		wantPct   float64
	}{
		{
			name:      "empty series falls back to quote price on both ends",
			quote:     dto.Quote{Price: 100, PercentChange: 2.5},
			prices:    nil,
			wantStart: 100,
			wantEnd:   100,
			wantPct:   0,
		},
		{
			name:      "six percent rise",
			quote:     dto.Quote{Price: 106},
			prices:    []float64{100, 103, 106},
			wantStart: 100,
			wantEnd:   106,
			wantPct:   6,
		},
		{
			name:      "decline",
			quote:     dto.Quote{Price: 94},
			prices:    []float64{100, 94},
			wantStart: 100,
			wantEnd:   94,
			wantPct:   -6,
		},
		{
			name:      "zero start price yields zero trend",
			quote:     dto.Quote{Price: 0},
			prices:    []float64{0, 50},
			wantStart: 0,
			wantEnd:   50,
			wantPct:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, pct := computeTrend(&tt.quote, &dto.History{Prices: tt.prices})
			assert.InDelta(t, tt.wantStart, start, 1e-9)
			assert.InDelta(t, tt.wantEnd, end, 1e-9)
			assert.InDelta(t, tt.wantPct, pct, 1e-9)
		})
	}
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{6, trendStrongUp},
		{5.01, trendStrongUp},
		{5, trendModerateUp},
		{2.1, trendModerateUp},
		{2, trendSideways},
		{0, trendSideways},
		{-2, trendModerateDn},
		{-5, trendStrongDn},
		{-12, trendStrongDn},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyTrend(tt.pct), "pct %v", tt.pct)
	}
}

// The two worked examples: an empty historical series classifies as
// sideways, and a 100 -> 106 series as a strong upward trend.
func TestTrendExamples(t *testing.T) {
	quote := &dto.Quote{Price: 100, PercentChange: 2.5}
	_, _, pct := computeTrend(quote, &dto.History{})
	assert.Equal(t, trendSideways, classifyTrend(pct))

	_, _, pct = computeTrend(&dto.Quote{Price: 106}, &dto.History{Prices: []float64{100, 106}})
	assert.Equal(t, trendStrongUp, classifyTrend(pct))
}

func TestBuildAnalysisPrompt(t *testing.T) {
	quote := &dto.Quote{
		Symbol:        "AAPL",
		Price:         190.5,
		Change:        1.2,
		PercentChange: 0.63,
		High:          192,
		Low:           189,
		Volume:        52134400,
	}
	history := &dto.History{
		Dates:  []string{"07/30", "08/28"},
		Prices: []float64{180, 190.5},
	}

	prompt := buildAnalysisPrompt(quote, history)

	assert.Contains(t, prompt, "Stock: AAPL")
	assert.Contains(t, prompt, "- Current Price: $190.5")
	assert.Contains(t, prompt, "- Volume: 52,134,400")
	assert.Contains(t, prompt, "- Starting Price (30 days ago): $180.00")
	assert.Contains(t, prompt, "- 30-Day Change: 5.83%")
	assert.Contains(t, prompt, "- Trend: strong upward trend")
	assert.Contains(t, prompt, "ANALYSIS:")
	assert.Contains(t, prompt, "RECOMMENDATION:")
	assert.Contains(t, prompt, "ALLOCATION:")
	assert.Contains(t, prompt, "REASONING:")
}

package factors

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sopgen/sopgen/internal/timegrid"
	"github.com/sopgen/sopgen/internal/util"
)

var start = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSeasonal(t *testing.T) {
	tests := []struct {
		name string
		i, n int
		want float64
	}{
		{"single day", 0, 1, 1.0},
		{"first day", 0, 5, 1.0},
		{"half period crosses zero", 1, 5, 1.0 + SeasonalAmplitude*math.Sin(math.Pi)},
		{"last day", 4, 5, 1.0 + SeasonalAmplitude*math.Sin(4*math.Pi)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Seasonal(tt.i, tt.n), 1e-12)
		})
	}

	// Peak at one eighth of the horizon: sin(pi/2).
	assert.InDelta(t, 1+SeasonalAmplitude, Seasonal(1, 9), 1e-12)
}

func TestSeasonalCurve(t *testing.T) {
	assert.Empty(t, SeasonalCurve(0))

	curve := SeasonalCurve(365)
	require.Len(t, curve, 365)
	assert.InDelta(t, 1.0, curve[0], 1e-12)
	assert.InDelta(t, 1.0, curve[364], 1e-12)
	for i, v := range curve {
		assert.InDelta(t, 1.0, v, SeasonalAmplitude+1e-12, "day %d", i)
		assert.Equal(t, v, Seasonal(i, 365), "day %d", i)
	}
}

func TestSpan(t *testing.T) {
	assert.Equal(t, []float64{1}, span(1, 2, 1))
	assert.Empty(t, span(1, 2, 0))

	got := span(GDPStart, GDPEnd, 5)
	require.Len(t, got, 5)
	assert.Equal(t, GDPStart, got[0])
	assert.Equal(t, GDPEnd, got[4])
	assert.InDelta(t, 1.1, got[2], 1e-12)
}

func TestGenerate_Shape(t *testing.T) {
	s := util.NewSampler(42)
	grid := timegrid.NewDaily(s, start, 365)
	series := Generate(s, grid)

	require.Equal(t, grid.Len(), series.Len())

	events := 0
	for i, r := range series.Records() {
		assert.True(t, r.Date.Equal(grid.Date(i)), "date mismatch at %d", i)
		assert.True(t, util.Finite(r.Impact()), "impact not finite at %d", i)
		assert.InDelta(t, 1.0, r.GDP, 0.35)
		assert.InDelta(t, 1.0, r.WeatherImpact, 0.2)
		if r.MarketEvent != 1 {
			events++
			assert.GreaterOrEqual(t, r.MarketEvent, 1+MarketEventMin)
			assert.Less(t, r.MarketEvent, 1+MarketEventMax)
		}
	}

	// floor(0.05 * 365) distinct days.
	assert.Equal(t, 18, events)

	// Inflation accumulates a positive drift of about 0.02 a day.
	assert.Greater(t, series.At(364).Inflation, series.At(0).Inflation)
	assert.InDelta(t, 1+365*InflationDrift, series.At(364).Inflation, 0.5)
}

func TestGenerate_Reproducible(t *testing.T) {
	a := Generate(util.NewSampler(7), timegrid.NewDaily(util.NewSampler(1), start, 60))
	b := Generate(util.NewSampler(7), timegrid.NewDaily(util.NewSampler(1), start, 60))

	assert.Equal(t, a.Records(), b.Records())
}

func TestGenerate_ShortHorizon(t *testing.T) {
	s := util.NewSampler(3)
	series := Generate(s, timegrid.NewDaily(s, start, 3))

	require.Equal(t, 3, series.Len())
	// With fewer than seven draws every day shares the same weather mean.
	w := series.At(0).WeatherImpact
	for i := 1; i < 3; i++ {
		assert.Equal(t, w, series.At(i).WeatherImpact)
	}
	// floor(0.05 * 3) = 0 market events.
	for _, r := range series.Records() {
		assert.Equal(t, 1.0, r.MarketEvent)
	}
}

func TestRollingMean_Backfill(t *testing.T) {
	values := []float64{7, 0, 0, 0, 0, 0, 0, 7, 14}
	got := rollingMean(values, 7)

	want := []float64{1, 1, 1, 1, 1, 1, 1, 1, 3}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "position %d", i)
	}

	assert.Empty(t, rollingMean(nil, 7))
	assert.Equal(t, []float64{2, 2}, rollingMean([]float64{1, 3}, 7))
}

func TestNeutral(t *testing.T) {
	grid := timegrid.NewDaily(util.NewSampler(1), start, 10)
	series := Neutral(grid)

	require.Equal(t, 10, series.Len())
	for i := 0; i < series.Len(); i++ {
		assert.Equal(t, 1.0, series.Impact(i))
	}
}

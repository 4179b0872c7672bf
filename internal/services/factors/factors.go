// Package factors generates the shared exogenous driver series (economy,
// seasonality, market events and weather) that scale every demand series.
package factors

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/timegrid"
	"github.com/sopgen/sopgen/internal/util"
)

// Shape of the generated series.
const (
	GDPStart          = 1.0
	GDPEnd            = 1.2
	GDPNoise          = 0.02
	InflationDrift    = 0.02
	InflationNoise    = 0.005
	SeasonalAmplitude = 0.15
	MarketEventRate   = 0.05
	MarketEventMin    = 0.1
	MarketEventMax    = 0.3
	WeatherNoise      = 0.1
	WeatherWindow     = 7
)

// Series is the factor record of every grid date, aligned by index.
type Series struct {
	records []models.ExogenousFactors
}

// Generate draws the factor series for grid from s.
func Generate(s *util.Sampler, grid *timegrid.Grid) *Series {
	n := grid.Len()

	gdp := span(GDPStart, GDPEnd, n)
	for i := range gdp {
		gdp[i] += s.Normal(0, GDPNoise)
	}

	inflation := make([]float64, n)
	for i := range inflation {
		inflation[i] = s.Normal(InflationDrift, InflationNoise)
	}
	floats.CumSum(inflation, inflation)
	floats.AddConst(1, inflation)

	events := make([]float64, n)
	for i := range events {
		events[i] = 1
	}
	for _, idx := range s.Distinct(n, int(float64(n)*MarketEventRate)) {
		events[idx] = 1 + s.Uniform(MarketEventMin, MarketEventMax)
	}

	draws := make([]float64, n)
	for i := range draws {
		draws[i] = s.Normal(0, WeatherNoise)
	}
	weather := rollingMean(draws, WeatherWindow)
	seasonal := SeasonalCurve(n)

	series := &Series{records: make([]models.ExogenousFactors, n)}
	for i := 0; i < n; i++ {
		series.records[i] = models.ExogenousFactors{
			Date:          grid.Date(i),
			GDP:           gdp[i],
			Inflation:     inflation[i],
			Seasonal:      seasonal[i],
			MarketEvent:   events[i],
			WeatherImpact: 1 + weather[i],
		}
	}
	return series
}

// Neutral returns a series where every factor is 1.0.
func Neutral(grid *timegrid.Grid) *Series {
	series := &Series{records: make([]models.ExogenousFactors, grid.Len())}
	for i := range series.records {
		series.records[i] = models.ExogenousFactors{
			Date:          grid.Date(i),
			GDP:           1,
			Inflation:     1,
			Seasonal:      1,
			MarketEvent:   1,
			WeatherImpact: 1,
		}
	}
	return series
}

// SeasonalCurve returns the deterministic seasonal factor of every day of an
// n-day horizon. The sine completes two periods across the horizon with both
// endpoints included.
func SeasonalCurve(n int) []float64 {
	curve := span(0, 4*math.Pi, n)
	for i, angle := range curve {
		curve[i] = 1 + SeasonalAmplitude*math.Sin(angle)
	}
	return curve
}

// Seasonal returns the seasonal factor of day i out of n.
func Seasonal(i, n int) float64 {
	return SeasonalCurve(n)[i]
}

// Len returns the number of records.
func (s *Series) Len() int {
	return len(s.records)
}

// At returns the factors of the i-th grid date.
func (s *Series) At(i int) models.ExogenousFactors {
	return s.records[i]
}

// Impact returns the combined multiplier of the i-th grid date.
func (s *Series) Impact(i int) float64 {
	return s.records[i].Impact()
}

// Records returns every record in date order. Callers must not modify the slice.
func (s *Series) Records() []models.ExogenousFactors {
	return s.records
}

// span returns n evenly spaced values from lo to hi inclusive. A single value
// is lo.
func span(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	switch {
	case n == 1:
		out[0] = lo
	case n > 1:
		floats.Span(out, lo, hi)
	}
	return out
}

// rollingMean returns the trailing window mean of values. Positions before the
// first complete window take the first complete window's mean; when fewer
// values than window exist every position takes the mean of all values.
func rollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	if len(values) < window {
		m := stat.Mean(values, nil)
		for i := range out {
			out[i] = m
		}
		return out
	}

	for i := window - 1; i < len(values); i++ {
		out[i] = stat.Mean(values[i-window+1:i+1], nil)
	}
	for i := 0; i < window-1; i++ {
		out[i] = out[window-1]
	}
	return out
}

package demand

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/services/events"
	"github.com/sopgen/sopgen/internal/services/factors"
	"github.com/sopgen/sopgen/internal/timegrid"
	"github.com/sopgen/sopgen/internal/util"
)

var start = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

func flatSeries(base float64) models.DemandSeries {
	return models.DemandSeries{ProductID: "P0000", LocationID: "L0000", BaseDemand: base}
}

func TestRender_FlatDemand(t *testing.T) {
	s := util.NewSampler(1)
	grid := timegrid.NewDaily(s, start, 10)
	engine := NewEngine(grid, factors.Neutral(grid), nil)

	points := engine.Render(s, flatSeries(100))

	require.Len(t, points, 10)
	for i, p := range points {
		assert.Equal(t, 100.0, p.ForecastQuantity, "day %d", i)
		assert.True(t, p.Date.Equal(grid.Date(i)))
		assert.GreaterOrEqual(t, p.ConfidenceLevel, ConfidenceMin)
		assert.Less(t, p.ConfidenceLevel, ConfidenceMax)
	}
}

func TestExpected_Composition(t *testing.T) {
	s := util.NewSampler(5)
	grid := timegrid.NewDaily(s, start, 400)
	f := factors.Generate(s, grid)
	promos := events.NewCalendar([]models.PromotionEvent{
		{Date: start.AddDate(0, 0, 30), ProductID: "P0000", DiscountFactor: 0.25, DurationDays: 3},
	})
	engine := NewEngine(grid, f, promos)

	series := models.DemandSeries{ProductID: "P0000", LocationID: "L0001", BaseDemand: 500, Trend: 0.1, Seasonality: 0.2}

	tests := []struct {
		name  string
		i     int
		promo float64
	}{
		{"first day", 0, 1},
		{"promotion start", 30, 1.25},
		{"promotion end", 33, 1.25},
		{"after promotion", 34, 1},
		{"next year", 380, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := grid.Date(tt.i)
			want := 500 *
				(1 + 0.1*float64(tt.i)/365) *
				(1 + 0.2*math.Sin(2*math.Pi*float64(date.YearDay())/365)) *
				f.Impact(tt.i) *
				tt.promo
			assert.InDelta(t, want, engine.Expected(series, tt.i), 1e-9)
		})
	}
}

func TestRender_NonNegative(t *testing.T) {
	s := util.NewSampler(11)
	grid := timegrid.NewDaily(s, start, 200)
	engine := NewEngine(grid, factors.Generate(s, grid), nil)

	// A steep negative trend drives expected demand below zero late in the horizon.
	series := models.DemandSeries{ProductID: "P0000", LocationID: "L0000", BaseDemand: 100, Trend: -3, NoiseLevel: 0.15}
	for _, p := range engine.Render(s, series) {
		assert.GreaterOrEqual(t, p.ForecastQuantity, 0.0)
		assert.True(t, util.Finite(p.ForecastQuantity))
	}
}

func TestGenerate(t *testing.T) {
	products := []models.Product{{ID: "P0000"}, {ID: "P0001"}, {ID: "P0002"}}
	locations := []models.Location{{ID: "L0000"}, {ID: "L0001"}}

	run := func(seed int64) []models.ForecastPoint {
		s := util.NewSampler(seed)
		grid := timegrid.NewDaily(s, start, 30)
		f := factors.Generate(s, grid)
		cal := events.GeneratePromotions(s, grid, len(products))
		return NewEngine(grid, f, cal).Generate(s, products, locations, 20)
	}

	points := run(42)
	require.Len(t, points, 20*30)
	assert.Equal(t, points, run(42))

	for _, p := range points {
		assert.GreaterOrEqual(t, p.ForecastQuantity, 0.0)
		assert.Contains(t, []string{"P0000", "P0001", "P0002"}, p.ProductID)
		assert.Contains(t, []string{"L0000", "L0001"}, p.LocationID)
	}
}

func TestGenerate_Empty(t *testing.T) {
	s := util.NewSampler(1)
	grid := timegrid.NewDaily(s, start, 10)
	engine := NewEngine(grid, factors.Neutral(grid), nil)

	assert.Empty(t, engine.Generate(s, nil, []models.Location{{ID: "L0000"}}, 5))
	assert.Empty(t, engine.Generate(s, []models.Product{{ID: "P0000"}}, nil, 5))
	assert.Empty(t, engine.Generate(s, []models.Product{{ID: "P0000"}}, []models.Location{{ID: "L0000"}}, 0))
}

func TestSampleSeries_Ranges(t *testing.T) {
	s := util.NewSampler(3)
	for i := 0; i < 100; i++ {
		series := SampleSeries(s, "P0000", "L0000")
		assert.GreaterOrEqual(t, series.BaseDemand, BaseDemandMin)
		assert.Less(t, series.BaseDemand, BaseDemandMax)
		assert.GreaterOrEqual(t, series.Trend, TrendMin)
		assert.Less(t, series.Trend, TrendMax)
		assert.GreaterOrEqual(t, series.Seasonality, SeasonalityMin)
		assert.GreaterOrEqual(t, series.NoiseLevel, NoiseMin)
	}
}

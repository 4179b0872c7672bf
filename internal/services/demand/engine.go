// Package demand renders daily forecast trajectories from sampled demand
// parameters and the shared factor and promotion series.
package demand

import (
	"math"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/services/events"
	"github.com/sopgen/sopgen/internal/services/factors"
	"github.com/sopgen/sopgen/internal/timegrid"
	"github.com/sopgen/sopgen/internal/util"
)

// Sampling ranges of a demand series.
const (
	BaseDemandMin  = 100.0
	BaseDemandMax  = 1000.0
	TrendMin       = -0.2
	TrendMax       = 0.3
	SeasonalityMin = 0.1
	SeasonalityMax = 0.4
	NoiseMin       = 0.05
	NoiseMax       = 0.15
	ConfidenceMin  = 0.6
	ConfidenceMax  = 0.95
)

// Engine renders forecast points over a grid. It holds read-only references
// to the shared inputs and keeps no state between calls.
type Engine struct {
	grid    *timegrid.Grid
	factors *factors.Series
	promos  *events.Calendar
}

// NewEngine creates a demand engine over grid. f must be aligned with grid.
func NewEngine(grid *timegrid.Grid, f *factors.Series, promos *events.Calendar) *Engine {
	if promos == nil {
		promos = events.NewCalendar(nil)
	}
	return &Engine{grid: grid, factors: f, promos: promos}
}

// Generate samples numForecasts series, each for a product and location
// chosen uniformly with replacement, and renders every series over the grid.
func (e *Engine) Generate(s *util.Sampler, products []models.Product, locations []models.Location, numForecasts int) []models.ForecastPoint {
	if len(products) == 0 || len(locations) == 0 || numForecasts <= 0 {
		return nil
	}

	points := make([]models.ForecastPoint, 0, numForecasts*e.grid.Len())
	for i := 0; i < numForecasts; i++ {
		product := util.Pick(s, products)
		location := util.Pick(s, locations)
		series := SampleSeries(s, product.ID, location.ID)
		points = append(points, e.Render(s, series)...)
	}
	return points
}

// SampleSeries draws the parameters of one product-location demand series.
func SampleSeries(s *util.Sampler, productID, locationID string) models.DemandSeries {
	return models.DemandSeries{
		ProductID:   productID,
		LocationID:  locationID,
		BaseDemand:  s.Uniform(BaseDemandMin, BaseDemandMax),
		Trend:       s.Uniform(TrendMin, TrendMax),
		Seasonality: s.Uniform(SeasonalityMin, SeasonalityMax),
		NoiseLevel:  s.Uniform(NoiseMin, NoiseMax),
	}
}

// Render produces one forecast point per grid date. Each point adds
// N(0, noise_level * expected) to the expected demand and clamps at zero.
func (e *Engine) Render(s *util.Sampler, series models.DemandSeries) []models.ForecastPoint {
	points := make([]models.ForecastPoint, e.grid.Len())
	for i := range points {
		expected := e.Expected(series, i)
		qty := expected + s.Normal(0, series.NoiseLevel*expected)
		if qty < 0 || !util.Finite(qty) {
			qty = 0
		}
		points[i] = models.ForecastPoint{
			Date:             e.grid.Date(i),
			ProductID:        series.ProductID,
			LocationID:       series.LocationID,
			ForecastQuantity: qty,
			ConfidenceLevel:  s.Uniform(ConfidenceMin, ConfidenceMax),
		}
	}
	return points
}

// Expected returns the noise-free demand of series on the i-th grid date:
// base * trend * seasonal * external * promotion.
func (e *Engine) Expected(series models.DemandSeries, i int) float64 {
	date := e.grid.Date(i)

	timeFactor := float64(e.grid.DaysSinceStart(i)) / util.DaysPerYear
	trend := 1 + series.Trend*timeFactor
	seasonal := 1 + series.Seasonality*math.Sin(2*math.Pi*float64(date.YearDay())/util.DaysPerYear)
	external := e.factors.Impact(i)
	promo := e.promos.Uplift(series.ProductID, date)

	return series.BaseDemand * trend * seasonal * external * promo
}

// Package inventory derives a replenishment policy for every product and
// location and renders the resulting on-hand sawtooth over the grid.
package inventory

import (
	"math"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/timegrid"
	"github.com/sopgen/sopgen/internal/util"
)

// Policy sampling ranges.
const (
	BaseStockMin       = 50
	BaseStockMax       = 500
	VariabilityMin     = 0.1
	VariabilityMax     = 0.4
	ServiceLevelMin    = 0.9
	ServiceLevelMax    = 0.99
	ZScoreMean         = 2.0
	ZScoreStdDev       = 0.5
	OrderingCostMin    = 50.0
	OrderingCostMax    = 200.0
	HoldingCostRateMin = 0.1
	HoldingCostRateMax = 0.3
	FillRateSpread     = 0.05
	LevelNoiseFraction = 0.1
	DemandWindowDays   = 30
	CarryingPeriodDays = 30
)

// Floors applied to degenerate parameters.
const (
	MinHoldingCost    = 0.01
	MinAvgDailyDemand = 1.0 / DemandWindowDays
	MinCycleDays      = 1.0
)

// Engine renders inventory trajectories over a grid.
type Engine struct {
	grid *timegrid.Grid
}

// NewEngine creates an inventory engine over grid.
func NewEngine(grid *timegrid.Grid) *Engine {
	return &Engine{grid: grid}
}

// Generate derives a policy for every product and location pair, in product
// then location order, and renders each in a single pass over the grid.
func (e *Engine) Generate(s *util.Sampler, products []models.Product, locations []models.Location) ([]models.InventoryPolicy, []models.InventoryPoint) {
	pairs := len(products) * len(locations)
	policies := make([]models.InventoryPolicy, 0, pairs)
	points := make([]models.InventoryPoint, 0, pairs*e.grid.Len())

	for _, product := range products {
		for _, location := range locations {
			policy := DerivePolicy(s, product, location.ID)
			policies = append(policies, policy)
			points = append(points, e.RenderPolicy(s, policy)...)
		}
	}
	return policies, points
}

// DerivePolicy samples the replenishment parameters of product at location
// and computes safety stock, reorder point and EOQ in closed form.
func DerivePolicy(s *util.Sampler, product models.Product, locationID string) models.InventoryPolicy {
	p := models.InventoryPolicy{
		ProductID:         product.ID,
		LocationID:        locationID,
		UnitCost:          product.UnitCost,
		LeadTimeDays:      product.LeadTimeDays,
		BaseStock:         s.IntBetween(BaseStockMin, BaseStockMax),
		DemandVariability: s.Uniform(VariabilityMin, VariabilityMax),
		ServiceLevel:      s.Uniform(ServiceLevelMin, ServiceLevelMax),
	}
	p.ZScore = math.Abs(s.Normal(ZScoreMean, ZScoreStdDev))
	p.OrderingCost = s.Uniform(OrderingCostMin, OrderingCostMax)
	p.HoldingCostRate = s.Uniform(HoldingCostRateMin, HoldingCostRateMax)
	return Complete(p)
}

// Complete fills the derived fields of p from its sampled fields.
func Complete(p models.InventoryPolicy) models.InventoryPolicy {
	leadTime := math.Max(0, float64(p.LeadTimeDays))

	p.SafetyStock = floorInt(p.ZScore * math.Sqrt(leadTime) * p.DemandVariability * float64(p.BaseStock))
	p.AvgDailyDemand = math.Max(MinAvgDailyDemand, float64(p.BaseStock)/DemandWindowDays)
	p.ReorderPoint = floorInt(p.AvgDailyDemand*leadTime + float64(p.SafetyStock))
	p.AnnualDemand = p.AvgDailyDemand * util.DaysPerYear
	p.HoldingCost = math.Max(MinHoldingCost, p.UnitCost*p.HoldingCostRate)
	p.EOQ = floorInt(math.Sqrt(2 * p.AnnualDemand * p.OrderingCost / p.HoldingCost))
	return p
}

// CycleLength returns the number of days one order quantity lasts, floored at
// one day.
func CycleLength(p models.InventoryPolicy) float64 {
	avg := math.Max(MinAvgDailyDemand, p.AvgDailyDemand)
	return math.Max(MinCycleDays, float64(p.EOQ)/avg)
}

// RenderPolicy renders one inventory point per grid date for p. On-hand
// stock falls linearly from EOQ to zero over each cycle, with
// N(0, 0.1 * safety stock) noise, clamped at zero.
func (e *Engine) RenderPolicy(s *util.Sampler, p models.InventoryPolicy) []models.InventoryPoint {
	cycle := CycleLength(p)
	avg := math.Max(MinAvgDailyDemand, p.AvgDailyDemand)
	noise := LevelNoiseFraction * float64(p.SafetyStock)

	points := make([]models.InventoryPoint, e.grid.Len())
	for i := range points {
		position := math.Mod(float64(e.grid.DaysSinceStart(i)), cycle)
		level := float64(p.EOQ)*(cycle-position)/cycle + s.Normal(0, noise)
		qoh := floorInt(level)

		stocked := float64(max(1, qoh))
		points[i] = models.InventoryPoint{
			Date:                e.grid.Date(i),
			ProductID:           p.ProductID,
			LocationID:          p.LocationID,
			QuantityOnHand:      qoh,
			SafetyStockLevel:    p.SafetyStock,
			ReorderPoint:        p.ReorderPoint,
			EOQ:                 p.EOQ,
			InventoryTurns:      p.AnnualDemand / stocked,
			DaysOfSupply:        stocked / avg,
			CarryingCost:        float64(qoh) * p.UnitCost * (p.HoldingCostRate / util.DaysPerYear) * CarryingPeriodDays,
			StockoutProbability: p.StockoutProbability(),
			FillRate:            s.Uniform(p.ServiceLevel-FillRateSpread, p.ServiceLevel),
		}
	}
	return points
}

// floorInt truncates v toward negative infinity and clamps the result to
// zero. Non-finite values become zero.
func floorInt(v float64) int {
	if !util.Finite(v) || v <= 0 {
		return 0
	}
	return int(math.Floor(v))
}

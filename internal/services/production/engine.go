// Package production turns aggregated demand into per-plant production plans.
package production

import (
	"sort"
	"time"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/util"
)

// Sampling ranges of plant parameters and costs.
const (
	SetupHoursMin      = 1.0
	SetupHoursMax      = 8.0
	RateMin            = 5.0
	RateMax            = 50.0
	EfficiencyMin      = 0.7
	EfficiencyMax      = 0.95
	CostPerHourMin     = 50.0
	CostPerHourMax     = 200.0
	MaterialShareMin   = 0.6
	MaterialShareMax   = 0.8
	LaborShareMin      = 0.3
	LaborShareMax      = 0.5
	MachineShareMin    = 0.5
	MachineShareMax    = 0.8
	MaterialLinesMax   = 3
	MaterialIDMin      = 1000
	MaterialIDMax      = 9999
	MaterialQtyMin     = 0.5
	MaterialQtyMax     = 2.0
	ConfidenceBuffer   = 0.5
	MaterialCodePrefix = "M"
)

// Aggregate is the total forecast of one product on one date across all
// locations.
type Aggregate struct {
	ProductID  string
	Date       time.Time
	Quantity   float64
	Confidence float64
}

// Line holds the production parameters sampled once per product.
type Line struct {
	ProductID  string
	PlantID    string
	SetupHours float64
	Rate       float64
	Efficiency float64
}

// Result is the output of a production planning run.
type Result struct {
	Assignment Assignment
	Lines      []Line
	Records    []models.ProductionRecord
}

// AggregateDemand sums forecast quantity and averages confidence per product
// and date. The result is keyed by product with each slice in date order.
func AggregateDemand(points []models.ForecastPoint) map[string][]Aggregate {
	type key struct {
		product string
		date    time.Time
	}
	type acc struct {
		qty, conf float64
		n         int
	}

	sums := make(map[key]*acc)
	for _, p := range points {
		k := key{p.ProductID, p.Date}
		a, ok := sums[k]
		if !ok {
			a = &acc{}
			sums[k] = a
		}
		a.qty += p.ForecastQuantity
		a.conf += p.ConfidenceLevel
		a.n++
	}

	out := make(map[string][]Aggregate)
	for k, a := range sums {
		out[k.product] = append(out[k.product], Aggregate{
			ProductID:  k.product,
			Date:       k.date,
			Quantity:   a.qty,
			Confidence: a.conf / float64(a.n),
		})
	}
	for _, aggs := range out {
		sort.Slice(aggs, func(i, j int) bool { return aggs[i].Date.Before(aggs[j].Date) })
	}
	return out
}

// Plan assigns every product to one plant and plans production for each of
// its aggregated demand dates. Products are processed in table order.
func Plan(s *util.Sampler, products []models.Product, locations []models.Location, forecast []models.ForecastPoint) Result {
	result := Result{Assignment: AssignPlants(s, locations)}
	if len(result.Assignment.Plants) == 0 {
		return result
	}

	demand := AggregateDemand(forecast)
	for _, product := range products {
		line := Line{
			ProductID:  product.ID,
			PlantID:    util.Pick(s, result.Assignment.Plants).ID,
			SetupHours: s.Uniform(SetupHoursMin, SetupHoursMax),
			Rate:       s.Uniform(RateMin, RateMax),
			Efficiency: s.Uniform(EfficiencyMin, EfficiencyMax),
		}
		result.Lines = append(result.Lines, line)

		for _, agg := range demand[product.ID] {
			result.Records = append(result.Records, PlanRecord(s, product, line, agg))
		}
	}
	return result
}

// PlannedQuantity buffers qty by half the forecast uncertainty and truncates
// to whole units.
func PlannedQuantity(qty, confidence float64) int {
	buffered := qty * (1 + (1-confidence)*ConfidenceBuffer)
	if !util.Finite(buffered) || buffered <= 0 {
		return 0
	}
	return int(buffered)
}

// PlanRecord plans production of one aggregate on line.
func PlanRecord(s *util.Sampler, product models.Product, line Line, agg Aggregate) models.ProductionRecord {
	planned := PlannedQuantity(agg.Quantity, agg.Confidence)
	productionHours := float64(planned) / line.Rate / line.Efficiency
	totalHours := productionHours + line.SetupHours

	rec := models.ProductionRecord{
		Date:               agg.Date,
		ProductID:          product.ID,
		LocationID:         line.PlantID,
		PlannedQuantity:    planned,
		ProductionHours:    productionHours,
		SetupHours:         line.SetupHours,
		ResourceEfficiency: line.Efficiency,
		ProductionCost:     totalHours * s.Uniform(CostPerHourMin, CostPerHourMax),
		MaterialCost:       float64(planned) * product.UnitCost * s.Uniform(MaterialShareMin, MaterialShareMax),
	}

	rec.ResourceRequirements = models.ResourceRequirements{
		LaborHours:   totalHours * s.Uniform(LaborShareMin, LaborShareMax),
		MachineHours: totalHours * s.Uniform(MachineShareMin, MachineShareMax),
		SetupHours:   line.SetupHours,
	}
	lines := s.IntBetween(1, MaterialLinesMax)
	rec.ResourceRequirements.MaterialsRequired = make([]models.MaterialLine, lines)
	for i := range rec.ResourceRequirements.MaterialsRequired {
		rec.ResourceRequirements.MaterialsRequired[i] = models.MaterialLine{
			MaterialID: util.SequenceCode(MaterialCodePrefix, s.IntBetween(MaterialIDMin, MaterialIDMax)),
			Quantity:   float64(planned) * s.Uniform(MaterialQtyMin, MaterialQtyMax),
		}
	}
	return rec
}

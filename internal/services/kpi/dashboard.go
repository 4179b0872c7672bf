package kpi

import (
	"log/slog"
	"time"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/util"
)

// Dashboard metric names.
const (
	MetricInventoryValue      = "Inventory Value"
	MetricCarryingCost        = "Inventory Carrying Cost"
	MetricProductionCost      = "Production Cost"
	MetricResourceUtilization = "Resource Utilization"
	MetricForecastAccuracy    = "Forecast Accuracy"
	MetricOnTimeDelivery      = "On-Time Delivery"
	MetricPerfectOrderRate    = "Perfect Order Rate"
)

// MetricsPerDate is the number of KPI records emitted for an aligned date.
const MetricsPerDate = 7

// Fixed targets and sampling ranges.
const (
	UtilizationTarget      = 85.0
	ForecastAccuracyTarget = 95.0
	OnTimeDeliveryTarget   = 98.0
	PerfectOrderTarget     = 95.0
	CarryingCostTargetRate = 0.9
	ProductionTargetRate   = 0.95
)

// Result holds the dashboard and the dates that could not be scored.
type Result struct {
	Records []models.KPIRecord
	Skipped []time.Time
}

// Generate emits MetricsPerDate records for every aligned date in dates.
// Misaligned dates are skipped and reported in Result.Skipped.
func Generate(s *util.Sampler, agg *Aggregator, dates []time.Time) Result {
	var result Result
	for _, date := range dates {
		snap, alignment := agg.Lookup(date)
		if !alignment.OK() {
			slog.Debug("skipping KPI date", "date", util.FormatDate(date), "alignment", alignment.String())
			result.Skipped = append(result.Skipped, snap.Date)
			continue
		}
		result.Records = append(result.Records, Metrics(s, snap)...)
	}
	if len(result.Skipped) > 0 {
		slog.Info("KPI dates skipped for missing data", "skipped", len(result.Skipped), "dates", len(dates))
	}
	return result
}

// Metrics derives the seven dashboard metrics of one snapshot.
func Metrics(s *util.Sampler, snap Snapshot) []models.KPIRecord {
	qoh := float64(snap.Inventory.QuantityOnHand)
	inventoryValue := qoh * s.Uniform(10, 50)
	inventoryTarget := qoh * s.Uniform(8, 45)

	carrying := snap.Inventory.CarryingCost
	cost := snap.Production.TotalCost

	records := []models.KPIRecord{
		record(snap.Date, MetricInventoryValue, inventoryValue, inventoryTarget),
		record(snap.Date, MetricCarryingCost, carrying, carrying*CarryingCostTargetRate),
		record(snap.Date, MetricProductionCost, cost, cost*ProductionTargetRate),
		record(snap.Date, MetricResourceUtilization, snap.Production.Utilization(), UtilizationTarget),
	}
	records = append(records,
		record(snap.Date, MetricForecastAccuracy, s.Uniform(0.8, 0.98)*100, ForecastAccuracyTarget),
		record(snap.Date, MetricOnTimeDelivery, s.Uniform(0.85, 0.99)*100, OnTimeDeliveryTarget),
		record(snap.Date, MetricPerfectOrderRate, s.Uniform(0.8, 0.95)*100, PerfectOrderTarget),
	)
	return records
}

// record builds a network-wide KPI with value and target at two decimals,
// so the variance derived from them matches the published figures.
func record(date time.Time, name string, value, target float64) models.KPIRecord {
	return models.KPIRecord{
		Date:          date,
		MetricName:    name,
		MetricValue:   util.Round(value, 2),
		TargetValue:   util.Round(target, 2),
		DimensionType: models.DimensionTypeOverall,
		DimensionID:   models.DimensionAll,
	}
}

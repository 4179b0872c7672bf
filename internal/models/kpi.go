package models

import (
	"time"
)

const (
	// DimensionTypeOverall marks KPIs aggregated over the whole network.
	DimensionTypeOverall = "Overall"

	// DimensionAll is the dimension id of network-wide KPIs.
	DimensionAll = "ALL"
)

// KPIRecord is one metric on the dashboard for one day.
type KPIRecord struct {
	Date          time.Time
	MetricName    string
	MetricValue   float64
	TargetValue   float64
	DimensionType string
	DimensionID   string
}

// VariancePercentage returns (value - target) / target * 100.
// A zero target has no meaningful variance and yields 0.
func (k KPIRecord) VariancePercentage() float64 {
	return Variance(k.MetricValue, k.TargetValue)
}

// Variance returns the percentage deviation of value from target, or 0 when target is 0.
func Variance(value, target float64) float64 {
	if target == 0 {
		return 0
	}
	return (value - target) / target * 100
}

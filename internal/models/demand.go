package models

import (
	"time"
)

// DemandSeries holds the parameters sampled once per forecast series.
type DemandSeries struct {
	ProductID   string
	LocationID  string
	BaseDemand  float64
	Trend       float64
	Seasonality float64
	NoiseLevel  float64
}

// ForecastPoint is one day of a demand series.
type ForecastPoint struct {
	Date             time.Time
	ProductID        string
	LocationID       string
	ForecastQuantity float64
	ConfidenceLevel  float64
}

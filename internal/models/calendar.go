package models

import (
	"time"
)

// DatePoint is one calendar day (or month end) of the time dimension.
type DatePoint struct {
	Date          time.Time
	Year          int
	Quarter       int
	Month         int
	Week          int
	DayOfWeek     int // Monday = 0
	IsHoliday     bool
	IsBusinessDay bool
}

// ExogenousFactors holds the multiplicative external drivers for one day.
// A value of 1.0 means "no effect".
type ExogenousFactors struct {
	Date          time.Time
	GDP           float64
	Inflation     float64
	Seasonal      float64
	MarketEvent   float64
	WeatherImpact float64
}

// Impact returns the combined multiplicative effect of all five factors.
func (f ExogenousFactors) Impact() float64 {
	return f.GDP * f.Inflation * f.Seasonal * f.MarketEvent * f.WeatherImpact
}

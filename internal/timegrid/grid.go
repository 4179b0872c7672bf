// Package timegrid builds the ordered date sequences every generator shares.
package timegrid

import (
	"time"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/util"
)

// HolidayProbability is the chance that any single point is flagged as a holiday.
const HolidayProbability = 0.1

// Granularity is the spacing between consecutive points of a grid.
type Granularity string

const (
	Daily    Granularity = "daily"
	MonthEnd Granularity = "month_end"
)

// Grid is an ordered, gap-free sequence of dates. Generators receive the
// same *Grid so every table is aligned on identical dates.
type Grid struct {
	granularity Granularity
	points      []models.DatePoint
	index       map[time.Time]int
}

// NewDaily builds a daily grid of days points starting at start.
func NewDaily(s *util.Sampler, start time.Time, days int) *Grid {
	start = util.Midnight(start)
	dates := make([]time.Time, 0, max(days, 0))
	for i := 0; i < days; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return build(s, Daily, dates)
}

// NewMonthEnd builds a grid of months month-end dates. The first point is the
// last day of the month containing start.
func NewMonthEnd(s *util.Sampler, start time.Time, months int) *Grid {
	start = util.Midnight(start)
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, 0, max(months, 0))
	for i := 0; i < months; i++ {
		dates = append(dates, util.MonthEnd(first.AddDate(0, i, 0)))
	}
	return build(s, MonthEnd, dates)
}

func build(s *util.Sampler, g Granularity, dates []time.Time) *Grid {
	grid := &Grid{
		granularity: g,
		points:      make([]models.DatePoint, len(dates)),
		index:       make(map[time.Time]int, len(dates)),
	}
	for i, d := range dates {
		_, week := d.ISOWeek()
		dow := util.WeekdayIndex(d)
		grid.points[i] = models.DatePoint{
			Date:          d,
			Year:          d.Year(),
			Quarter:       util.Quarter(d),
			Month:         int(d.Month()),
			Week:          week,
			DayOfWeek:     dow,
			IsHoliday:     s.Bernoulli(HolidayProbability),
			IsBusinessDay: dow < 5,
		}
		grid.index[d] = i
	}
	return grid
}

// Granularity returns the spacing of the grid.
func (g *Grid) Granularity() Granularity {
	return g.granularity
}

// Len returns the number of points.
func (g *Grid) Len() int {
	return len(g.points)
}

// Points returns the date points. Callers must not modify the slice.
func (g *Grid) Points() []models.DatePoint {
	return g.points
}

// Date returns the i-th date.
func (g *Grid) Date(i int) time.Time {
	return g.points[i].Date
}

// Dates returns a copy of the dates in order.
func (g *Grid) Dates() []time.Time {
	dates := make([]time.Time, len(g.points))
	for i, p := range g.points {
		dates[i] = p.Date
	}
	return dates
}

// Start returns the first date, or the zero time for an empty grid.
func (g *Grid) Start() time.Time {
	if len(g.points) == 0 {
		return time.Time{}
	}
	return g.points[0].Date
}

// End returns the last date, or the zero time for an empty grid.
func (g *Grid) End() time.Time {
	if len(g.points) == 0 {
		return time.Time{}
	}
	return g.points[len(g.points)-1].Date
}

// Index returns the position of date in the grid.
func (g *Grid) Index(date time.Time) (int, bool) {
	i, ok := g.index[util.Midnight(date)]
	return i, ok
}

// DaysSinceStart returns the number of calendar days between the grid start
// and the i-th date.
func (g *Grid) DaysSinceStart(i int) int {
	return util.DaysBetween(g.Start(), g.points[i].Date)
}

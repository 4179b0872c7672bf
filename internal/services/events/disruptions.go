package events

import (
	"time"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/timegrid"
	"github.com/sopgen/sopgen/internal/util"
)

// Disruption sampling parameters.
const (
	DisruptionRate        = 0.05
	DisruptionSeverityMin = 0.3
	DisruptionSeverityMax = 1.0
	DisruptionMaxDuration = 30
)

// Disruptions holds the supply disruptions of a run. They are reported and
// exported but do not feed the demand, inventory or production engines.
type Disruptions struct {
	events []models.DisruptionEvent
}

// GenerateDisruptions draws floor(0.05 * days) disruptions against suppliers
// S0000..S(numSuppliers-1).
func GenerateDisruptions(s *util.Sampler, grid *timegrid.Grid, numSuppliers int) *Disruptions {
	count := int(float64(grid.Len()) * DisruptionRate)
	if grid.Len() == 0 || numSuppliers <= 0 {
		count = 0
	}

	d := &Disruptions{events: make([]models.DisruptionEvent, 0, count)}
	for i := 0; i < count; i++ {
		date := grid.Date(s.Intn(grid.Len()))
		supplier := util.SequenceCode(SupplierPrefix, s.IntBetween(0, numSuppliers-1))
		d.events = append(d.events, models.DisruptionEvent{
			Date:           date,
			SupplierID:     supplier,
			Type:           util.Pick(s, models.DisruptionTypes),
			SeverityFactor: s.Uniform(DisruptionSeverityMin, DisruptionSeverityMax),
			DurationDays:   s.IntBetween(1, DisruptionMaxDuration),
		})
	}
	return d
}

// Events returns every disruption in draw order.
func (d *Disruptions) Events() []models.DisruptionEvent {
	return d.events
}

// Len returns the number of disruptions.
func (d *Disruptions) Len() int {
	return len(d.events)
}

// Active returns the disruptions in effect on date.
func (d *Disruptions) Active(date time.Time) []models.DisruptionEvent {
	var active []models.DisruptionEvent
	for _, e := range d.events {
		if e.ActiveOn(date) {
			active = append(active, e)
		}
	}
	return active
}

// PeakConcurrent returns the largest number of disruptions active on any
// single grid date.
func (d *Disruptions) PeakConcurrent(grid *timegrid.Grid) int {
	peak := 0
	for _, date := range grid.Dates() {
		if n := len(d.Active(date)); n > peak {
			peak = n
		}
	}
	return peak
}

// Package kpi aggregates the simulated tables by date and derives the daily
// supply-chain dashboard.
package kpi

import (
	"strings"
	"time"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/util"
)

// Source names a table the dashboard reads.
type Source string

const (
	SourceInventory  Source = "inventory"
	SourceProduction Source = "production"
	SourceDemand     Source = "demand"
)

// AlignmentStatus tells whether every source has data for a date.
type AlignmentStatus int

const (
	Aligned AlignmentStatus = iota
	Misaligned
)

// String returns the display name of the status.
func (s AlignmentStatus) String() string {
	if s == Aligned {
		return "aligned"
	}
	return "misaligned"
}

// Alignment is the result of looking up one date across all sources.
type Alignment struct {
	Status  AlignmentStatus
	Missing []Source
}

// OK reports whether all sources were present.
func (a Alignment) OK() bool {
	return a.Status == Aligned
}

// String lists the missing sources, or "aligned".
func (a Alignment) String() string {
	if a.OK() {
		return a.Status.String()
	}
	names := make([]string, len(a.Missing))
	for i, m := range a.Missing {
		names[i] = string(m)
	}
	return a.Status.String() + ": missing " + strings.Join(names, ", ")
}

// InventoryTotals sums inventory points of one date.
type InventoryTotals struct {
	QuantityOnHand int
	CarryingCost   float64
}

// ProductionTotals sums production records of one date.
type ProductionTotals struct {
	PlannedQuantity int
	TotalCost       float64
	ProductionHours float64
	SetupHours      float64
}

// Utilization returns production hours as a percentage of production plus
// setup hours, or 0 when no hours were planned.
func (p ProductionTotals) Utilization() float64 {
	total := p.ProductionHours + p.SetupHours
	if total <= 0 {
		return 0
	}
	return p.ProductionHours / total * 100
}

// DemandTotals sums forecast points of one date.
type DemandTotals struct {
	ForecastQuantity float64
}

// Snapshot is the by-date aggregate of every source.
type Snapshot struct {
	Date       time.Time
	Inventory  InventoryTotals
	Production ProductionTotals
	Demand     DemandTotals
}

// Aggregator indexes the per-date totals of each source.
type Aggregator struct {
	inventory  map[time.Time]*InventoryTotals
	production map[time.Time]*ProductionTotals
	demand     map[time.Time]*DemandTotals
}

// NewAggregator builds by-date totals of the given tables.
func NewAggregator(inventory []models.InventoryPoint, production []models.ProductionRecord, forecast []models.ForecastPoint) *Aggregator {
	a := &Aggregator{
		inventory:  make(map[time.Time]*InventoryTotals),
		production: make(map[time.Time]*ProductionTotals),
		demand:     make(map[time.Time]*DemandTotals),
	}

	for _, p := range inventory {
		t := a.inventory[p.Date]
		if t == nil {
			t = &InventoryTotals{}
			a.inventory[p.Date] = t
		}
		t.QuantityOnHand += p.QuantityOnHand
		t.CarryingCost += p.CarryingCost
	}

	for _, r := range production {
		t := a.production[r.Date]
		if t == nil {
			t = &ProductionTotals{}
			a.production[r.Date] = t
		}
		t.PlannedQuantity += r.PlannedQuantity
		t.TotalCost += r.TotalCost()
		t.ProductionHours += r.ProductionHours
		t.SetupHours += r.SetupHours
	}

	for _, f := range forecast {
		t := a.demand[f.Date]
		if t == nil {
			t = &DemandTotals{}
			a.demand[f.Date] = t
		}
		t.ForecastQuantity += f.ForecastQuantity
	}

	return a
}

// Lookup returns the totals of every source on date. When a source has no
// rows on date the alignment is Misaligned and lists it; the snapshot then
// holds zero totals for the missing sources.
func (a *Aggregator) Lookup(date time.Time) (Snapshot, Alignment) {
	date = util.Midnight(date)
	snap := Snapshot{Date: date}
	var missing []Source

	if t, ok := a.inventory[date]; ok {
		snap.Inventory = *t
	} else {
		missing = append(missing, SourceInventory)
	}
	if t, ok := a.production[date]; ok {
		snap.Production = *t
	} else {
		missing = append(missing, SourceProduction)
	}
	if t, ok := a.demand[date]; ok {
		snap.Demand = *t
	} else {
		missing = append(missing, SourceDemand)
	}

	if len(missing) > 0 {
		return snap, Alignment{Status: Misaligned, Missing: missing}
	}
	return snap, Alignment{Status: Aligned}
}

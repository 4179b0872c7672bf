// Package pipeline runs every generator in a fixed order from one seeded
// sampler and collects the results into a Dataset.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/services/demand"
	"github.com/sopgen/sopgen/internal/services/events"
	"github.com/sopgen/sopgen/internal/services/factors"
	"github.com/sopgen/sopgen/internal/services/inventory"
	"github.com/sopgen/sopgen/internal/services/kpi"
	"github.com/sopgen/sopgen/internal/services/masterdata"
	"github.com/sopgen/sopgen/internal/services/production"
	"github.com/sopgen/sopgen/internal/timegrid"
	"github.com/sopgen/sopgen/internal/util"
)

// Config configures a generation run.
type Config struct {
	Seed                int64
	StartDate           time.Time
	HorizonDays         int
	TimeDimensionMonths int
	Forecasts           int
	Counts              masterdata.Counts
}

// DefaultConfig returns the configuration of a standard run: one year of
// daily data from 2023-01-01 and a three-year monthly time dimension.
func DefaultConfig() Config {
	return Config{
		Seed:                42,
		StartDate:           time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		HorizonDays:         365,
		TimeDimensionMonths: 36,
		Forecasts:           1000,
		Counts:              masterdata.DefaultCounts(),
	}
}

// RunID returns the deterministic id of a run with this configuration.
func (c Config) RunID() string {
	return util.RunID(
		strconv.FormatInt(c.Seed, 10),
		util.FormatDate(c.StartDate),
		strconv.Itoa(c.HorizonDays),
		strconv.Itoa(c.TimeDimensionMonths),
		strconv.Itoa(c.Forecasts),
		fmt.Sprintf("%d/%d/%d/%d/%d/%d",
			c.Counts.Products, c.Counts.Locations, c.Counts.Customers,
			c.Counts.Suppliers, c.Counts.Resources, c.Counts.TransportLanes),
	)
}

// Dataset holds every table of a run. Nothing in it is modified after
// Generate returns.
type Dataset struct {
	RunID  string
	Config Config

	Master        *models.MasterData
	TimeDimension *timegrid.Grid
	Calendar      *timegrid.Grid
	Factors       *factors.Series
	Promotions    *events.Calendar
	Disruptions   *events.Disruptions
	Forecast      []models.ForecastPoint
	Lanes         []models.TransportLane
	Policies      []models.InventoryPolicy
	Inventory     []models.InventoryPoint
	Production    production.Result
	KPI           kpi.Result
}

// Option configures a Generator.
type Option func(*Generator)

// WithObserver registers o to receive stage events.
func WithObserver(o Observer) Option {
	return func(g *Generator) {
		g.observers = append(g.observers, o)
	}
}

// Generator produces a Dataset.
type Generator struct {
	cfg       Config
	observers []Observer
}

// NewGenerator creates a generator for cfg.
func NewGenerator(cfg Config, opts ...Option) *Generator {
	g := &Generator{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs every stage in order. The only error it returns is the
// context's, checked between stages.
func (g *Generator) Generate(ctx context.Context) (*Dataset, error) {
	cfg := g.cfg
	cfg.StartDate = util.Midnight(cfg.StartDate)

	ds := &Dataset{RunID: cfg.RunID(), Config: cfg}
	s := util.NewSampler(cfg.Seed)
	master := masterdata.NewGenerator(s)

	slog.Info("starting dataset generation",
		"run_id", ds.RunID,
		"seed", cfg.Seed,
		"start", util.FormatDate(cfg.StartDate),
		"days", cfg.HorizonDays,
		"forecasts", cfg.Forecasts,
	)
	began := time.Now()

	stages := []struct {
		stage Stage
		run   func() int
	}{
		{StageMasterData, func() int {
			ds.Master = master.Generate(cfg.Counts)
			m := ds.Master
			return len(m.Products) + len(m.Locations) + len(m.Customers) + len(m.Suppliers) + len(m.Resources)
		}},
		{StageTimeDimension, func() int {
			ds.TimeDimension = timegrid.NewMonthEnd(s, cfg.StartDate, cfg.TimeDimensionMonths)
			return ds.TimeDimension.Len()
		}},
		{StageCalendar, func() int {
			ds.Calendar = timegrid.NewDaily(s, cfg.StartDate, cfg.HorizonDays)
			return ds.Calendar.Len()
		}},
		{StageDisruptions, func() int {
			ds.Disruptions = events.GenerateDisruptions(s, ds.Calendar, len(ds.Master.Suppliers))
			return ds.Disruptions.Len()
		}},
		{StageFactors, func() int {
			ds.Factors = factors.Generate(s, ds.Calendar)
			return ds.Factors.Len()
		}},
		{StagePromotions, func() int {
			ds.Promotions = events.GeneratePromotions(s, ds.Calendar, len(ds.Master.Products))
			return ds.Promotions.Len()
		}},
		{StageDemand, func() int {
			engine := demand.NewEngine(ds.Calendar, ds.Factors, ds.Promotions)
			ds.Forecast = engine.Generate(s, ds.Master.Products, ds.Master.Locations, cfg.Forecasts)
			return len(ds.Forecast)
		}},
		{StageLanes, func() int {
			ds.Lanes = master.TransportLanes(cfg.Counts.TransportLanes, ds.Master.Locations)
			return len(ds.Lanes)
		}},
		{StageInventory, func() int {
			engine := inventory.NewEngine(ds.Calendar)
			ds.Policies, ds.Inventory = engine.Generate(s, ds.Master.Products, ds.Master.Locations)
			return len(ds.Inventory)
		}},
		{StageProduction, func() int {
			ds.Production = production.Plan(s, ds.Master.Products, ds.Master.Locations, ds.Forecast)
			return len(ds.Production.Records)
		}},
		{StageKPI, func() int {
			agg := kpi.NewAggregator(ds.Inventory, ds.Production.Records, ds.Forecast)
			ds.KPI = kpi.Generate(s, agg, ds.Calendar.Dates())
			return len(ds.KPI.Records)
		}},
	}

	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			g.notify(Event{Stage: st.stage, Status: StatusFailed, Err: err})
			return nil, fmt.Errorf("generating %s: %w", st.stage, err)
		}

		g.notify(Event{Stage: st.stage, Status: StatusStarted})
		t0 := time.Now()
		rows := st.run()
		elapsed := time.Since(t0)

		slog.Debug("stage complete", "stage", st.stage, "rows", rows, "elapsed", elapsed)
		g.notify(Event{Stage: st.stage, Status: StatusFinished, Rows: rows, Elapsed: elapsed})
	}

	slog.Info("dataset generation complete",
		"run_id", ds.RunID,
		"forecast_rows", len(ds.Forecast),
		"inventory_rows", len(ds.Inventory),
		"production_rows", len(ds.Production.Records),
		"kpi_rows", len(ds.KPI.Records),
		"kpi_dates_skipped", len(ds.KPI.Skipped),
		"plant_fallback", ds.Production.Assignment.Fallback,
		"elapsed", time.Since(began),
	)

	return ds, nil
}

func (g *Generator) notify(e Event) {
	for _, o := range g.observers {
		o.OnEvent(e)
	}
}

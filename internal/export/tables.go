package export

import (
	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/pipeline"
	"github.com/sopgen/sopgen/internal/timegrid"
	"github.com/sopgen/sopgen/internal/util"
)

// Table names, which are also the CSV file stems.
const (
	TableProduct           = "Product"
	TableLocation          = "Location"
	TableCustomer          = "Customer"
	TableSupplier          = "Supplier"
	TableResource          = "Resource"
	TableTimeDimension     = "TimeDimension"
	TableExternalFactors   = "ExternalFactors"
	TablePromotionCalendar = "PromotionCalendar"
	TableSupplyDisruptions = "SupplyDisruptions"
	TableDemandForecast    = "DemandForecast"
	TableTransportLane     = "TransportLane"
	TableInventory         = "Inventory"
	TableProductionPlan    = "ProductionPlan"
	TableKPIDashboard      = "KPI_Dashboard"
)

// Scales of the real columns.
const (
	scaleMoney  = 2
	scaleRatio  = 4
	scaleFactor = 6
)

// Tables describes every table of ds in export order. Parent tables come
// before the tables that reference them.
func Tables(ds *pipeline.Dataset) []Table {
	return []Table{
		productTable(ds.Master.Products),
		locationTable(ds.Master.Locations),
		customerTable(ds.Master.Customers),
		supplierTable(ds.Master.Suppliers),
		resourceTable(ds.Master.Resources),
		timeDimensionTable(ds.TimeDimension),
		externalFactorsTable(ds.Factors.Records()),
		promotionTable(ds.Promotions.Events()),
		disruptionTable(ds.Disruptions.Events()),
		forecastTable(ds.Forecast),
		laneTable(ds.Lanes),
		inventoryTable(ds.Inventory),
		productionTable(ds.Production.Records),
		kpiTable(ds.KPI.Records),
	}
}

func productTable(rows []models.Product) Table {
	return Table{
		Name: TableProduct,
		Columns: []Column{
			Text("product_id"),
			Text("product_name"),
			Text("product_category"),
			Text("product_lifecycle_stage"),
			Real("unit_cost", scaleMoney),
			Integer("lead_time_days"),
			Integer("min_order_quantity"),
			Integer("pack_size"),
		},
		Len: len(rows),
		Row: func(i int) []any {
			p := rows[i]
			return []any{p.ID, p.Name, string(p.Category), string(p.LifecycleStage),
				p.UnitCost, p.LeadTimeDays, p.MinOrderQuantity, p.PackSize}
		},
	}
}

func locationTable(rows []models.Location) Table {
	return Table{
		Name: TableLocation,
		Columns: []Column{
			Text("location_id"),
			Text("location_name"),
			Text("location_type"),
			Integer("storage_capacity"),
			Integer("handling_capacity"),
			Real("operating_cost", scaleMoney),
		},
		Len: len(rows),
		Row: func(i int) []any {
			l := rows[i]
			return []any{l.ID, l.Name, string(l.Type), l.StorageCapacity, l.HandlingCapacity, l.OperatingCost}
		},
	}
}

func customerTable(rows []models.Customer) Table {
	return Table{
		Name: TableCustomer,
		Columns: []Column{
			Text("customer_id"),
			Text("customer_name"),
			Text("segment"),
			Text("region"),
			Real("credit_score", scaleMoney),
			Integer("payment_terms"),
		},
		Len: len(rows),
		Row: func(i int) []any {
			c := rows[i]
			return []any{c.ID, c.Name, string(c.Segment), c.Region, c.CreditScore, c.PaymentTerms}
		},
	}
}

func supplierTable(rows []models.Supplier) Table {
	return Table{
		Name: TableSupplier,
		Columns: []Column{
			Text("supplier_id"),
			Text("supplier_name"),
			Real("reliability_score", scaleMoney),
			Integer("capacity"),
			Real("lead_time_variability", scaleMoney),
		},
		Len: len(rows),
		Row: func(i int) []any {
			s := rows[i]
			return []any{s.ID, s.Name, s.ReliabilityScore, s.Capacity, s.LeadTimeVariability}
		},
	}
}

func resourceTable(rows []models.Resource) Table {
	return Table{
		Name: TableResource,
		Columns: []Column{
			Text("resource_id"),
			Text("resource_type"),
			Integer("capacity"),
			Real("efficiency", scaleMoney),
			Real("cost_per_hour", scaleMoney),
		},
		Len: len(rows),
		Row: func(i int) []any {
			r := rows[i]
			return []any{r.ID, string(r.Type), r.Capacity, r.Efficiency, r.CostPerHour}
		},
	}
}

func timeDimensionTable(grid *timegrid.Grid) Table {
	rows := grid.Points()
	return Table{
		Name: TableTimeDimension,
		Columns: []Column{
			Date("date_id"),
			Integer("year"),
			Integer("quarter"),
			Integer("month"),
			Integer("week"),
			Integer("day_of_week"),
			Bool("is_holiday"),
			Bool("is_business_day"),
		},
		Len: len(rows),
		Row: func(i int) []any {
			p := rows[i]
			return []any{p.Date, p.Year, p.Quarter, p.Month, p.Week, p.DayOfWeek, p.IsHoliday, p.IsBusinessDay}
		},
	}
}

func externalFactorsTable(rows []models.ExogenousFactors) Table {
	return Table{
		Name: TableExternalFactors,
		Columns: []Column{
			Date("date"),
			Real("gdp_factor", scaleFactor),
			Real("inflation_factor", scaleFactor),
			Real("seasonal_factor", scaleFactor),
			Real("market_event_factor", scaleFactor),
			Real("weather_impact_factor", scaleFactor),
		},
		Len: len(rows),
		Row: func(i int) []any {
			f := rows[i]
			return []any{f.Date, f.GDP, f.Inflation, f.Seasonal, f.MarketEvent, f.WeatherImpact}
		},
	}
}

func promotionTable(rows []models.PromotionEvent) Table {
	return Table{
		Name: TablePromotionCalendar,
		Columns: []Column{
			Date("date"),
			Text("product_id"),
			Text("promotion_type"),
			Real("discount_factor", scaleRatio),
			Integer("duration_days"),
		},
		Len: len(rows),
		Row: func(i int) []any {
			p := rows[i]
			return []any{p.Date, p.ProductID, string(p.Type), p.DiscountFactor, p.DurationDays}
		},
	}
}

func disruptionTable(rows []models.DisruptionEvent) Table {
	return Table{
		Name: TableSupplyDisruptions,
		Columns: []Column{
			Date("date"),
			Text("supplier_id"),
			Text("disruption_type"),
			Real("severity_factor", scaleRatio),
			Integer("duration_days"),
		},
		Len: len(rows),
		Row: func(i int) []any {
			d := rows[i]
			return []any{d.Date, d.SupplierID, string(d.Type), d.SeverityFactor, d.DurationDays}
		},
	}
}

func forecastTable(rows []models.ForecastPoint) Table {
	return Table{
		Name: TableDemandForecast,
		Columns: []Column{
			Date("date"),
			Text("product_id"),
			Text("location_id"),
			Real("forecast_quantity", scaleMoney),
			Real("confidence_level", scaleRatio),
		},
		Len: len(rows),
		Row: func(i int) []any {
			f := rows[i]
			return []any{f.Date, f.ProductID, f.LocationID, f.ForecastQuantity, f.ConfidenceLevel}
		},
	}
}

func laneTable(rows []models.TransportLane) Table {
	return Table{
		Name: TableTransportLane,
		Columns: []Column{
			Text("lane_id"),
			Text("origin_id"),
			Text("destination_id"),
			Text("transport_mode"),
			Integer("transit_time"),
			Real("cost_per_unit", scaleMoney),
			Integer("capacity"),
			Real("reliability", scaleMoney),
		},
		Len: len(rows),
		Row: func(i int) []any {
			l := rows[i]
			return []any{l.ID, l.OriginID, l.DestinationID, string(l.Mode), l.TransitTime, l.CostPerUnit, l.Capacity, l.Reliability}
		},
	}
}

func inventoryTable(rows []models.InventoryPoint) Table {
	return Table{
		Name: TableInventory,
		Columns: []Column{
			Date("date"),
			Text("product_id"),
			Text("location_id"),
			Integer("quantity_on_hand"),
			Integer("safety_stock_level"),
			Integer("reorder_point"),
			Integer("economic_order_quantity"),
			Real("inventory_turns", scaleMoney),
			Real("days_of_supply", scaleMoney),
			Real("carrying_cost", scaleMoney),
			Real("stockout_probability", scaleRatio),
			Real("fill_rate", scaleRatio),
		},
		Len: len(rows),
		Row: func(i int) []any {
			p := rows[i]
			return []any{p.Date, p.ProductID, p.LocationID, p.QuantityOnHand, p.SafetyStockLevel,
				p.ReorderPoint, p.EOQ, p.InventoryTurns, p.DaysOfSupply, p.CarryingCost,
				p.StockoutProbability, p.FillRate}
		},
	}
}

func productionTable(rows []models.ProductionRecord) Table {
	return Table{
		Name: TableProductionPlan,
		Columns: []Column{
			Date("date"),
			Text("product_id"),
			Text("location_id"),
			Integer("planned_quantity"),
			Real("production_hours", scaleMoney),
			Real("setup_hours", scaleMoney),
			Real("resource_efficiency", scaleMoney),
			Real("production_cost", scaleMoney),
			Real("material_cost", scaleMoney),
			Real("total_cost", scaleMoney),
			JSON("resource_requirements"),
		},
		Len: len(rows),
		Row: func(i int) []any {
			r := rows[i]
			return []any{r.Date, r.ProductID, r.LocationID, r.PlannedQuantity, r.ProductionHours,
				r.SetupHours, r.ResourceEfficiency, r.ProductionCost, r.MaterialCost, r.TotalCost(),
				roundRequirements(r.ResourceRequirements)}
		},
	}
}

func kpiTable(rows []models.KPIRecord) Table {
	return Table{
		Name: TableKPIDashboard,
		Columns: []Column{
			Date("date"),
			Text("metric_name"),
			Real("metric_value", scaleMoney),
			Real("target_value", scaleMoney),
			Real("variance_percentage", scaleMoney),
			Text("dimension_type"),
			Text("dimension_id"),
		},
		Len: len(rows),
		Row: func(i int) []any {
			k := rows[i]
			value := util.Round(k.MetricValue, scaleMoney)
			target := util.Round(k.TargetValue, scaleMoney)
			return []any{k.Date, k.MetricName, value, target, models.Variance(value, target),
				k.DimensionType, k.DimensionID}
		},
	}
}

// roundRequirements returns a copy of req with every quantity rounded to
// two decimals for the JSON column.
func roundRequirements(req models.ResourceRequirements) models.ResourceRequirements {
	out := models.ResourceRequirements{
		LaborHours:        util.Round(req.LaborHours, scaleMoney),
		MachineHours:      util.Round(req.MachineHours, scaleMoney),
		SetupHours:        util.Round(req.SetupHours, scaleMoney),
		MaterialsRequired: make([]models.MaterialLine, len(req.MaterialsRequired)),
	}
	for i, m := range req.MaterialsRequired {
		out.MaterialsRequired[i] = models.MaterialLine{
			MaterialID: m.MaterialID,
			Quantity:   util.Round(m.Quantity, scaleMoney),
		}
	}
	return out
}

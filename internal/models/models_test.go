package models

import (
	"math"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPromotionEvent_ActiveOn(t *testing.T) {
	d0 := day(2023, 3, 10)
	promo := PromotionEvent{Date: d0, ProductID: "P0001", DiscountFactor: 0.2, DurationDays: 5}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Day before start", d0.AddDate(0, 0, -1), false},
		{"Start day", d0, true},
		{"Middle", d0.AddDate(0, 0, 2), true},
		{"Last day (start + duration)", d0.AddDate(0, 0, 5), true},
		{"Day after end", d0.AddDate(0, 0, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := promo.ActiveOn(tt.date); got != tt.want {
				t.Errorf("PromotionEvent.ActiveOn(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestDisruptionEvent_ActiveOn(t *testing.T) {
	d0 := day(2023, 12, 30)
	event := DisruptionEvent{Date: d0, SupplierID: "S0003", SeverityFactor: 0.5, DurationDays: 3}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Before", day(2023, 12, 29), false},
		{"Start", d0, true},
		{"Crosses year end", day(2024, 1, 2), true},
		{"After", day(2024, 1, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := event.ActiveOn(tt.date); got != tt.want {
				t.Errorf("DisruptionEvent.ActiveOn() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		target float64
		want   float64
	}{
		{"Above target", 110, 100, 10},
		{"Below target", 85, 100, -15},
		{"On target", 95, 95, 0},
		{"Zero target", 42, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variance(tt.value, tt.target)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Variance() = %v, want %v", got, tt.want)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("Variance() = %v is not finite", got)
			}
		})
	}
}

func TestKPIRecord_VariancePercentage(t *testing.T) {
	k := KPIRecord{MetricValue: 90, TargetValue: 95}
	want := (90.0 - 95.0) / 95.0 * 100
	if got := k.VariancePercentage(); math.Abs(got-want) > 1e-9 {
		t.Errorf("KPIRecord.VariancePercentage() = %v, want %v", got, want)
	}
}

func TestExogenousFactors_Impact(t *testing.T) {
	f := ExogenousFactors{GDP: 1.1, Inflation: 1.02, Seasonal: 0.9, MarketEvent: 1.2, WeatherImpact: 1.0}
	want := 1.1 * 1.02 * 0.9 * 1.2 * 1.0
	if got := f.Impact(); math.Abs(got-want) > 1e-12 {
		t.Errorf("ExogenousFactors.Impact() = %v, want %v", got, want)
	}

	neutral := ExogenousFactors{GDP: 1, Inflation: 1, Seasonal: 1, MarketEvent: 1, WeatherImpact: 1}
	if got := neutral.Impact(); got != 1 {
		t.Errorf("neutral Impact() = %v, want 1", got)
	}
}

func TestMasterData_Plants(t *testing.T) {
	md := &MasterData{
		Locations: []Location{
			{ID: "L0000", Type: LocationTypeDC},
			{ID: "L0001", Type: LocationTypePlant},
			{ID: "L0002", Type: LocationTypeStore},
			{ID: "L0003", Type: LocationTypePlant},
		},
	}

	plants := md.Plants()
	if len(plants) != 2 {
		t.Fatalf("Plants() returned %d locations, want 2", len(plants))
	}
	if plants[0].ID != "L0001" || plants[1].ID != "L0003" {
		t.Errorf("Plants() = %v, want L0001 and L0003 in order", plants)
	}
}

func TestProductionRecord_TotalCost(t *testing.T) {
	r := ProductionRecord{ProductionCost: 120.5, MaterialCost: 79.5}
	if got := r.TotalCost(); got != 200 {
		t.Errorf("ProductionRecord.TotalCost() = %v, want 200", got)
	}
}

func TestInventoryPolicy_StockoutProbability(t *testing.T) {
	p := InventoryPolicy{ServiceLevel: 0.95}
	if got := p.StockoutProbability(); math.Abs(got-0.05) > 1e-12 {
		t.Errorf("StockoutProbability() = %v, want 0.05", got)
	}
}

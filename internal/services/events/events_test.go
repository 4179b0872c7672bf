package events

import (
	"strings"
	"testing"
	"time"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/timegrid"
	"github.com/sopgen/sopgen/internal/util"
)

var start = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return start.AddDate(0, 0, n)
}

func TestCalendar_Boundaries(t *testing.T) {
	d0 := day(10)
	cal := NewCalendar([]models.PromotionEvent{
		{Date: d0, ProductID: "P0001", Type: models.PromotionBOGO, DiscountFactor: 0.3, DurationDays: 5},
	})

	tests := []struct {
		name       string
		date       time.Time
		wantUplift float64
	}{
		{"day before start", d0.AddDate(0, 0, -1), 1.0},
		{"start day", d0, 1.3},
		{"last day", d0.AddDate(0, 0, 5), 1.3},
		{"day after end", d0.AddDate(0, 0, 6), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.Uplift("P0001", tt.date); got != tt.wantUplift {
				t.Errorf("Uplift() = %v, want %v", got, tt.wantUplift)
			}
		})
	}

	if got := cal.Uplift("P0002", d0); got != 1.0 {
		t.Errorf("Uplift() for product without promotions = %v, want 1", got)
	}
}

func TestCalendar_OverlappingUpliftIsMean(t *testing.T) {
	cal := NewCalendar([]models.PromotionEvent{
		{Date: day(0), ProductID: "P0000", DiscountFactor: 0.2, DurationDays: 10},
		{Date: day(5), ProductID: "P0000", DiscountFactor: 0.4, DurationDays: 10},
	})

	if got := len(cal.Active("P0000", day(7))); got != 2 {
		t.Fatalf("Active() returned %d events, want 2", got)
	}
	got := cal.Uplift("P0000", day(7))
	if diff := got - 1.3; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("Uplift() = %v, want 1.3", got)
	}
	if got := cal.Uplift("P0000", day(2)); got != 1.2 {
		t.Errorf("Uplift() = %v, want 1.2", got)
	}
}

func TestGeneratePromotions(t *testing.T) {
	s := util.NewSampler(42)
	grid := timegrid.NewDaily(s, start, 365)
	cal := GeneratePromotions(s, grid, 100)

	if cal.Len() != 73 {
		t.Fatalf("Len() = %d, want 73", cal.Len())
	}

	for _, e := range cal.Events() {
		if _, ok := grid.Index(e.Date); !ok {
			t.Errorf("promotion date %s not on grid", util.FormatDate(e.Date))
		}
		if !strings.HasPrefix(e.ProductID, "P") || len(e.ProductID) != 5 {
			t.Errorf("unexpected product id %q", e.ProductID)
		}
		if e.ProductID > "P0099" {
			t.Errorf("product id %q out of range", e.ProductID)
		}
		if e.DiscountFactor < PromotionDiscountMin || e.DiscountFactor >= PromotionDiscountMax {
			t.Errorf("discount %v out of range", e.DiscountFactor)
		}
		if e.DurationDays < 1 || e.DurationDays > PromotionMaxDuration {
			t.Errorf("duration %d out of range", e.DurationDays)
		}
	}
}

func TestGeneratePromotions_Empty(t *testing.T) {
	s := util.NewSampler(1)
	tests := []struct {
		name     string
		days     int
		products int
	}{
		{"no days", 0, 10},
		{"short horizon", 4, 10},
		{"no products", 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := GeneratePromotions(s, timegrid.NewDaily(s, start, tt.days), tt.products)
			if cal.Len() != 0 {
				t.Errorf("Len() = %d, want 0", cal.Len())
			}
		})
	}
}

func TestGenerateDisruptions(t *testing.T) {
	s := util.NewSampler(42)
	grid := timegrid.NewDaily(s, start, 365)
	d := GenerateDisruptions(s, grid, 30)

	if d.Len() != 18 {
		t.Fatalf("Len() = %d, want 18", d.Len())
	}
	for _, e := range d.Events() {
		if e.SeverityFactor < DisruptionSeverityMin || e.SeverityFactor > DisruptionSeverityMax {
			t.Errorf("severity %v out of range", e.SeverityFactor)
		}
		if e.DurationDays < 1 || e.DurationDays > DisruptionMaxDuration {
			t.Errorf("duration %d out of range", e.DurationDays)
		}
		if e.SupplierID > "S0029" {
			t.Errorf("supplier id %q out of range", e.SupplierID)
		}
	}

	if d.PeakConcurrent(grid) < 1 {
		t.Errorf("PeakConcurrent() = 0 with %d disruptions", d.Len())
	}
}

func TestDisruptions_Active(t *testing.T) {
	d := &Disruptions{events: []models.DisruptionEvent{
		{Date: time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC), SupplierID: "S0000", DurationDays: 3},
		{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), SupplierID: "S0001", DurationDays: 1},
	}}

	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2023, 12, 29, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		if got := len(d.Active(tt.date)); got != tt.want {
			t.Errorf("Active(%s) returned %d events, want %d", util.FormatDate(tt.date), got, tt.want)
		}
	}
}

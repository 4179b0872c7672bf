package models

import (
	"time"
)

// InventoryPolicy is the replenishment policy derived once per product and location.
type InventoryPolicy struct {
	ProductID         string
	LocationID        string
	UnitCost          float64
	BaseStock         int
	DemandVariability float64
	LeadTimeDays      int
	ServiceLevel      float64
	ZScore            float64
	SafetyStock       int
	AvgDailyDemand    float64
	ReorderPoint      int
	AnnualDemand      float64
	OrderingCost      float64
	HoldingCostRate   float64
	HoldingCost       float64
	EOQ               int
}

// StockoutProbability returns the complement of the service level.
func (p InventoryPolicy) StockoutProbability() float64 {
	return 1 - p.ServiceLevel
}

// InventoryPoint is one day of on-hand inventory for a product at a location.
type InventoryPoint struct {
	Date                time.Time
	ProductID           string
	LocationID          string
	QuantityOnHand      int
	SafetyStockLevel    int
	ReorderPoint        int
	EOQ                 int
	InventoryTurns      float64
	DaysOfSupply        float64
	CarryingCost        float64
	StockoutProbability float64
	FillRate            float64
}

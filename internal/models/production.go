package models

import (
	"time"
)

// MaterialLine is one material needed for a production run.
type MaterialLine struct {
	MaterialID string  `json:"material_id"`
	Quantity   float64 `json:"quantity"`
}

// ResourceRequirements is the nested resource breakdown of a production record.
type ResourceRequirements struct {
	LaborHours        float64        `json:"labor_hours"`
	MachineHours      float64        `json:"machine_hours"`
	SetupHours        float64        `json:"setup_hours"`
	MaterialsRequired []MaterialLine `json:"materials_required"`
}

// ProductionRecord is the production plan for one product on one day.
type ProductionRecord struct {
	Date                 time.Time
	ProductID            string
	LocationID           string
	PlannedQuantity      int
	ProductionHours      float64
	SetupHours           float64
	ResourceEfficiency   float64
	ProductionCost       float64
	MaterialCost         float64
	ResourceRequirements ResourceRequirements
}

// TotalCost returns production plus material cost.
func (r ProductionRecord) TotalCost() float64 {
	return r.ProductionCost + r.MaterialCost
}

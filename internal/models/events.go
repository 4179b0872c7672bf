package models

import (
	"time"
)

// PromotionType is the commercial mechanic of a promotion.
type PromotionType string

const (
	PromotionPriceDiscount PromotionType = "Price Discount"
	PromotionBOGO          PromotionType = "BOGO"
	PromotionBundleDeal    PromotionType = "Bundle Deal"
	PromotionFlashSale     PromotionType = "Flash Sale"
)

// PromotionTypes lists every promotion type in sampling order.
var PromotionTypes = []PromotionType{PromotionPriceDiscount, PromotionBOGO, PromotionBundleDeal, PromotionFlashSale}

// PromotionEvent lifts demand for one product over a date range.
type PromotionEvent struct {
	Date           time.Time
	ProductID      string
	Type           PromotionType
	DiscountFactor float64
	DurationDays   int
}

// EndDate returns the last day on which the promotion is active.
func (p PromotionEvent) EndDate() time.Time {
	return p.Date.AddDate(0, 0, p.DurationDays)
}

// ActiveOn reports whether date falls in [Date, Date+DurationDays], both ends inclusive.
func (p PromotionEvent) ActiveOn(date time.Time) bool {
	return activeBetween(p.Date, p.EndDate(), date)
}

// DisruptionType is the cause of a supply disruption.
type DisruptionType string

const (
	DisruptionPortDelay       DisruptionType = "Port Delay"
	DisruptionProductionIssue DisruptionType = "Production Issue"
	DisruptionNaturalDisaster DisruptionType = "Natural Disaster"
	DisruptionLaborStrike     DisruptionType = "Labor Strike"
)

// DisruptionTypes lists every disruption type in sampling order.
var DisruptionTypes = []DisruptionType{
	DisruptionPortDelay, DisruptionProductionIssue, DisruptionNaturalDisaster, DisruptionLaborStrike,
}

// DisruptionEvent reduces a supplier's capability over a date range.
type DisruptionEvent struct {
	Date           time.Time
	SupplierID     string
	Type           DisruptionType
	SeverityFactor float64
	DurationDays   int
}

// EndDate returns the last day on which the disruption is active.
func (d DisruptionEvent) EndDate() time.Time {
	return d.Date.AddDate(0, 0, d.DurationDays)
}

// ActiveOn reports whether date falls in [Date, Date+DurationDays], both ends inclusive.
func (d DisruptionEvent) ActiveOn(date time.Time) bool {
	return activeBetween(d.Date, d.EndDate(), date)
}

func activeBetween(start, end, date time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

// Package events generates the promotion and supply-disruption calendars.
package events

import (
	"sort"
	"time"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/timegrid"
	"github.com/sopgen/sopgen/internal/util"
)

// Promotion sampling parameters.
const (
	PromotionRate        = 0.2
	PromotionDiscountMin = 0.1
	PromotionDiscountMax = 0.5
	PromotionMaxDuration = 14
)

// ProductPrefix and SupplierPrefix build the entity ids events refer to.
const (
	ProductPrefix  = "P"
	SupplierPrefix = "S"
)

// Calendar holds the promotion events of a run indexed by product.
type Calendar struct {
	events    []models.PromotionEvent
	byProduct map[string][]models.PromotionEvent
}

// GeneratePromotions draws floor(0.2 * days) promotions. Dates are drawn
// uniformly with replacement from the grid and products uniformly from
// P0000..P(numProducts-1).
func GeneratePromotions(s *util.Sampler, grid *timegrid.Grid, numProducts int) *Calendar {
	count := int(float64(grid.Len()) * PromotionRate)
	if grid.Len() == 0 || numProducts <= 0 {
		count = 0
	}

	events := make([]models.PromotionEvent, 0, count)
	for i := 0; i < count; i++ {
		date := grid.Date(s.Intn(grid.Len()))
		product := util.SequenceCode(ProductPrefix, s.IntBetween(0, numProducts-1))
		events = append(events, models.PromotionEvent{
			Date:           date,
			ProductID:      product,
			Type:           util.Pick(s, models.PromotionTypes),
			DiscountFactor: s.Uniform(PromotionDiscountMin, PromotionDiscountMax),
			DurationDays:   s.IntBetween(1, PromotionMaxDuration),
		})
	}
	return NewCalendar(events)
}

// NewCalendar indexes events by product. Events keep their draw order.
func NewCalendar(events []models.PromotionEvent) *Calendar {
	c := &Calendar{
		events:    events,
		byProduct: make(map[string][]models.PromotionEvent),
	}
	for _, e := range events {
		c.byProduct[e.ProductID] = append(c.byProduct[e.ProductID], e)
	}
	return c
}

// Events returns every promotion in draw order.
func (c *Calendar) Events() []models.PromotionEvent {
	return c.events
}

// Len returns the number of promotions.
func (c *Calendar) Len() int {
	return len(c.events)
}

// Active returns the promotions of productID that are running on date.
func (c *Calendar) Active(productID string, date time.Time) []models.PromotionEvent {
	var active []models.PromotionEvent
	for _, e := range c.byProduct[productID] {
		if e.ActiveOn(date) {
			active = append(active, e)
		}
	}
	return active
}

// Uplift returns 1 plus the mean discount of the active promotions of
// productID on date, or 1 when none is running.
func (c *Calendar) Uplift(productID string, date time.Time) float64 {
	active := c.Active(productID, date)
	if len(active) == 0 {
		return 1
	}
	var sum float64
	for _, e := range active {
		sum += e.DiscountFactor
	}
	return 1 + sum/float64(len(active))
}

// Products returns the ids of products with at least one promotion, sorted.
func (c *Calendar) Products() []string {
	ids := make([]string, 0, len(c.byProduct))
	for id := range c.byProduct {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

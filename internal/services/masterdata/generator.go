// Package masterdata samples the master tables of the supply network:
// products, locations, customers, suppliers, resources and transport lanes.
package masterdata

import (
	"fmt"
	"log/slog"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/util"
)

// Id prefixes of the master tables.
const (
	ProductPrefix  = "P"
	LocationPrefix = "L"
	CustomerPrefix = "C"
	SupplierPrefix = "S"
	ResourcePrefix = "R"
	LanePrefix     = "TL"
)

// Counts sets how many rows each master table gets.
type Counts struct {
	Products       int
	Locations      int
	Customers      int
	Suppliers      int
	Resources      int
	TransportLanes int
}

// DefaultCounts returns the table sizes of a standard run.
func DefaultCounts() Counts {
	return Counts{
		Products:       100,
		Locations:      20,
		Customers:      50,
		Suppliers:      30,
		Resources:      40,
		TransportLanes: 50,
	}
}

// Generator samples master data from a shared sampler.
type Generator struct {
	s *util.Sampler
}

// NewGenerator creates a master data generator drawing from s.
func NewGenerator(s *util.Sampler) *Generator {
	return &Generator{s: s}
}

// Generate samples every master table except transport lanes, which are
// drawn later in the run.
func (g *Generator) Generate(c Counts) *models.MasterData {
	md := &models.MasterData{
		Products:  g.Products(c.Products),
		Locations: g.Locations(c.Locations),
		Customers: g.Customers(c.Customers),
		Suppliers: g.Suppliers(c.Suppliers),
		Resources: g.Resources(c.Resources),
	}
	slog.Debug("generated master data",
		"products", len(md.Products),
		"locations", len(md.Locations),
		"customers", len(md.Customers),
		"suppliers", len(md.Suppliers),
		"resources", len(md.Resources),
	)
	return md
}

// Products samples n products.
func (g *Generator) Products(n int) []models.Product {
	out := make([]models.Product, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, models.Product{
			ID:               util.SequenceCode(ProductPrefix, i),
			Name:             g.productName(),
			Category:         util.Pick(g.s, models.ProductCategories),
			LifecycleStage:   util.Pick(g.s, models.LifecycleStages),
			UnitCost:         util.Round(g.s.Uniform(10, 1000), 2),
			LeadTimeDays:     g.s.IntBetween(1, 30),
			MinOrderQuantity: g.s.IntBetween(10, 100),
			PackSize:         util.Pick(g.s, models.PackSizes),
		})
	}
	return out
}

// Locations samples n locations.
func (g *Generator) Locations(n int) []models.Location {
	out := make([]models.Location, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, models.Location{
			ID:               util.SequenceCode(LocationPrefix, i),
			Name:             util.Pick(g.s, Cities),
			Type:             util.Pick(g.s, models.LocationTypes),
			StorageCapacity:  g.s.IntBetween(1000, 10000),
			HandlingCapacity: g.s.IntBetween(100, 1000),
			OperatingCost:    util.Round(g.s.Uniform(1000, 5000), 2),
		})
	}
	return out
}

// Customers samples n customers.
func (g *Generator) Customers(n int) []models.Customer {
	out := make([]models.Customer, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, models.Customer{
			ID:           util.SequenceCode(CustomerPrefix, i),
			Name:         g.companyName(),
			Segment:      util.Pick(g.s, models.CustomerSegments),
			Region:       util.Pick(g.s, models.Regions),
			CreditScore:  util.Round(g.s.Uniform(300, 850), 2),
			PaymentTerms: util.Pick(g.s, models.PaymentTerms),
		})
	}
	return out
}

// Suppliers samples n suppliers.
func (g *Generator) Suppliers(n int) []models.Supplier {
	out := make([]models.Supplier, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, models.Supplier{
			ID:                  util.SequenceCode(SupplierPrefix, i),
			Name:                g.companyName(),
			ReliabilityScore:    util.Round(g.s.Uniform(0.6, 1.0), 2),
			Capacity:            g.s.IntBetween(1000, 5000),
			LeadTimeVariability: util.Round(g.s.Uniform(0.1, 0.5), 2),
		})
	}
	return out
}

// Resources samples n production resources.
func (g *Generator) Resources(n int) []models.Resource {
	out := make([]models.Resource, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, models.Resource{
			ID:          util.SequenceCode(ResourcePrefix, i),
			Type:        util.Pick(g.s, models.ResourceTypes),
			Capacity:    g.s.IntBetween(100, 1000),
			Efficiency:  util.Round(g.s.Uniform(0.7, 1.0), 2),
			CostPerHour: util.Round(g.s.Uniform(50, 200), 2),
		})
	}
	return out
}

// TransportLanes samples n lanes between distinct locations. Each lane draws
// two location indices without replacement. With fewer than two locations no
// lane can be formed and none are returned.
func (g *Generator) TransportLanes(n int, locations []models.Location) []models.TransportLane {
	if len(locations) < 2 {
		if n > 0 {
			slog.Warn("not enough locations for transport lanes", "locations", len(locations))
		}
		return nil
	}

	out := make([]models.TransportLane, 0, max(n, 0))
	for i := 0; i < n; i++ {
		pair := g.s.Distinct(len(locations), 2)
		origin, destination := locations[pair[0]], locations[pair[1]]
		out = append(out, models.TransportLane{
			ID:            util.SequenceCode(LanePrefix, i),
			OriginID:      origin.ID,
			DestinationID: destination.ID,
			Mode:          util.Pick(g.s, models.TransportModes),
			TransitTime:   g.s.IntBetween(1, 10),
			CostPerUnit:   util.Round(g.s.Uniform(5, 50), 2),
			Capacity:      g.s.IntBetween(1000, 5000),
			Reliability:   util.Round(g.s.Uniform(0.8, 1.0), 2),
		})
	}
	return out
}

func (g *Generator) productName() string {
	adjective := util.Pick(g.s, ProductAdjectives)
	material := util.Pick(g.s, ProductMaterials)
	noun := util.Pick(g.s, ProductNouns)
	return fmt.Sprintf("%s %s %s", adjective, material, noun)
}

func (g *Generator) companyName() string {
	switch util.Pick(g.s, CompanyFormats) {
	case CompanyHyphenated:
		return fmt.Sprintf("%s-%s", util.Pick(g.s, Surnames), util.Pick(g.s, Surnames))
	case CompanyTriple:
		return fmt.Sprintf("%s, %s and %s",
			util.Pick(g.s, Surnames), util.Pick(g.s, Surnames), util.Pick(g.s, Surnames))
	default:
		return fmt.Sprintf("%s %s", util.Pick(g.s, Surnames), util.Pick(g.s, CompanySuffixes))
	}
}

// Package models defines the rows of every table in the generated dataset.
package models

// ProductCategory classifies a product.
type ProductCategory string

const (
	CategoryElectronics ProductCategory = "Electronics"
	CategoryClothing    ProductCategory = "Clothing"
	CategoryFood        ProductCategory = "Food"
	CategoryFurniture   ProductCategory = "Furniture"
	CategoryAutomotive  ProductCategory = "Automotive"
)

// ProductCategories lists every category in sampling order.
var ProductCategories = []ProductCategory{
	CategoryElectronics, CategoryClothing, CategoryFood, CategoryFurniture, CategoryAutomotive,
}

// LifecycleStage is the position of a product in its market lifecycle.
type LifecycleStage string

const (
	LifecycleNew     LifecycleStage = "New"
	LifecycleGrowth  LifecycleStage = "Growth"
	LifecycleMature  LifecycleStage = "Mature"
	LifecycleDecline LifecycleStage = "Decline"
)

// LifecycleStages lists every stage in sampling order.
var LifecycleStages = []LifecycleStage{LifecycleNew, LifecycleGrowth, LifecycleMature, LifecycleDecline}

// PackSizes are the allowed units per pack.
var PackSizes = []int{1, 6, 12, 24, 48}

// Product is a sellable item.
type Product struct {
	ID               string
	Name             string
	Category         ProductCategory
	LifecycleStage   LifecycleStage
	UnitCost         float64
	LeadTimeDays     int
	MinOrderQuantity int
	PackSize         int
}

// LocationType identifies the role of a location in the network.
type LocationType string

const (
	LocationTypeDC       LocationType = "DC"
	LocationTypeStore    LocationType = "Store"
	LocationTypePlant    LocationType = "Plant"
	LocationTypeSupplier LocationType = "Supplier"
)

// LocationTypes lists every location type in sampling order.
var LocationTypes = []LocationType{LocationTypeDC, LocationTypeStore, LocationTypePlant, LocationTypeSupplier}

// Location is a node of the supply network.
type Location struct {
	ID               string
	Name             string
	Type             LocationType
	StorageCapacity  int
	HandlingCapacity int
	OperatingCost    float64
}

// IsPlant returns true if the location manufactures products.
func (l Location) IsPlant() bool {
	return l.Type == LocationTypePlant
}

// CustomerSegment groups customers by channel.
type CustomerSegment string

const (
	SegmentRetail    CustomerSegment = "Retail"
	SegmentWholesale CustomerSegment = "Wholesale"
	SegmentOnline    CustomerSegment = "Online"
	SegmentDirect    CustomerSegment = "Direct"
)

// CustomerSegments lists every segment in sampling order.
var CustomerSegments = []CustomerSegment{SegmentRetail, SegmentWholesale, SegmentOnline, SegmentDirect}

// Regions are the sales regions a customer can belong to.
var Regions = []string{"North", "South", "East", "West", "Central"}

// PaymentTerms are the allowed payment terms in days.
var PaymentTerms = []int{30, 45, 60, 90}

// Customer buys products.
type Customer struct {
	ID           string
	Name         string
	Segment      CustomerSegment
	Region       string
	CreditScore  float64
	PaymentTerms int
}

// Supplier provides materials.
type Supplier struct {
	ID                  string
	Name                string
	ReliabilityScore    float64
	Capacity            int
	LeadTimeVariability float64
}

// ResourceType classifies a production resource.
type ResourceType string

const (
	ResourceTypeMachine ResourceType = "Machine"
	ResourceTypeVehicle ResourceType = "Vehicle"
	ResourceTypeWorker  ResourceType = "Worker"
	ResourceTypeTool    ResourceType = "Tool"
)

// ResourceTypes lists every resource type in sampling order.
var ResourceTypes = []ResourceType{ResourceTypeMachine, ResourceTypeVehicle, ResourceTypeWorker, ResourceTypeTool}

// Resource is a capacity-bearing asset.
type Resource struct {
	ID          string
	Type        ResourceType
	Capacity    int
	Efficiency  float64
	CostPerHour float64
}

// TransportMode is the carrier type of a lane.
type TransportMode string

const (
	TransportRoad TransportMode = "Road"
	TransportRail TransportMode = "Rail"
	TransportAir  TransportMode = "Air"
	TransportSea  TransportMode = "Sea"
)

// TransportModes lists every mode in sampling order.
var TransportModes = []TransportMode{TransportRoad, TransportRail, TransportAir, TransportSea}

// TransportLane connects two distinct locations.
type TransportLane struct {
	ID            string
	OriginID      string
	DestinationID string
	Mode          TransportMode
	TransitTime   int
	CostPerUnit   float64
	Capacity      int
	Reliability   float64
}

// MasterData bundles the master tables that the simulation engines read.
type MasterData struct {
	Products  []Product
	Locations []Location
	Customers []Customer
	Suppliers []Supplier
	Resources []Resource
}

// Plants returns the locations flagged as manufacturing plants, in table order.
func (m *MasterData) Plants() []Location {
	var plants []Location
	for _, l := range m.Locations {
		if l.IsPlant() {
			plants = append(plants, l)
		}
	}
	return plants
}

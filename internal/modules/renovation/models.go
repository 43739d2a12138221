// Package renovation estimates renovation budgets from a room-by-room list of work items.
package renovation

// Quality tiers
const (
	QualityEconomy  = "economy"
	QualityStandard = "standard"
	QualityPremium  = "premium"
	QualityLuxury   = "luxury"
)

// QualityMultipliers scale every item cost by finish level
var QualityMultipliers = map[string]float64{
	QualityEconomy:  0.75,
	QualityStandard: 1.0,
	QualityPremium:  1.5,
	QualityLuxury:   2.25,
}

// Catalog holds standard-quality unit costs for common work items
var Catalog = map[string]float64{
	"appliance":  1200, // each
	"cabinets":   250,  // per linear foot
	"countertop": 75,   // per sq ft
	"door":       400,  // each
	"drywall":    2.5,  // per sq ft
	"fixture":    350,  // each
	"flooring":   8,    // per sq ft
	"lighting":   200,  // each
	"paint":      3.5,  // per sq ft
	"roofing":    6,    // per sq ft
	"tile":       15,   // per sq ft
	"toilet":     450,  // each
	"vanity":     900,  // each
	"window":     650,  // each
}

// Item is one line of work. UnitCost overrides the catalog price for Kind.
type Item struct {
	Name     string  `json:"name" yaml:"name"`
	Kind     string  `json:"kind" yaml:"kind"`
	UnitCost float64 `json:"unit_cost,omitempty" yaml:"unit_cost,omitempty"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
}

// Room groups work items
type Room struct {
	Name  string `json:"name" yaml:"name"`
	Items []Item `json:"items" yaml:"items"`
}

// Input is a renovation estimate request
type Input struct {
	Rooms              []Room  `json:"rooms" yaml:"rooms"`
	Quality            string  `json:"quality" yaml:"quality"`
	RegionalMultiplier float64 `json:"regional_multiplier" yaml:"regional_multiplier"`
	// LaborShare is the % of each item's cost that is labor; nil uses DefaultLaborShare
	LaborShare *float64 `json:"labor_share,omitempty" yaml:"labor_share,omitempty"`
	// ContingencyRate is the % added to the subtotal; nil uses DefaultContingencyRate
	ContingencyRate *float64 `json:"contingency_rate,omitempty" yaml:"contingency_rate,omitempty"`
	SquareFeet      float64  `json:"square_feet,omitempty" yaml:"square_feet,omitempty"`
}

// ItemCost is the priced line item
type ItemCost struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Quantity  float64 `json:"quantity"`
	UnitCost  float64 `json:"unit_cost"`
	Materials float64 `json:"materials"`
	Labor     float64 `json:"labor"`
	Total     float64 `json:"total"`
}

// RoomCost is the per-room breakdown
type RoomCost struct {
	Name      string     `json:"name"`
	Items     []ItemCost `json:"items"`
	Materials float64    `json:"materials"`
	Labor     float64    `json:"labor"`
	Total     float64    `json:"total"`
}

// Quote is the full renovation budget
type Quote struct {
	Quality            string     `json:"quality"`
	RegionalMultiplier float64    `json:"regional_multiplier"`
	Rooms              []RoomCost `json:"rooms"`
	Materials          float64    `json:"materials"`
	Labor              float64    `json:"labor"`
	Subtotal           float64    `json:"subtotal"`
	Contingency        float64    `json:"contingency"`
	Total              float64    `json:"total"`
	CostPerSquareFoot  *float64   `json:"cost_per_square_foot"`
}

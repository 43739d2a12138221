// Package moving estimates household moving costs from a room inventory,
// the move distance and the chosen service level.
package moving

// Service levels
const (
	ServiceDIY         = "diy"
	ServiceStandard    = "standard"
	ServiceFullService = "full_service"
)

// ItemSize is the volume and weight of one catalog item
type ItemSize struct {
	CubicFeet float64 `json:"cubic_feet"`
	Pounds    float64 `json:"pounds"`
}

// Catalog lists common household items
var Catalog = map[string]ItemSize{
	"armchair":       {CubicFeet: 20, Pounds: 140},
	"bed_king":       {CubicFeet: 70, Pounds: 300},
	"bed_queen":      {CubicFeet: 60, Pounds: 250},
	"bed_single":     {CubicFeet: 40, Pounds: 150},
	"bookcase":       {CubicFeet: 20, Pounds: 140},
	"box_large":      {CubicFeet: 4.5, Pounds: 40},
	"box_medium":     {CubicFeet: 3, Pounds: 25},
	"box_small":      {CubicFeet: 1.5, Pounds: 15},
	"desk":           {CubicFeet: 30, Pounds: 210},
	"dining_chair":   {CubicFeet: 5, Pounds: 35},
	"dining_table":   {CubicFeet: 30, Pounds: 210},
	"dresser":        {CubicFeet: 30, Pounds: 210},
	"dryer":          {CubicFeet: 25, Pounds: 175},
	"nightstand":     {CubicFeet: 5, Pounds: 35},
	"refrigerator":   {CubicFeet: 45, Pounds: 300},
	"sofa":           {CubicFeet: 50, Pounds: 350},
	"television":     {CubicFeet: 10, Pounds: 50},
	"washer":         {CubicFeet: 25, Pounds: 175},
	"wardrobe":       {CubicFeet: 40, Pounds: 280},
	"coffee_table":   {CubicFeet: 10, Pounds: 70},
	"outdoor_grill":  {CubicFeet: 15, Pounds: 100},
	"bicycle":        {CubicFeet: 10, Pounds: 35},
	"piano_upright":  {CubicFeet: 70, Pounds: 500},
	"office_chair":   {CubicFeet: 10, Pounds: 40},
	"filing_cabinet": {CubicFeet: 10, Pounds: 100},
}

// Item is one inventory line. CubicFeet and Pounds override the catalog size.
type Item struct {
	Kind      string  `json:"kind" yaml:"kind"`
	Quantity  int     `json:"quantity" yaml:"quantity"`
	CubicFeet float64 `json:"cubic_feet,omitempty" yaml:"cubic_feet,omitempty"`
	Pounds    float64 `json:"pounds,omitempty" yaml:"pounds,omitempty"`
}

// Room groups inventory items
type Room struct {
	Name  string `json:"name" yaml:"name"`
	Items []Item `json:"items" yaml:"items"`
}

// Input is a moving estimate request
type Input struct {
	Rooms         []Room  `json:"rooms" yaml:"rooms"`
	DistanceMiles float64 `json:"distance_miles" yaml:"distance_miles"`
	ServiceLevel  string  `json:"service_level" yaml:"service_level"`
	Packing       bool    `json:"packing" yaml:"packing"`
	// DeclaredValue buys full value protection when positive
	DeclaredValue float64 `json:"declared_value" yaml:"declared_value"`
}

// RoomVolume is the per-room inventory total
type RoomVolume struct {
	Name      string  `json:"name"`
	CubicFeet float64 `json:"cubic_feet"`
	Pounds    float64 `json:"pounds"`
}

// Breakdown itemizes the estimate
type Breakdown struct {
	Transport float64 `json:"transport"`
	Labor     float64 `json:"labor"`
	Fuel      float64 `json:"fuel"`
	Packing   float64 `json:"packing"`
	Valuation float64 `json:"valuation"`
}

// Quote is the moving cost estimate
type Quote struct {
	ServiceLevel string       `json:"service_level"`
	LongDistance bool         `json:"long_distance"`
	Rooms        []RoomVolume `json:"rooms"`
	CubicFeet    float64      `json:"cubic_feet"`
	Pounds       float64      `json:"pounds"`
	TruckSize    string       `json:"truck_size"`
	Trucks       int          `json:"trucks"`
	Movers       int          `json:"movers"`
	Hours        float64      `json:"hours"`
	Days         int          `json:"days"`
	Breakdown    Breakdown    `json:"breakdown"`
	Total        float64      `json:"total"`
	Low          float64      `json:"low"`
	High         float64      `json:"high"`
	// ReleasedValueCoverage is the carrier's statutory liability when no value is declared
	ReleasedValueCoverage float64 `json:"released_value_coverage"`
}

package moving

import (
	"errors"
	"fmt"
	"math"
)

// Pricing constants
const (
	LongDistanceMiles = 100.0

	truckMilesPerGallon  = 10.0
	fuelPricePerGallon   = 4.0
	rentalMileageRate    = 1.0
	rentalMilesPerDay    = 400.0
	moverHourlyRate      = 60.0
	cubicFeetPerHour     = 100.0 // loaded and unloaded by a two person crew
	drivingMilesPerHour  = 45.0
	baseLinehaulPerPound = 0.35
	linehaulPerPoundMile = 0.0005
	packingMaterialsRate = 1.2 // per cubic foot
	packingLaborRate     = 0.8 // per cubic foot
	fullServiceMarkup    = 1.35
	valuationRate        = 0.01 // of declared value
	releasedValuePerLb   = 0.60
	estimateSpread       = 0.15
	maxDistanceMiles     = 5000.0
	maxItemQuantity      = 10000
	maxItemCubicFeet     = 2000.0
	maxItemPounds        = 20000.0
	maxTotalCubicFeet    = 50 * 1700.0 // fifty of the largest trucks
)

type truck struct {
	name      string
	cubicFeet float64
	dailyRate float64
}

// trucks are ordered by capacity
var trucks = []truck{
	{name: "10ft", cubicFeet: 400, dailyRate: 30},
	{name: "15ft", cubicFeet: 800, dailyRate: 40},
	{name: "20ft", cubicFeet: 1200, dailyRate: 50},
	{name: "26ft", cubicFeet: 1700, dailyRate: 60},
}

// ErrInvalidInput is wrapped by every input error
var ErrInvalidInput = errors.New("invalid moving input")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Estimate prices a move
func Estimate(in Input) (*Quote, error) {
	if in.ServiceLevel == "" {
		in.ServiceLevel = ServiceStandard
	}
	switch in.ServiceLevel {
	case ServiceDIY, ServiceStandard, ServiceFullService:
	default:
		return nil, invalid("unknown service level %q", in.ServiceLevel)
	}
	if math.IsNaN(in.DistanceMiles) || in.DistanceMiles < 0 || in.DistanceMiles > maxDistanceMiles {
		return nil, invalid("distance_miles must be between 0 and %g", maxDistanceMiles)
	}
	if math.IsNaN(in.DeclaredValue) || math.IsInf(in.DeclaredValue, 0) || in.DeclaredValue < 0 {
		return nil, invalid("declared_value must not be negative")
	}

	est := &Quote{
		ServiceLevel: in.ServiceLevel,
		LongDistance: in.DistanceMiles >= LongDistanceMiles,
		Rooms:        make([]RoomVolume, 0, len(in.Rooms)),
	}

	for _, room := range in.Rooms {
		rv := RoomVolume{Name: room.Name}
		for _, item := range room.Items {
			size, err := itemSize(item)
			if err != nil {
				return nil, fmt.Errorf("room %q: %w", room.Name, err)
			}
			rv.CubicFeet += size.CubicFeet * float64(item.Quantity)
			rv.Pounds += size.Pounds * float64(item.Quantity)
		}
		est.Rooms = append(est.Rooms, rv)
		est.CubicFeet += rv.CubicFeet
		est.Pounds += rv.Pounds
	}
	if est.CubicFeet <= 0 {
		return nil, invalid("inventory is empty")
	}
	if est.CubicFeet > maxTotalCubicFeet {
		return nil, invalid("inventory of %.0f cubic feet exceeds the %.0f cubic feet limit", est.CubicFeet, maxTotalCubicFeet)
	}

	chosen, count := truckFor(est.CubicFeet)
	est.TruckSize = chosen.name
	est.Trucks = count
	est.Days = int(math.Max(1, math.Ceil(in.DistanceMiles/rentalMilesPerDay)))
	est.Breakdown.Fuel = in.DistanceMiles / truckMilesPerGallon * fuelPricePerGallon * float64(count)

	if in.ServiceLevel == ServiceDIY {
		est.Breakdown.Transport = (chosen.dailyRate*float64(est.Days) + in.DistanceMiles*rentalMileageRate) * float64(count)
		if in.Packing {
			est.Breakdown.Packing = est.CubicFeet * packingMaterialsRate
		}
	} else {
		est.Movers = crewSize(est.CubicFeet)
		crewFactor := float64(est.Movers) / 2
		est.Hours = est.CubicFeet/cubicFeetPerHour/crewFactor + in.DistanceMiles/drivingMilesPerHour

		if est.LongDistance {
			est.Breakdown.Transport = est.Pounds * (baseLinehaulPerPound + linehaulPerPoundMile*in.DistanceMiles)
			// Linehaul covers driving; crews bill loading and unloading only
			est.Breakdown.Labor = est.CubicFeet / cubicFeetPerHour / crewFactor * moverHourlyRate * float64(est.Movers)
		} else {
			est.Breakdown.Labor = est.Hours * moverHourlyRate * float64(est.Movers)
		}

		if in.Packing || in.ServiceLevel == ServiceFullService {
			est.Breakdown.Packing = est.CubicFeet * (packingMaterialsRate + packingLaborRate)
		}
		if in.ServiceLevel == ServiceFullService {
			est.Breakdown.Transport *= fullServiceMarkup
			est.Breakdown.Labor *= fullServiceMarkup
		}
	}

	est.ReleasedValueCoverage = est.Pounds * releasedValuePerLb
	if in.DeclaredValue > 0 {
		est.Breakdown.Valuation = in.DeclaredValue * valuationRate
	}

	b := est.Breakdown
	est.Total = b.Transport + b.Labor + b.Fuel + b.Packing + b.Valuation
	est.Low = est.Total * (1 - estimateSpread)
	est.High = est.Total * (1 + estimateSpread)

	return est, nil
}

func itemSize(item Item) (ItemSize, error) {
	if item.Quantity < 0 || item.Quantity > maxItemQuantity {
		return ItemSize{}, invalid("%s: quantity must be between 0 and %d", item.Kind, maxItemQuantity)
	}
	if !inRange(item.CubicFeet, maxItemCubicFeet) {
		return ItemSize{}, invalid("%s: cubic_feet must be between 0 and %g", item.Kind, maxItemCubicFeet)
	}
	if !inRange(item.Pounds, maxItemPounds) {
		return ItemSize{}, invalid("%s: pounds must be between 0 and %g", item.Kind, maxItemPounds)
	}

	size, known := Catalog[item.Kind]
	if item.CubicFeet > 0 {
		size.CubicFeet = item.CubicFeet
		if item.Pounds == 0 && !known {
			// Typical household density
			size.Pounds = item.CubicFeet * 7
		}
	}
	if item.Pounds > 0 {
		size.Pounds = item.Pounds
	}
	if size.CubicFeet == 0 {
		return ItemSize{}, invalid("unknown item kind %q without cubic_feet", item.Kind)
	}
	return size, nil
}

func inRange(v, max float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= max
}

// truckFor picks the smallest truck that fits, or a fleet of the largest
func truckFor(cubicFeet float64) (truck, int) {
	for _, t := range trucks {
		if cubicFeet <= t.cubicFeet {
			return t, 1
		}
	}
	largest := trucks[len(trucks)-1]
	return largest, int(math.Ceil(cubicFeet / largest.cubicFeet))
}

func crewSize(cubicFeet float64) int {
	switch {
	case cubicFeet <= 600:
		return 2
	case cubicFeet <= 1200:
		return 3
	default:
		return 4
	}
}

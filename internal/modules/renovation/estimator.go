package renovation

import (
	"errors"
	"fmt"
	"math"
)

// Defaults applied to zero-valued inputs
const (
	DefaultLaborShare      = 40.0
	DefaultContingencyRate = 10.0
	maxRegionalMultiplier  = 5.0
)

// ErrInvalidInput is wrapped by every input error
var ErrInvalidInput = errors.New("invalid renovation input")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// WithDefaults fills in the quality tier, region and percentages
func (in Input) WithDefaults() Input {
	if in.Quality == "" {
		in.Quality = QualityStandard
	}
	if in.RegionalMultiplier == 0 {
		in.RegionalMultiplier = 1
	}
	if in.LaborShare == nil {
		share := DefaultLaborShare
		in.LaborShare = &share
	}
	if in.ContingencyRate == nil {
		rate := DefaultContingencyRate
		in.ContingencyRate = &rate
	}
	return in
}

// Estimate prices every item of every room. Cost is linear in rooms times items.
func Estimate(in Input) (*Quote, error) {
	in = in.WithDefaults()

	quality, ok := QualityMultipliers[in.Quality]
	if !ok {
		return nil, invalid("unknown quality %q", in.Quality)
	}
	if !finite(in.RegionalMultiplier) || in.RegionalMultiplier <= 0 || in.RegionalMultiplier > maxRegionalMultiplier {
		return nil, invalid("regional_multiplier must be in (0, %g]", maxRegionalMultiplier)
	}
	laborShare, contingencyRate := *in.LaborShare, *in.ContingencyRate
	if !finite(laborShare) || laborShare < 0 || laborShare > 100 {
		return nil, invalid("labor_share must be between 0 and 100")
	}
	if !finite(contingencyRate) || contingencyRate < 0 || contingencyRate > 100 {
		return nil, invalid("contingency_rate must be between 0 and 100")
	}
	if !finite(in.SquareFeet) || in.SquareFeet < 0 {
		return nil, invalid("square_feet must not be negative")
	}
	if len(in.Rooms) == 0 {
		return nil, invalid("at least one room is required")
	}

	factor := quality * in.RegionalMultiplier
	est := &Quote{
		Quality:            in.Quality,
		RegionalMultiplier: in.RegionalMultiplier,
		Rooms:              make([]RoomCost, 0, len(in.Rooms)),
	}

	for _, room := range in.Rooms {
		rc := RoomCost{Name: room.Name, Items: make([]ItemCost, 0, len(room.Items))}

		for _, item := range room.Items {
			unit, err := unitCost(item)
			if err != nil {
				return nil, fmt.Errorf("room %q: %w", room.Name, err)
			}

			total := unit * item.Quantity * factor
			labor := total * laborShare / 100
			rc.Items = append(rc.Items, ItemCost{
				Name:      item.Name,
				Kind:      item.Kind,
				Quantity:  item.Quantity,
				UnitCost:  unit,
				Materials: total - labor,
				Labor:     labor,
				Total:     total,
			})
			rc.Materials += total - labor
			rc.Labor += labor
			rc.Total += total
		}

		est.Rooms = append(est.Rooms, rc)
		est.Materials += rc.Materials
		est.Labor += rc.Labor
		est.Subtotal += rc.Total
	}

	est.Contingency = est.Subtotal * contingencyRate / 100
	est.Total = est.Subtotal + est.Contingency
	if in.SquareFeet > 0 {
		perFoot := est.Total / in.SquareFeet
		est.CostPerSquareFoot = &perFoot
	}

	return est, nil
}

func unitCost(item Item) (float64, error) {
	if !finite(item.Quantity) || item.Quantity < 0 {
		return 0, invalid("item %q: quantity must not be negative", item.Name)
	}
	if !finite(item.UnitCost) || item.UnitCost < 0 {
		return 0, invalid("item %q: unit_cost must not be negative", item.Name)
	}
	if item.UnitCost > 0 {
		return item.UnitCost, nil
	}
	cost, ok := Catalog[item.Kind]
	if !ok {
		return 0, invalid("item %q: unknown kind %q and no unit_cost", item.Name, item.Kind)
	}
	return cost, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

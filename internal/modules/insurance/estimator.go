package insurance

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Defaults applied to zero-valued inputs
const (
	DefaultRebuildCostPerSqFt      = 150.0
	DefaultBaseRatePer1000         = 3.5
	DefaultDeductible              = 1000.0
	DefaultPersonalPropertyPercent = 50.0
	DefaultLiabilityLimit          = 300000.0

	otherStructuresShare = 0.10
	lossOfUseShare       = 0.20
	maxSecurityDiscount  = 20.0
)

// ConstructionMultipliers rate the building materials
var ConstructionMultipliers = map[string]float64{
	"frame":    1.0,
	"mixed":    0.95,
	"masonry":  0.9,
	"superior": 0.8,
}

// LocationMultipliers rate the local catastrophe exposure
var LocationMultipliers = map[string]float64{
	"low":       0.85,
	"moderate":  1.0,
	"high":      1.3,
	"very_high": 1.6,
}

// SecurityDiscounts are percentage discounts per protective feature
var SecurityDiscounts = map[string]float64{
	"alarm":           5,
	"monitored_alarm": 10,
	"sprinklers":      8,
	"deadbolts":       2,
	"smoke_detectors": 3,
}

type threshold struct {
	limit      float64
	multiplier float64
}

// deductibleCredits apply to the highest limit at or below the chosen deductible
var deductibleCredits = []threshold{
	{limit: 0, multiplier: 1.15},
	{limit: 500, multiplier: 1.1},
	{limit: 1000, multiplier: 1.0},
	{limit: 2500, multiplier: 0.88},
	{limit: 5000, multiplier: 0.78},
}

// ageSurcharges apply to the first bracket containing the home age
var ageSurcharges = []threshold{
	{limit: 5, multiplier: 0.9},
	{limit: 15, multiplier: 1.0},
	{limit: 30, multiplier: 1.1},
	{limit: 50, multiplier: 1.25},
	{limit: math.Inf(1), multiplier: 1.4},
}

// liabilitySurcharges are flat annual amounts by liability limit
var liabilitySurcharges = []threshold{
	{limit: 100000, multiplier: 0},
	{limit: 300000, multiplier: 25},
	{limit: 500000, multiplier: 50},
	{limit: 1000000, multiplier: 110},
}

// ErrInvalidInput is wrapped by every input error
var ErrInvalidInput = errors.New("invalid insurance input")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// WithDefaults fills in optional fields
func (in Input) WithDefaults() Input {
	if in.RebuildCostPerSqFt == 0 {
		in.RebuildCostPerSqFt = DefaultRebuildCostPerSqFt
	}
	if in.BaseRatePer1000 == 0 {
		in.BaseRatePer1000 = DefaultBaseRatePer1000
	}
	if in.Deductible == 0 {
		in.Deductible = DefaultDeductible
	}
	if in.PersonalPropertyPercent == 0 {
		in.PersonalPropertyPercent = DefaultPersonalPropertyPercent
	}
	if in.LiabilityLimit == 0 {
		in.LiabilityLimit = DefaultLiabilityLimit
	}
	if in.Construction == "" {
		in.Construction = "frame"
	}
	if in.LocationRisk == "" {
		in.LocationRisk = "moderate"
	}
	return in
}

// Estimate computes the annual and monthly premium
func Estimate(in Input) (*Quote, error) {
	in = in.WithDefaults()
	if err := validate(in); err != nil {
		return nil, err
	}

	dwelling := in.SquareFeet * in.RebuildCostPerSqFt
	est := &Quote{
		Coverages: Coverages{
			Dwelling:         dwelling,
			OtherStructures:  dwelling * otherStructuresShare,
			PersonalProperty: dwelling * in.PersonalPropertyPercent / 100,
			LossOfUse:        dwelling * lossOfUseShare,
			Liability:        in.LiabilityLimit,
		},
		BasePremium: dwelling / 1000 * in.BaseRatePer1000,
	}

	est.Factors = []Factor{
		{Name: "deductible", Value: strconv.FormatFloat(in.Deductible, 'f', -1, 64), Multiplier: atOrBelow(deductibleCredits, in.Deductible)},
		{Name: "construction", Value: in.Construction, Multiplier: ConstructionMultipliers[in.Construction]},
		{Name: "home_age", Value: strconv.Itoa(in.HomeAge), Multiplier: firstAtOrAbove(ageSurcharges, float64(in.HomeAge))},
		{Name: "location", Value: in.LocationRisk, Multiplier: LocationMultipliers[in.LocationRisk]},
		{Name: "claims", Value: strconv.Itoa(in.ClaimsLast5Years), Multiplier: claimsMultiplier(in.ClaimsLast5Years)},
	}

	premium := est.BasePremium
	for _, f := range est.Factors {
		premium *= f.Multiplier
	}

	est.DiscountPercent = securityDiscount(in.SecurityFeatures)
	premium *= 1 - est.DiscountPercent/100

	est.LiabilitySurcharge = firstAtOrAbove(liabilitySurcharges, in.LiabilityLimit)
	premium += est.LiabilitySurcharge

	est.AnnualPremium = premium
	est.MonthlyPremium = premium / 12
	return est, nil
}

type namedValue struct {
	name  string
	value float64
}

func validate(in Input) error {
	positive := []namedValue{
		{"square_feet", in.SquareFeet},
		{"rebuild_cost_per_sq_ft", in.RebuildCostPerSqFt},
		{"deductible", in.Deductible},
		{"personal_property_percent", in.PersonalPropertyPercent},
		{"liability_limit", in.LiabilityLimit},
		{"base_rate_per_1000", in.BaseRatePer1000},
	}
	for _, f := range positive {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return invalid("%s must be a positive number", f.name)
		}
	}
	if in.PersonalPropertyPercent > 100 {
		return invalid("personal_property_percent must not exceed 100")
	}
	if in.LiabilityLimit > liabilitySurcharges[len(liabilitySurcharges)-1].limit {
		return invalid("liability_limit is above the highest available limit")
	}
	if in.HomeAge < 0 {
		return invalid("home_age must not be negative")
	}
	if in.ClaimsLast5Years < 0 {
		return invalid("claims_last_5_years must not be negative")
	}
	if _, ok := ConstructionMultipliers[in.Construction]; !ok {
		return invalid("unknown construction %q", in.Construction)
	}
	if _, ok := LocationMultipliers[in.LocationRisk]; !ok {
		return invalid("unknown location_risk %q", in.LocationRisk)
	}
	for _, feature := range in.SecurityFeatures {
		if _, ok := SecurityDiscounts[feature]; !ok {
			return invalid("unknown security feature %q", feature)
		}
	}
	return nil
}

func atOrBelow(table []threshold, value float64) float64 {
	i := sort.Search(len(table), func(i int) bool { return table[i].limit > value })
	if i == 0 {
		return table[0].multiplier
	}
	return table[i-1].multiplier
}

func firstAtOrAbove(table []threshold, value float64) float64 {
	i := sort.Search(len(table), func(i int) bool { return table[i].limit >= value })
	if i == len(table) {
		return table[len(table)-1].multiplier
	}
	return table[i].multiplier
}

func claimsMultiplier(claims int) float64 {
	switch {
	case claims <= 0:
		return 1.0
	case claims == 1:
		return 1.15
	case claims == 2:
		return 1.35
	default:
		return 1.6
	}
}

// securityDiscount sums distinct feature discounts up to the cap
func securityDiscount(features []string) float64 {
	seen := make(map[string]bool, len(features))
	total := 0.0
	for _, f := range features {
		if seen[f] {
			continue
		}
		seen[f] = true
		total += SecurityDiscounts[f]
	}
	return math.Min(total, maxSecurityDiscount)
}

// Package insurance estimates homeowners insurance premiums from dwelling
// replacement cost and a set of weighted rating factors.
package insurance

// Input is an insurance estimate request
type Input struct {
	SquareFeet              float64  `json:"square_feet" yaml:"square_feet"`
	RebuildCostPerSqFt      float64  `json:"rebuild_cost_per_sq_ft" yaml:"rebuild_cost_per_sq_ft"`
	HomeAge                 int      `json:"home_age" yaml:"home_age"`
	Construction            string   `json:"construction" yaml:"construction"`
	Deductible              float64  `json:"deductible" yaml:"deductible"`
	LocationRisk            string   `json:"location_risk" yaml:"location_risk"`
	ClaimsLast5Years        int      `json:"claims_last_5_years" yaml:"claims_last_5_years"`
	SecurityFeatures        []string `json:"security_features" yaml:"security_features"`
	PersonalPropertyPercent float64  `json:"personal_property_percent" yaml:"personal_property_percent"` // of dwelling coverage
	LiabilityLimit          float64  `json:"liability_limit" yaml:"liability_limit"`
	BaseRatePer1000         float64  `json:"base_rate_per_1000" yaml:"base_rate_per_1000"`
}

// Coverages are the policy limits
type Coverages struct {
	Dwelling         float64 `json:"dwelling"`
	OtherStructures  float64 `json:"other_structures"`
	PersonalProperty float64 `json:"personal_property"`
	LossOfUse        float64 `json:"loss_of_use"`
	Liability        float64 `json:"liability"`
}

// Factor is one applied rating multiplier
type Factor struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Multiplier float64 `json:"multiplier"`
}

// Quote is the premium estimate
type Quote struct {
	Coverages          Coverages `json:"coverages"`
	BasePremium        float64   `json:"base_premium"`
	Factors            []Factor  `json:"factors"`
	DiscountPercent    float64   `json:"discount_percent"`
	LiabilitySurcharge float64   `json:"liability_surcharge"`
	AnnualPremium      float64   `json:"annual_premium"`
	MonthlyPremium     float64   `json:"monthly_premium"`
}

package projection

import (
	"errors"
	"fmt"
	"math"
)

// Limits on the projection horizon and loan term accepted from callers
const (
	MaxHoldingPeriod = 100
	MaxLoanTerm      = 50
)

// ErrInvalidAssumptions is wrapped by every validation failure
var ErrInvalidAssumptions = errors.New("invalid assumptions")

// Validation failures
var (
	ErrInvalidTerm          = errors.New("loan term must be a positive number of years")
	ErrInvalidHorizon       = errors.New("holding period must be a positive number of years")
	ErrNonFiniteInput       = errors.New("value must be a finite number")
	ErrNegativeAmount       = errors.New("amount must not be negative")
	ErrOutOfRange           = errors.New("value is out of range")
	ErrInvalidPurchasePrice = errors.New("purchase price must be positive")
	ErrNoCashInvested       = errors.New("down payment, closing and renovation costs must add up to a positive amount")
	ErrInvalidFrequency     = errors.New("payment frequency must be annual or monthly")
	ErrInvalidScenario      = errors.New("scenario must have a unique name and finite offsets")
)

func invalid(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidAssumptions, field, err)
}

type namedValue struct {
	name  string
	value float64
}

// Validate checks the assumptions before a projection run.
// The engine itself does not validate and would propagate NaN or Inf.
func (a Assumptions) Validate() error {
	all := []namedValue{
		{"purchase_price", a.PurchasePrice},
		{"down_payment", a.DownPayment},
		{"closing_costs", a.ClosingCosts},
		{"renovation_costs", a.RenovationCosts},
		{"loan_amount", a.LoanAmount},
		{"interest_rate", a.InterestRate},
		{"monthly_rent", a.MonthlyRent},
		{"vacancy_rate", a.VacancyRate},
		{"rent_growth_rate", a.RentGrowthRate},
		{"appreciation_rate", a.AppreciationRate},
		{"property_tax", a.PropertyTax},
		{"insurance", a.Insurance},
		{"maintenance", a.Maintenance},
		{"repairs", a.Repairs},
		{"other_expenses", a.OtherExpenses},
		{"management_fee", a.ManagementFee},
		{"expense_inflation", a.ExpenseInflation},
		{"land_value", a.LandValue},
		{"tax_rate", a.TaxRate},
	}
	for _, f := range all {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalid(f.name, ErrNonFiniteInput)
		}
	}

	nonNegative := []namedValue{
		{"down_payment", a.DownPayment},
		{"closing_costs", a.ClosingCosts},
		{"renovation_costs", a.RenovationCosts},
		{"loan_amount", a.LoanAmount},
		{"interest_rate", a.InterestRate},
		{"monthly_rent", a.MonthlyRent},
		{"property_tax", a.PropertyTax},
		{"insurance", a.Insurance},
		{"maintenance", a.Maintenance},
		{"repairs", a.Repairs},
		{"other_expenses", a.OtherExpenses},
		{"land_value", a.LandValue},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return invalid(f.name, ErrNegativeAmount)
		}
	}

	percentages := []namedValue{
		{"vacancy_rate", a.VacancyRate},
		{"management_fee", a.ManagementFee},
		{"tax_rate", a.TaxRate},
	}
	for _, f := range percentages {
		if f.value < 0 || f.value > 100 {
			return invalid(f.name, ErrOutOfRange)
		}
	}

	// A rate of -100% or lower would wipe out or flip the sign of compounded values
	growthRates := []namedValue{
		{"rent_growth_rate", a.RentGrowthRate},
		{"appreciation_rate", a.AppreciationRate},
		{"expense_inflation", a.ExpenseInflation},
	}
	for _, f := range growthRates {
		if f.value <= -100+ScenarioOffsetPoints {
			return invalid(f.name, ErrOutOfRange)
		}
	}

	if a.PurchasePrice <= 0 {
		return invalid("purchase_price", ErrInvalidPurchasePrice)
	}
	if a.HoldingPeriod <= 0 || a.HoldingPeriod > MaxHoldingPeriod {
		return invalid("holding_period", ErrInvalidHorizon)
	}
	if a.LoanTerm < 0 || a.LoanTerm > MaxLoanTerm || (a.LoanAmount > 0 && a.LoanTerm == 0) {
		return invalid("loan_term", ErrInvalidTerm)
	}
	switch a.PaymentFrequency {
	case "", FrequencyAnnual, FrequencyMonthly:
	default:
		return invalid("payment_frequency", ErrInvalidFrequency)
	}
	if a.TotalInvestment() <= 0 {
		return invalid("total_investment", ErrNoCashInvested)
	}

	return nil
}

// ValidateScenarios checks caller-supplied scenarios against the base assumptions
func ValidateScenarios(a Assumptions, scenarios []Scenario) error {
	seen := make(map[string]bool, len(scenarios))
	for _, s := range scenarios {
		if s.Name == "" || seen[s.Name] {
			return invalid("scenarios", ErrInvalidScenario)
		}
		seen[s.Name] = true

		for _, delta := range []float64{s.AppreciationDelta, s.RentGrowthDelta} {
			if math.IsNaN(delta) || math.IsInf(delta, 0) {
				return invalid("scenarios."+s.Name, ErrInvalidScenario)
			}
		}
		if a.AppreciationRate+s.AppreciationDelta <= -100 || a.RentGrowthRate+s.RentGrowthDelta <= -100 {
			return invalid("scenarios."+s.Name, ErrOutOfRange)
		}
	}
	return nil
}

// IsValidationError reports whether err came from Validate
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAssumptions)
}

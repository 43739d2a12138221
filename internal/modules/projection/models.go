// Package projection implements the multi-year investment projection engine:
// amortization, compound growth of value, rent and expenses, scenario
// perturbation and the derived return metrics.
package projection

import "github.com/sameer10342432/realestate-tools/pkg/formulas"

// PaymentFrequency selects how the mortgage amortizes inside each projection year
type PaymentFrequency string

const (
	// FrequencyAnnual amortizes once per year
	FrequencyAnnual PaymentFrequency = "annual"
	// FrequencyMonthly amortizes twelve times per year
	FrequencyMonthly PaymentFrequency = "monthly"
)

// ResidentialRecoveryYears is the straight-line depreciation period for residential rental property
const ResidentialRecoveryYears = 27.5

// Assumptions is the complete input of one projection run.
// Rates are percentages (6.5 means 6.5%). Expenses are annual amounts.
type Assumptions struct {
	PurchasePrice    float64          `json:"purchase_price" yaml:"purchase_price"`
	DownPayment      float64          `json:"down_payment" yaml:"down_payment"`
	ClosingCosts     float64          `json:"closing_costs" yaml:"closing_costs"`
	RenovationCosts  float64          `json:"renovation_costs" yaml:"renovation_costs"`
	LoanAmount       float64          `json:"loan_amount" yaml:"loan_amount"`
	InterestRate     float64          `json:"interest_rate" yaml:"interest_rate"`
	LoanTerm         int              `json:"loan_term" yaml:"loan_term"`
	PaymentFrequency PaymentFrequency `json:"payment_frequency,omitempty" yaml:"payment_frequency,omitempty"`
	MonthlyRent      float64          `json:"monthly_rent" yaml:"monthly_rent"`
	VacancyRate      float64          `json:"vacancy_rate" yaml:"vacancy_rate"`
	RentGrowthRate   float64          `json:"rent_growth_rate" yaml:"rent_growth_rate"`
	AppreciationRate float64          `json:"appreciation_rate" yaml:"appreciation_rate"`
	PropertyTax      float64          `json:"property_tax" yaml:"property_tax"`
	Insurance        float64          `json:"insurance" yaml:"insurance"`
	Maintenance      float64          `json:"maintenance" yaml:"maintenance"`
	Repairs          float64          `json:"repairs" yaml:"repairs"`
	OtherExpenses    float64          `json:"other_expenses" yaml:"other_expenses"`
	ManagementFee    float64          `json:"management_fee" yaml:"management_fee"` // % of collected rent
	ExpenseInflation float64          `json:"expense_inflation" yaml:"expense_inflation"`
	LandValue        float64          `json:"land_value" yaml:"land_value"` // not depreciable
	TaxRate          float64          `json:"tax_rate" yaml:"tax_rate"`     // marginal income tax rate
	HoldingPeriod    int              `json:"holding_period" yaml:"holding_period"`
}

// WithDefaults returns a copy with optional fields filled in
func (a Assumptions) WithDefaults() Assumptions {
	if a.PaymentFrequency == "" {
		a.PaymentFrequency = FrequencyAnnual
	}
	return a
}

// TotalInvestment is the one-time cash put into the deal
func (a Assumptions) TotalInvestment() float64 {
	return a.DownPayment + a.ClosingCosts + a.RenovationCosts
}

// FixedOperatingExpenses is the first-year sum of the flat annual expenses.
// Management fees scale with income and are added per year.
func (a Assumptions) FixedOperatingExpenses() float64 {
	return a.PropertyTax + a.Insurance + a.Maintenance + a.Repairs + a.OtherExpenses
}

// DepreciationBase is the depreciable basis: improvements, not land
func (a Assumptions) DepreciationBase() float64 {
	base := a.PurchasePrice + a.RenovationCosts - a.LandValue
	if base < 0 {
		return 0
	}
	return base
}

// PeriodsPerYear maps the payment frequency onto amortization periods
func (a Assumptions) PeriodsPerYear() int {
	if a.PaymentFrequency == FrequencyMonthly {
		return formulas.PeriodsMonthly
	}
	return formulas.PeriodsAnnual
}

// YearlyPoint is the state of the investment at the end of one projection year
type YearlyPoint struct {
	Year                    int     `json:"year"`
	PropertyValue           float64 `json:"property_value"`
	TotalEquity             float64 `json:"total_equity"`
	AnnualIncome            float64 `json:"annual_income"`
	TotalExpenses           float64 `json:"total_expenses"` // operating expenses, excluding debt service
	DebtService             float64 `json:"debt_service"`
	InterestPaid            float64 `json:"interest_paid"`
	NetCashFlow             float64 `json:"net_cash_flow"`
	CumulativeCashFlow      float64 `json:"cumulative_cash_flow"`
	MortgageBalance         float64 `json:"mortgage_balance"`
	PrincipalPaidThisYear   float64 `json:"principal_paid_this_year"`
	Depreciation            float64 `json:"depreciation"`
	TaxBenefit              float64 `json:"tax_benefit"`
	TotalReturn             float64 `json:"total_return"`
	AnnualizedReturnPercent float64 `json:"annualized_return_percent"`
}

// Scenario perturbs the base growth rates by fixed percentage points
type Scenario struct {
	Name              string  `json:"name" yaml:"name"`
	AppreciationDelta float64 `json:"appreciation_delta" yaml:"appreciation_delta"`
	RentGrowthDelta   float64 `json:"rent_growth_delta" yaml:"rent_growth_delta"`
}

// ScenarioResults maps a scenario name to its year-ordered projection
type ScenarioResults map[string][]YearlyPoint

// ScenarioOutcome is the final-year headline of one scenario
type ScenarioOutcome struct {
	FinalPropertyValue float64 `json:"final_property_value"`
	TotalCashFlow      float64 `json:"total_cash_flow"`
	TotalReturn        float64 `json:"total_return"`
	AnnualizedReturn   float64 `json:"annualized_return"`
}

// Summary aggregates the moderate scenario plus all scenario sequences
type Summary struct {
	TotalInvestment     float64                    `json:"total_investment"`
	TotalCashFlow       float64                    `json:"total_cash_flow"`
	TotalAppreciation   float64                    `json:"total_appreciation"`
	TotalTaxBenefits    float64                    `json:"total_tax_benefits"`
	TotalReturn         float64                    `json:"total_return"`
	AnnualizedReturn    float64                    `json:"annualized_return"`
	CashOnCashReturn    float64                    `json:"cash_on_cash_return"`
	CapRate             float64                    `json:"cap_rate"`
	FirstYearNOI        float64                    `json:"first_year_noi"`
	MonthlyCashFlow     float64                    `json:"monthly_cash_flow"`
	DebtServiceCoverage *float64                   `json:"debt_service_coverage"`
	BreakEvenYear       *int                       `json:"break_even_year"` // nil: never within the holding period
	Outcomes            map[string]ScenarioOutcome `json:"outcomes"`
	Scenarios           ScenarioResults            `json:"scenarios"`
}

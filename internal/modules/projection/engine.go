package projection

import (
	"math"

	"github.com/sameer10342432/realestate-tools/internal/workers"
	"github.com/sameer10342432/realestate-tools/pkg/formulas"
)

// Engine runs projections. Scenarios are independent and are spread over the worker pool;
// the years inside one scenario are computed sequentially.
type Engine struct {
	pool *workers.WorkerPool
}

// NewEngine creates an engine backed by the given pool
func NewEngine(pool *workers.WorkerPool) *Engine {
	if pool == nil {
		pool = workers.NewWorkerPool(len(DefaultScenarios()))
	}
	return &Engine{pool: pool}
}

// RunScenarios projects every scenario and keys the sequences by scenario name
func (e *Engine) RunScenarios(a Assumptions, scenarios []Scenario) ScenarioResults {
	sequences := workers.Map(e.pool, scenarios, func(s Scenario) []YearlyPoint {
		return Project(a, s)
	})

	results := make(ScenarioResults, len(scenarios))
	for i, s := range scenarios {
		results[s.Name] = sequences[i]
	}
	return results
}

// Summarize runs the default scenarios and aggregates them
func (e *Engine) Summarize(a Assumptions) Summary {
	results := e.RunScenarios(a, DefaultScenarios())
	return Aggregate(results[ScenarioModerate], results, a)
}

// RunScenarios is a convenience wrapper using a pool sized to the scenario count
func RunScenarios(a Assumptions, scenarios []Scenario) ScenarioResults {
	return NewEngine(workers.NewWorkerPool(len(scenarios))).RunScenarios(a, scenarios)
}

// Project runs the combined per-year loop for one scenario.
// Inputs are assumed valid; see Assumptions.Validate.
func Project(a Assumptions, s Scenario) []YearlyPoint {
	horizon := a.HoldingPeriod
	if horizon <= 0 {
		return []YearlyPoint{}
	}

	appreciationRate := a.AppreciationRate + s.AppreciationDelta
	rentGrowthRate := a.RentGrowthRate + s.RentGrowthDelta

	propertyValues := formulas.ProjectGrowth(a.PurchasePrice, appreciationRate, horizon)
	loan := newAmortizer(a.LoanAmount, a.InterestRate, a.LoanTerm, a.PeriodsPerYear())

	totalInvestment := a.TotalInvestment()
	annualDepreciation := a.DepreciationBase() / ResidentialRecoveryYears
	remainingBasis := a.DepreciationBase()

	var (
		cumulativeCashFlow  float64
		cumulativePrincipal float64
		cumulativeTax       float64
	)

	points := make([]YearlyPoint, horizon)
	for i := 0; i < horizon; i++ {
		year := i + 1

		// Rent and expenses are quoted in today's money, so growth starts in year 2
		grossRent := formulas.GrownValue(a.MonthlyRent*12, rentGrowthRate, year-1)
		income := grossRent * (1 - a.VacancyRate/100)
		expenses := formulas.GrownValue(a.FixedOperatingExpenses(), a.ExpenseInflation, year-1) +
			income*a.ManagementFee/100

		debtService, interest, principal := loan.advanceYear()

		depreciation := math.Min(annualDepreciation, remainingBasis)
		remainingBasis -= depreciation
		taxBenefit := (depreciation + interest) * a.TaxRate / 100

		netCashFlow := income - expenses - debtService
		cumulativeCashFlow += netCashFlow
		cumulativePrincipal += principal
		cumulativeTax += taxBenefit

		appreciation := propertyValues[i] - a.PurchasePrice
		totalReturn := cumulativeCashFlow + appreciation + cumulativePrincipal + cumulativeTax

		points[i] = YearlyPoint{
			Year:                    year,
			PropertyValue:           propertyValues[i],
			TotalEquity:             propertyValues[i] - loan.balance,
			AnnualIncome:            income,
			TotalExpenses:           expenses,
			DebtService:             debtService,
			InterestPaid:            interest,
			NetCashFlow:             netCashFlow,
			CumulativeCashFlow:      cumulativeCashFlow,
			MortgageBalance:         loan.balance,
			PrincipalPaidThisYear:   principal,
			Depreciation:            depreciation,
			TaxBenefit:              taxBenefit,
			TotalReturn:             totalReturn,
			AnnualizedReturnPercent: formulas.AnnualizedReturn(totalReturn, totalInvestment, year),
		}
	}

	return points
}

// amortizer tracks a loan balance across projection years
type amortizer struct {
	balance          float64
	payment          float64
	rate             float64
	periodsPerYear   int
	periodsRemaining int
}

func newAmortizer(principal, annualRatePercent float64, termYears, periodsPerYear int) *amortizer {
	if principal <= 0 || termYears <= 0 {
		return &amortizer{periodsPerYear: periodsPerYear}
	}
	return &amortizer{
		balance:          principal,
		payment:          formulas.PeriodicPayment(principal, annualRatePercent, termYears, periodsPerYear),
		rate:             formulas.PeriodicRate(annualRatePercent, periodsPerYear),
		periodsPerYear:   periodsPerYear,
		periodsRemaining: termYears * periodsPerYear,
	}
}

// advanceYear applies one year of payments. After payoff every figure is zero.
func (l *amortizer) advanceYear() (debtService, interest, principal float64) {
	for p := 0; p < l.periodsPerYear && l.periodsRemaining > 0 && l.balance > 0; p++ {
		periodInterest, periodPrincipal, newBalance := formulas.AmortizationStep(l.balance, l.payment, l.rate)
		if l.periodsRemaining == 1 {
			// Final scheduled payment retires any floating-point residue
			periodPrincipal = l.balance
			newBalance = 0
		}

		interest += periodInterest
		principal += periodPrincipal
		debtService += periodInterest + periodPrincipal
		l.balance = newBalance
		l.periodsRemaining--
	}
	return debtService, interest, principal
}

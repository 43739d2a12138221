package projection

import (
	"math"
	"testing"

	"github.com/sameer10342432/realestate-tools/internal/workers"
	"github.com/sameer10342432/realestate-tools/pkg/formulas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceAssumptions is the investment-growth example used across the tests
func referenceAssumptions() Assumptions {
	return Assumptions{
		PurchasePrice:    300000,
		DownPayment:      60000,
		ClosingCosts:     9000,
		RenovationCosts:  15000,
		LoanAmount:       240000,
		InterestRate:     6.5,
		LoanTerm:         30,
		PaymentFrequency: FrequencyAnnual,
		MonthlyRent:      2500,
		AppreciationRate: 4,
		HoldingPeriod:    10,
	}
}

func TestProject_ReferenceScenario(t *testing.T) {
	points := Project(referenceAssumptions(), Scenario{Name: ScenarioModerate})
	require.Len(t, points, 10)

	for i, p := range points {
		assert.Equal(t, i+1, p.Year)
	}

	last := points[9]
	assert.InDelta(t, 300000*math.Pow(1.04, 10), last.PropertyValue, 1e-6)
	assert.InDelta(t, 444073.29, last.PropertyValue, 0.01)
}

func TestProject_FirstYearFigures(t *testing.T) {
	a := referenceAssumptions()
	a.PropertyTax = 3600
	a.Insurance = 1200
	a.Maintenance = 1200
	a.Repairs = 600
	a.OtherExpenses = 600

	points := Project(a, Scenario{Name: ScenarioModerate})
	first := points[0]

	payment := formulas.PeriodicPayment(240000, 6.5, 30, formulas.PeriodsAnnual)
	assert.InDelta(t, 30000, first.AnnualIncome, 1e-9)
	assert.InDelta(t, 7200, first.TotalExpenses, 1e-9)
	assert.InDelta(t, payment, first.DebtService, 1e-9)
	assert.InDelta(t, 240000*0.065, first.InterestPaid, 1e-9)
	assert.InDelta(t, payment-240000*0.065, first.PrincipalPaidThisYear, 1e-9)
	assert.InDelta(t, 30000-7200-payment, first.NetCashFlow, 1e-9)
	assert.InDelta(t, first.NetCashFlow, first.CumulativeCashFlow, 1e-9)
	assert.InDelta(t, first.PropertyValue-first.MortgageBalance, first.TotalEquity, 1e-9)
}

func TestProject_CumulativeCashFlowIsPrefixSum(t *testing.T) {
	a := referenceAssumptions()
	a.RentGrowthRate = 3
	a.PropertyTax = 4000
	a.ExpenseInflation = 2.5

	points := Project(a, Scenario{Name: ScenarioModerate})

	netFlows := make([]float64, len(points))
	for i, p := range points {
		netFlows[i] = p.NetCashFlow
	}
	expected := formulas.CumulativeSum(netFlows)

	for i, p := range points {
		assert.InDelta(t, expected[i], p.CumulativeCashFlow, 1e-6, "year %d", p.Year)
	}
}

func TestProject_MortgageBalanceMonotonicAndPaidOff(t *testing.T) {
	for _, frequency := range []PaymentFrequency{FrequencyAnnual, FrequencyMonthly} {
		t.Run(string(frequency), func(t *testing.T) {
			a := referenceAssumptions()
			a.PaymentFrequency = frequency
			a.LoanTerm = 15
			a.HoldingPeriod = 20

			points := Project(a, Scenario{Name: ScenarioModerate})
			require.Len(t, points, 20)

			prev := a.LoanAmount
			for _, p := range points {
				assert.LessOrEqual(t, p.MortgageBalance, prev, "year %d", p.Year)
				assert.GreaterOrEqual(t, p.MortgageBalance, 0.0)
				prev = p.MortgageBalance
			}

			assert.Equal(t, 0.0, points[14].MortgageBalance, "paid off at term end")
			for _, p := range points[15:] {
				assert.Equal(t, 0.0, p.MortgageBalance)
				assert.Equal(t, 0.0, p.DebtService)
				assert.Equal(t, 0.0, p.PrincipalPaidThisYear)
				assert.Equal(t, 0.0, p.InterestPaid)
			}

			totalPrincipal := 0.0
			for _, p := range points {
				totalPrincipal += p.PrincipalPaidThisYear
			}
			assert.InDelta(t, a.LoanAmount, totalPrincipal, 1e-6)
		})
	}
}

func TestProject_MonthlyFrequencyUsesMonthlyPayments(t *testing.T) {
	a := referenceAssumptions()
	a.PaymentFrequency = FrequencyMonthly

	points := Project(a, Scenario{Name: ScenarioModerate})
	expected := formulas.AnnualDebtService(240000, 6.5, 30)
	assert.InDelta(t, expected, points[0].DebtService, 1e-6)

	schedule := formulas.AmortizationSchedule(240000, 6.5, 30, formulas.PeriodsMonthly)
	assert.InDelta(t, schedule[11].Balance, points[0].MortgageBalance, 1e-6)
}

func TestProject_ZeroInterestLoan(t *testing.T) {
	a := referenceAssumptions()
	a.InterestRate = 0
	a.LoanTerm = 10

	points := Project(a, Scenario{Name: ScenarioModerate})
	for _, p := range points {
		assert.False(t, math.IsNaN(p.NetCashFlow))
		assert.InDelta(t, 24000, p.DebtService, 1e-6)
		assert.Equal(t, 0.0, p.InterestPaid)
	}
	assert.Equal(t, 0.0, points[9].MortgageBalance)
}

func TestProject_CashPurchase(t *testing.T) {
	a := referenceAssumptions()
	a.LoanAmount = 0
	a.LoanTerm = 0
	a.DownPayment = 300000

	points := Project(a, Scenario{Name: ScenarioModerate})
	for _, p := range points {
		assert.Equal(t, 0.0, p.DebtService)
		assert.Equal(t, 0.0, p.MortgageBalance)
		assert.InDelta(t, p.PropertyValue, p.TotalEquity, 1e-9)
	}
}

func TestProject_TaxBenefit(t *testing.T) {
	a := referenceAssumptions()
	a.TaxRate = 24
	a.LandValue = 60000

	points := Project(a, Scenario{Name: ScenarioModerate})
	depreciation := (300000 + 15000 - 60000) / ResidentialRecoveryYears

	assert.InDelta(t, depreciation, points[0].Depreciation, 1e-9)
	assert.InDelta(t, (depreciation+points[0].InterestPaid)*0.24, points[0].TaxBenefit, 1e-9)
}

func TestProject_DepreciationStopsAtBasis(t *testing.T) {
	a := referenceAssumptions()
	a.HoldingPeriod = 30
	a.TaxRate = 20

	points := Project(a, Scenario{Name: ScenarioModerate})

	total := 0.0
	for _, p := range points {
		total += p.Depreciation
	}
	assert.InDelta(t, a.DepreciationBase(), total, 1e-6)
	assert.InDelta(t, a.DepreciationBase()/ResidentialRecoveryYears/2, points[27].Depreciation, 1e-6)
	assert.InDelta(t, 0.0, points[28].Depreciation, 1e-6)
}

func TestProject_TotalReturnComposition(t *testing.T) {
	a := referenceAssumptions()
	a.TaxRate = 22
	a.PropertyTax = 3000

	points := Project(a, Scenario{Name: ScenarioModerate})

	var principal, tax float64
	for _, p := range points {
		principal += p.PrincipalPaidThisYear
		tax += p.TaxBenefit
	}
	last := points[len(points)-1]
	expected := last.CumulativeCashFlow + (last.PropertyValue - a.PurchasePrice) + principal + tax

	assert.InDelta(t, expected, last.TotalReturn, 1e-6)
	assert.InDelta(t,
		formulas.AnnualizedReturn(last.TotalReturn, a.TotalInvestment(), last.Year),
		last.AnnualizedReturnPercent, 1e-9)
}

func TestProject_EmptyHorizon(t *testing.T) {
	a := referenceAssumptions()
	a.HoldingPeriod = 0
	assert.Empty(t, Project(a, Scenario{Name: ScenarioModerate}))
}

func TestProject_Deterministic(t *testing.T) {
	a := referenceAssumptions()
	a.RentGrowthRate = 2
	a.TaxRate = 25

	assert.Equal(t, Project(a, Scenario{Name: "x"}), Project(a, Scenario{Name: "x"}))
}

func TestRunScenarios_Ordering(t *testing.T) {
	a := referenceAssumptions()
	a.RentGrowthRate = 3

	results := RunScenarios(a, DefaultScenarios())
	require.Len(t, results, 3)

	conservative := results[ScenarioConservative]
	moderate := results[ScenarioModerate]
	optimistic := results[ScenarioOptimistic]

	require.Len(t, conservative, 10)
	require.Len(t, moderate, 10)
	require.Len(t, optimistic, 10)

	for i := range moderate {
		assert.Greater(t, optimistic[i].PropertyValue, moderate[i].PropertyValue, "year %d", i+1)
		assert.Greater(t, moderate[i].PropertyValue, conservative[i].PropertyValue, "year %d", i+1)
		// Loan paydown does not depend on the growth offsets
		assert.Equal(t, moderate[i].MortgageBalance, optimistic[i].MortgageBalance)
		assert.Equal(t, moderate[i].MortgageBalance, conservative[i].MortgageBalance)
	}

	assert.InDelta(t, 300000*1.05, optimistic[0].PropertyValue, 1e-9)
	assert.InDelta(t, 300000*1.03, conservative[0].PropertyValue, 1e-9)
}

func TestRunScenarios_MatchesSequentialProjection(t *testing.T) {
	a := referenceAssumptions()
	engine := NewEngine(workers.NewWorkerPool(2))

	results := engine.RunScenarios(a, DefaultScenarios())
	for _, s := range DefaultScenarios() {
		assert.Equal(t, Project(a, s), results[s.Name], s.Name)
	}
}

func TestDefaultScenarios(t *testing.T) {
	scenarios := DefaultScenarios()
	require.Len(t, scenarios, 3)

	assert.Equal(t, ScenarioNames(), []string{scenarios[0].Name, scenarios[1].Name, scenarios[2].Name})
	assert.Equal(t, -ScenarioOffsetPoints, scenarios[0].AppreciationDelta)
	assert.Equal(t, 0.0, scenarios[1].AppreciationDelta)
	assert.Equal(t, ScenarioOffsetPoints, scenarios[2].RentGrowthDelta)
}

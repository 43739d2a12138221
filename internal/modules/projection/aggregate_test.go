package projection

import (
	"math"
	"testing"

	"github.com/sameer10342432/realestate-tools/pkg/formulas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_CapRate(t *testing.T) {
	a := referenceAssumptions()
	a.PropertyTax = 3600
	a.Insurance = 1200
	a.Maintenance = 1200
	a.Repairs = 600
	a.OtherExpenses = 600

	summary := NewEngine(nil).Summarize(a)

	assert.InDelta(t, 7.6, summary.CapRate, 1e-9)
	assert.InDelta(t, 22800, summary.FirstYearNOI, 1e-9)
}

func TestAggregate_ReferenceSummary(t *testing.T) {
	a := referenceAssumptions()
	summary := NewEngine(nil).Summarize(a)

	moderate := summary.Scenarios[ScenarioModerate]
	require.Len(t, moderate, 10)

	assert.Equal(t, 84000.0, summary.TotalInvestment)
	assert.InDelta(t, 10.0, summary.CapRate, 1e-9)
	assert.InDelta(t, moderate[0].NetCashFlow/84000*100, summary.CashOnCashReturn, 1e-9)
	assert.InDelta(t, moderate[0].NetCashFlow/12, summary.MonthlyCashFlow, 1e-9)
	assert.InDelta(t, 300000*math.Pow(1.04, 10)-300000, summary.TotalAppreciation, 1e-6)
	assert.Equal(t, moderate[9].CumulativeCashFlow, summary.TotalCashFlow)
	assert.Equal(t, moderate[9].TotalReturn, summary.TotalReturn)
	assert.Equal(t, moderate[9].AnnualizedReturnPercent, summary.AnnualizedReturn)
	require.NotNil(t, summary.DebtServiceCoverage)

	require.Len(t, summary.Outcomes, 3)
	assert.Greater(t, summary.Outcomes[ScenarioOptimistic].FinalPropertyValue, summary.Outcomes[ScenarioModerate].FinalPropertyValue)
	assert.Greater(t, summary.Outcomes[ScenarioModerate].FinalPropertyValue, summary.Outcomes[ScenarioConservative].FinalPropertyValue)
}

func TestAggregate_TotalTaxBenefits(t *testing.T) {
	a := referenceAssumptions()
	a.TaxRate = 24

	summary := NewEngine(nil).Summarize(a)

	expected := 0.0
	for _, p := range summary.Scenarios[ScenarioModerate] {
		expected += p.TaxBenefit
	}
	assert.Greater(t, expected, 0.0)
	assert.InDelta(t, expected, summary.TotalTaxBenefits, 1e-9)
}

func TestAggregate_BreakEvenAtYearFive(t *testing.T) {
	a := Assumptions{
		PurchasePrice:  200000,
		DownPayment:    200000,
		MonthlyRent:    1000,
		RentGrowthRate: 3,
		PropertyTax:    12600,
		HoldingPeriod:  10,
	}

	summary := NewEngine(nil).Summarize(a)
	moderate := summary.Scenarios[ScenarioModerate]

	require.NotNil(t, summary.BreakEvenYear)
	assert.Equal(t, 5, *summary.BreakEvenYear)
	assert.LessOrEqual(t, moderate[3].CumulativeCashFlow, 0.0)
	assert.Greater(t, moderate[4].CumulativeCashFlow, 0.0)
}

func TestAggregate_NeverBreaksEven(t *testing.T) {
	a := referenceAssumptions()
	a.MonthlyRent = 500

	summary := NewEngine(nil).Summarize(a)

	assert.Nil(t, summary.BreakEvenYear)
	for _, p := range summary.Scenarios[ScenarioModerate] {
		assert.Less(t, p.CumulativeCashFlow, 0.0)
	}
}

func TestBreakEvenYear_FinalYearIsDistinctFromNever(t *testing.T) {
	points := []YearlyPoint{
		{Year: 1, CumulativeCashFlow: -300},
		{Year: 2, CumulativeCashFlow: -100},
		{Year: 3, CumulativeCashFlow: 50},
	}
	year := BreakEvenYear(points)
	require.NotNil(t, year)
	assert.Equal(t, 3, *year)

	points[2].CumulativeCashFlow = 0
	assert.Nil(t, BreakEvenYear(points), "zero is not a break-even")
	assert.Nil(t, BreakEvenYear(nil))
}

func TestAggregate_LossBeyondInvestmentIsClamped(t *testing.T) {
	a := referenceAssumptions()
	a.AppreciationRate = -15
	a.MonthlyRent = 0
	a.HoldingPeriod = 5

	summary := NewEngine(nil).Summarize(a)
	for _, p := range summary.Scenarios[ScenarioModerate] {
		assert.False(t, math.IsNaN(p.AnnualizedReturnPercent), "year %d", p.Year)
	}
	assert.Less(t, summary.TotalReturn, -a.TotalInvestment())
	assert.Equal(t, formulas.AnnualizedReturnFloor, summary.AnnualizedReturn)
}

func TestAggregate_EmptyModerate(t *testing.T) {
	a := referenceAssumptions()
	summary := Aggregate(nil, ScenarioResults{}, a)

	assert.Equal(t, 84000.0, summary.TotalInvestment)
	assert.Nil(t, summary.BreakEvenYear)
	assert.Empty(t, summary.Outcomes)
}

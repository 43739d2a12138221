package comparison

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/modules/projection"
	"github.com/sameer10342432/realestate-tools/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseAssumptions() projection.Assumptions {
	return projection.Assumptions{
		PurchasePrice:    300000,
		DownPayment:      60000,
		ClosingCosts:     9000,
		LoanAmount:       240000,
		InterestRate:     6.5,
		LoanTerm:         30,
		MonthlyRent:      2500,
		AppreciationRate: 4,
		HoldingPeriod:    10,
	}
}

func newTestComparer() *Comparer {
	return NewComparer(nil, workers.NewWorkerPool(2), zerolog.Nop())
}

func TestCompare_RanksByMetric(t *testing.T) {
	highRent := baseAssumptions()
	highRent.MonthlyRent = 3200

	highGrowth := baseAssumptions()
	highGrowth.AppreciationRate = 8

	result, err := newTestComparer().Compare([]Property{
		{Label: "baseline", Assumptions: baseAssumptions()},
		{Label: "high-rent", Assumptions: highRent},
		{Label: "high-growth", Assumptions: highGrowth},
	})
	require.NoError(t, err)
	require.Len(t, result.Properties, 3)

	assert.Equal(t, "baseline", result.Properties[0].Label)
	assert.Equal(t, "high-rent", result.Best[MetricCapRate])
	assert.Equal(t, "high-rent", result.Best[MetricCashOnCash])
	assert.Equal(t, "high-rent", result.Best[MetricMonthlyCashFlow])
	assert.Equal(t, "high-growth", result.Best[MetricTotalReturn])
	assert.Equal(t, "high-growth", result.Best[MetricAnnualizedReturn])
}

func TestCompare_InvalidPropertyIsReported(t *testing.T) {
	broken := baseAssumptions()
	broken.HoldingPeriod = 0

	result, err := newTestComparer().Compare([]Property{
		{Label: "broken", Assumptions: broken},
		{Label: "ok", Assumptions: baseAssumptions()},
	})
	require.NoError(t, err)

	assert.Nil(t, result.Properties[0].Metrics)
	assert.Contains(t, result.Properties[0].Error, "holding_period")
	require.NotNil(t, result.Properties[1].Metrics)

	for _, label := range result.Best {
		assert.Equal(t, "ok", label)
	}
}

func TestCompare_AllInvalid(t *testing.T) {
	broken := baseAssumptions()
	broken.PurchasePrice = 0

	result, err := newTestComparer().Compare([]Property{{Label: "x", Assumptions: broken}})
	require.NoError(t, err)
	assert.Empty(t, result.Best)
}

func TestCompare_MatchesEngine(t *testing.T) {
	a := baseAssumptions()
	result, err := newTestComparer().Compare([]Property{{Label: "only", Assumptions: a}})
	require.NoError(t, err)

	summary := projection.NewEngine(nil).Summarize(a.WithDefaults())
	m := result.Properties[0].Metrics
	require.NotNil(t, m)
	assert.Equal(t, summary.CapRate, m.CapRate)
	assert.Equal(t, summary.TotalReturn, m.TotalReturn)
	assert.Equal(t, summary.Scenarios[projection.ScenarioModerate][9].PropertyValue, m.FinalValue)
}

func TestCompare_InputErrors(t *testing.T) {
	c := newTestComparer()

	_, err := c.Compare(nil)
	assert.ErrorIs(t, err, ErrNoProperties)

	_, err = c.Compare([]Property{{Assumptions: baseAssumptions()}})
	assert.ErrorIs(t, err, ErrMissingLabel)

	_, err = c.Compare([]Property{
		{Label: "same", Assumptions: baseAssumptions()},
		{Label: "other", Assumptions: baseAssumptions()},
		{Label: "same", Assumptions: baseAssumptions()},
	})
	assert.ErrorIs(t, err, ErrDuplicateLabel)
	assert.Contains(t, err.Error(), `"same"`)

	many := make([]Property, MaxProperties+1)
	for i := range many {
		many[i] = Property{Label: fmt.Sprintf("p%d", i), Assumptions: baseAssumptions()}
	}
	_, err = c.Compare(many)
	assert.ErrorIs(t, err, ErrTooManyProperties)
}

func TestRank_TieGoesToFirst(t *testing.T) {
	m := &Metrics{CapRate: 5}
	best := rank([]PropertyResult{
		{Label: "a", Metrics: m},
		{Label: "b", Metrics: m},
	})
	assert.Equal(t, "a", best[MetricCapRate])
}

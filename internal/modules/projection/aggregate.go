package projection

import (
	"github.com/sameer10342432/realestate-tools/pkg/formulas"
)

// Aggregate derives the investment summary from the moderate sequence.
// All scenarios are attached for comparative display and summarized in Outcomes.
func Aggregate(moderate []YearlyPoint, all ScenarioResults, a Assumptions) Summary {
	summary := Summary{
		TotalInvestment: a.TotalInvestment(),
		Outcomes:        make(map[string]ScenarioOutcome, len(all)),
		Scenarios:       all,
	}

	for name, points := range all {
		if len(points) == 0 {
			continue
		}
		last := points[len(points)-1]
		summary.Outcomes[name] = ScenarioOutcome{
			FinalPropertyValue: last.PropertyValue,
			TotalCashFlow:      last.CumulativeCashFlow,
			TotalReturn:        last.TotalReturn,
			AnnualizedReturn:   last.AnnualizedReturnPercent,
		}
	}

	if len(moderate) == 0 {
		return summary
	}

	first := moderate[0]
	last := moderate[len(moderate)-1]

	summary.FirstYearNOI = formulas.NOI(first.AnnualIncome, first.TotalExpenses)
	summary.CapRate = formulas.CapRate(summary.FirstYearNOI, a.PurchasePrice)
	summary.CashOnCashReturn = formulas.CashOnCash(first.NetCashFlow, summary.TotalInvestment)
	summary.MonthlyCashFlow = first.NetCashFlow / 12
	summary.DebtServiceCoverage = formulas.DebtServiceCoverage(summary.FirstYearNOI, first.DebtService)

	summary.TotalCashFlow = last.CumulativeCashFlow
	summary.TotalAppreciation = last.PropertyValue - a.PurchasePrice
	summary.TotalReturn = last.TotalReturn
	summary.AnnualizedReturn = last.AnnualizedReturnPercent

	for _, p := range moderate {
		summary.TotalTaxBenefits += p.TaxBenefit
	}

	summary.BreakEvenYear = BreakEvenYear(moderate)

	return summary
}

// BreakEvenYear returns the first 1-based year whose cumulative cash flow is
// positive, or nil when the investment never breaks even within the sequence.
func BreakEvenYear(points []YearlyPoint) *int {
	for _, p := range points {
		if p.CumulativeCashFlow > 0 {
			year := p.Year
			return &year
		}
	}
	return nil
}

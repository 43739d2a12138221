package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sameer10342432/realestate-tools/internal/modules/comparison"
	"github.com/sameer10342432/realestate-tools/internal/modules/insurance"
	"github.com/sameer10342432/realestate-tools/internal/modules/market"
	"github.com/sameer10342432/realestate-tools/internal/modules/moving"
	"github.com/sameer10342432/realestate-tools/internal/modules/projection"
	"github.com/sameer10342432/realestate-tools/internal/modules/renovation"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func optionalFloat(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}

func breakEven(year *int) string {
	if year == nil {
		return "never"
	}
	return fmt.Sprintf("year %d", *year)
}

func printPayment(w io.Writer, r PaymentResult) error {
	tw := newTable(w)
	frequency := "annual"
	if r.PeriodsPerYear > 1 {
		frequency = "monthly"
	}
	fmt.Fprintf(tw, "Principal\t%s\n", money(r.Principal))
	fmt.Fprintf(tw, "Rate\t%s\n", percent(r.InterestRate))
	fmt.Fprintf(tw, "Term\t%d years (%s)\n", r.TermYears, frequency)
	fmt.Fprintf(tw, "Payment\t%s\n", money(r.Payment))
	fmt.Fprintf(tw, "Total interest\t%s\n", money(r.TotalInterest))

	if len(r.Schedule) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "PERIOD\tPAYMENT\tINTEREST\tPRINCIPAL\tBALANCE")
		for _, p := range r.Schedule {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.Period, money(p.Payment), money(p.Interest), money(p.Principal), money(p.Balance))
		}
	}
	return tw.Flush()
}

func printProjection(w io.Writer, s *projection.Summary) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Total investment\t%s\n", money(s.TotalInvestment))
	fmt.Fprintf(tw, "Cap rate\t%s\n", percent(s.CapRate))
	fmt.Fprintf(tw, "Cash-on-cash return\t%s\n", percent(s.CashOnCashReturn))
	fmt.Fprintf(tw, "First-year NOI\t%s\n", money(s.FirstYearNOI))
	fmt.Fprintf(tw, "Monthly cash flow\t%s\n", money(s.MonthlyCashFlow))
	fmt.Fprintf(tw, "Debt service coverage\t%s\n", optionalFloat(s.DebtServiceCoverage, "%.2f"))
	fmt.Fprintf(tw, "Total cash flow\t%s\n", money(s.TotalCashFlow))
	fmt.Fprintf(tw, "Total appreciation\t%s\n", money(s.TotalAppreciation))
	fmt.Fprintf(tw, "Total tax benefits\t%s\n", money(s.TotalTaxBenefits))
	fmt.Fprintf(tw, "Total return\t%s\n", money(s.TotalReturn))
	fmt.Fprintf(tw, "Annualized return\t%s\n", percent(s.AnnualizedReturn))
	fmt.Fprintf(tw, "Break-even\t%s\n", breakEven(s.BreakEvenYear))

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "SCENARIO\tFINAL VALUE\tCASH FLOW\tTOTAL RETURN\tANNUALIZED")
	for _, name := range projection.ScenarioNames() {
		o, ok := s.Outcomes[name]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", name, money(o.FinalPropertyValue), money(o.TotalCashFlow), money(o.TotalReturn), percent(o.AnnualizedReturn))
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "YEAR\tVALUE\tEQUITY\tINCOME\tEXPENSES\tDEBT SERVICE\tCASH FLOW\tCUMULATIVE\tBALANCE\tTOTAL RETURN")
	for _, p := range s.Scenarios[projection.ScenarioModerate] {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Year,
			money(p.PropertyValue),
			money(p.TotalEquity),
			money(p.AnnualIncome),
			money(p.TotalExpenses),
			money(p.DebtService),
			money(p.NetCashFlow),
			money(p.CumulativeCashFlow),
			money(p.MortgageBalance),
			money(p.TotalReturn),
		)
	}
	return tw.Flush()
}

func printComparison(w io.Writer, r *comparison.Result) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "PROPERTY\tINVESTMENT\tCAP RATE\tCASH-ON-CASH\tMONTHLY CF\tTOTAL RETURN\tANNUALIZED\tBREAK-EVEN")
	for _, p := range r.Properties {
		if p.Metrics == nil {
			fmt.Fprintf(tw, "%s\terror: %s\n", p.Label, p.Error)
			continue
		}
		m := p.Metrics
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Label,
			money(m.TotalInvestment),
			percent(m.CapRate),
			percent(m.CashOnCashReturn),
			money(m.MonthlyCashFlow),
			money(m.TotalReturn),
			percent(m.AnnualizedReturn),
			breakEven(m.BreakEvenYear),
		)
	}

	if len(r.Best) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "METRIC\tBEST")
		for _, metric := range sortedKeys(r.Best) {
			fmt.Fprintf(tw, "%s\t%s\n", metric, r.Best[metric])
		}
	}
	return tw.Flush()
}

func printMarket(w io.Writer, an *market.Analysis) error {
	tw := newTable(w)
	if an.Region != "" {
		fmt.Fprintf(tw, "Region\t%s\n", an.Region)
	}
	fmt.Fprintf(tw, "Current price\t%s\n", money(an.CurrentPrice))
	fmt.Fprintf(tw, "Historical growth\t%s\n", optionalFloat(an.HistoricalGrowth, "%.2f%%"))
	fmt.Fprintf(tw, "Growth used\t%s\n", percent(an.GrowthRateUsed))
	fmt.Fprintf(tw, "Moving average\t%s\n", optionalFloat(an.MovingAverage, "%.2f"))
	fmt.Fprintf(tw, "Exponential average\t%s\n", optionalFloat(an.ExponentialAvg, "%.2f"))
	fmt.Fprintf(tw, "Trend\t%s\n", an.Trend)
	fmt.Fprintf(tw, "Monthly change\tmean %s, std dev %s, median %s\n",
		percent(an.MonthlyChanges.Mean), percent(an.MonthlyChanges.StdDev), percent(an.MonthlyChanges.Median))
	fmt.Fprintf(tw, "Price to rent\t%.2f\n", an.PriceToRent)
	fmt.Fprintf(tw, "Gross yield\t%s\n", percent(an.GrossYield))

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "SCENARIO\tEND-OF-YEAR PRICES")
	for _, name := range sortedKeys(an.Projections) {
		prices := make([]string, len(an.Projections[name]))
		for i, p := range an.Projections[name] {
			prices[i] = money(p)
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, strings.Join(prices, "  "))
	}
	return tw.Flush()
}

func printRenovation(w io.Writer, est *renovation.Quote) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ROOM\tITEM\tQTY\tMATERIALS\tLABOR\tTOTAL")
	for _, room := range est.Rooms {
		for _, item := range room.Items {
			fmt.Fprintf(tw, "%s\t%s\t%g\t%s\t%s\t%s\n", room.Name, item.Name, item.Quantity, money(item.Materials), money(item.Labor), money(item.Total))
		}
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Quality\t%s (x%g region)\n", est.Quality, est.RegionalMultiplier)
	fmt.Fprintf(tw, "Subtotal\t%s\n", money(est.Subtotal))
	fmt.Fprintf(tw, "Contingency\t%s\n", money(est.Contingency))
	fmt.Fprintf(tw, "Total\t%s\n", money(est.Total))
	fmt.Fprintf(tw, "Per square foot\t%s\n", optionalFloat(est.CostPerSquareFoot, "%.2f"))
	return tw.Flush()
}

func printMoving(w io.Writer, est *moving.Quote) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ROOM\tCUBIC FEET\tPOUNDS")
	for _, room := range est.Rooms {
		fmt.Fprintf(tw, "%s\t%.0f\t%.0f\n", room.Name, room.CubicFeet, room.Pounds)
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Service\t%s\n", est.ServiceLevel)
	fmt.Fprintf(tw, "Volume\t%.0f cu ft, %.0f lb\n", est.CubicFeet, est.Pounds)
	fmt.Fprintf(tw, "Trucks\t%d x %s\n", est.Trucks, est.TruckSize)
	fmt.Fprintf(tw, "Crew\t%d movers, %.1f hours, %d days\n", est.Movers, est.Hours, est.Days)
	fmt.Fprintf(tw, "Transport\t%s\n", money(est.Breakdown.Transport))
	fmt.Fprintf(tw, "Labor\t%s\n", money(est.Breakdown.Labor))
	fmt.Fprintf(tw, "Fuel\t%s\n", money(est.Breakdown.Fuel))
	fmt.Fprintf(tw, "Packing\t%s\n", money(est.Breakdown.Packing))
	fmt.Fprintf(tw, "Valuation\t%s\n", money(est.Breakdown.Valuation))
	fmt.Fprintf(tw, "Total\t%s (%s to %s)\n", money(est.Total), money(est.Low), money(est.High))
	return tw.Flush()
}

func printInsurance(w io.Writer, est *insurance.Quote) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Dwelling\t%s\n", money(est.Coverages.Dwelling))
	fmt.Fprintf(tw, "Other structures\t%s\n", money(est.Coverages.OtherStructures))
	fmt.Fprintf(tw, "Personal property\t%s\n", money(est.Coverages.PersonalProperty))
	fmt.Fprintf(tw, "Loss of use\t%s\n", money(est.Coverages.LossOfUse))
	fmt.Fprintf(tw, "Liability\t%s\n", money(est.Coverages.Liability))

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "FACTOR\tVALUE\tMULTIPLIER")
	for _, f := range est.Factors {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\n", f.Name, f.Value, f.Multiplier)
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Base premium\t%s\n", money(est.BasePremium))
	fmt.Fprintf(tw, "Discount\t%s\n", percent(est.DiscountPercent))
	fmt.Fprintf(tw, "Liability surcharge\t%s\n", money(est.LiabilitySurcharge))
	fmt.Fprintf(tw, "Annual premium\t%s\n", money(est.AnnualPremium))
	fmt.Fprintf(tw, "Monthly premium\t%s\n", money(est.MonthlyPremium))
	return tw.Flush()
}

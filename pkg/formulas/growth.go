package formulas

import "math"

// GrowthFactor returns (1 + rate)^years for a percentage rate
func GrowthFactor(annualRatePercent float64, years int) float64 {
	return math.Pow(1+annualRatePercent/100, float64(years))
}

// GrownValue compounds baseValue for the given number of years
func GrownValue(baseValue, annualRatePercent float64, years int) float64 {
	return baseValue * GrowthFactor(annualRatePercent, years)
}

// ProjectGrowth returns the end-of-year values of baseValue under compound growth.
// Index 0 is the end of year 1: value[i] = base * (1+rate)^(i+1).
// Negative rates model decline and use the same formula.
func ProjectGrowth(baseValue, annualRatePercent float64, horizonYears int) []float64 {
	if horizonYears <= 0 {
		return []float64{}
	}

	values := make([]float64, horizonYears)
	for i := range values {
		values[i] = GrownValue(baseValue, annualRatePercent, i+1)
	}
	return values
}

// CAGR returns the compound annual growth rate, as a percentage, between two values
func CAGR(startValue, endValue float64, years float64) *float64 {
	if startValue <= 0 || endValue <= 0 || years <= 0 {
		return nil
	}
	cagr := (math.Pow(endValue/startValue, 1/years) - 1) * 100
	return &cagr
}

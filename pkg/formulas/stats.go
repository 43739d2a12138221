package formulas

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Median returns the empirical median without modifying the input
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// PercentChanges converts a series into period-over-period percentage changes
// changes[i] = (values[i+1] - values[i]) / values[i] * 100
func PercentChanges(values []float64) []float64 {
	if len(values) < 2 {
		return []float64{}
	}

	changes := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] != 0 {
			changes[i-1] = (values[i] - values[i-1]) / values[i-1] * 100
		}
	}
	return changes
}

// CumulativeSum returns the running totals of values
func CumulativeSum(values []float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}
	return floats.CumSum(make([]float64, len(values)), values)
}

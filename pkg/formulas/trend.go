package formulas

import (
	"math"

	"github.com/markcheno/go-talib"
)

// SMA returns the latest simple moving average over period values,
// or nil when the series is shorter than the period.
func SMA(values []float64, period int) *float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	sma := talib.Sma(values, period)
	if len(sma) > 0 && !math.IsNaN(sma[len(sma)-1]) {
		result := sma[len(sma)-1]
		return &result
	}
	return nil
}

// EMA returns the latest exponential moving average.
//
//	EMA_t = value_t * k + EMA_(t-1) * (1 - k), k = 2 / (period + 1)
//
// A series shorter than the period falls back to its plain mean.
func EMA(values []float64, period int) *float64 {
	if len(values) == 0 || period <= 0 {
		return nil
	}
	if len(values) < period {
		mean := Mean(values)
		return &mean
	}

	ema := talib.Ema(values, period)
	if len(ema) > 0 && !math.IsNaN(ema[len(ema)-1]) {
		result := ema[len(ema)-1]
		return &result
	}
	return SMA(values, period)
}

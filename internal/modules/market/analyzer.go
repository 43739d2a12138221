package market

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/modules/projection"
	"github.com/sameer10342432/realestate-tools/pkg/formulas"
	"gonum.org/v1/gonum/floats"
)

// Defaults and limits
const (
	DefaultTrendWindow = 6
	MaxProjectionYears = 50
	// trendBand is the relative gap to the moving average below which the market counts as flat
	trendBand = 0.005
)

// Errors
var (
	ErrInvalidInput = errors.New("invalid market input")
	ErrNoHistory    = errors.New("price history is empty")
)

// Analyzer performs market analyses
type Analyzer struct {
	log zerolog.Logger
}

// NewAnalyzer creates a market analyzer
func NewAnalyzer(log zerolog.Logger) *Analyzer {
	return &Analyzer{
		log: log.With().Str("component", "market").Logger(),
	}
}

// Analyze runs the analysis for one market
func (an *Analyzer) Analyze(in Input) (*Analysis, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	window := in.TrendWindow
	if window <= 0 {
		window = DefaultTrendWindow
	}

	history := in.PriceHistory
	current := history[len(history)-1]

	changes := formulas.PercentChanges(history)
	stats := ChangeStats{
		Mean:   formulas.Mean(changes),
		StdDev: formulas.StdDev(changes),
		Median: formulas.Median(changes),
	}
	if len(changes) > 0 {
		stats.Min = floats.Min(changes)
		stats.Max = floats.Max(changes)
	}

	var historical *float64
	if len(history) > 1 {
		historical = formulas.CAGR(history[0], current, float64(len(history)-1)/12)
	}

	growth := 0.0
	switch {
	case in.GrowthRate != nil:
		growth = *in.GrowthRate
	case historical != nil:
		growth = *historical
	}
	// Keep the conservative scenario's compounding base positive
	growth = math.Max(growth, -99+projection.ScenarioOffsetPoints)

	sma := formulas.SMA(history, window)
	ema := formulas.EMA(history, window)

	annualRent := in.MonthlyRent * 12
	analysis := &Analysis{
		Region:           in.Region,
		CurrentPrice:     current,
		MonthlyChanges:   stats,
		HistoricalGrowth: historical,
		GrowthRateUsed:   growth,
		MovingAverage:    sma,
		ExponentialAvg:   ema,
		Trend:            trendDirection(current, sma),
		PriceToRent:      formulas.PriceToRentRatio(current, annualRent),
		GrossYield:       formulas.GrossRentalYield(annualRent, current),
		Projections:      make(map[string][]float64, 3),
	}

	for _, s := range projection.DefaultScenarios() {
		analysis.Projections[s.Name] = formulas.ProjectGrowth(current, growth+s.AppreciationDelta, in.Years)
	}

	an.log.Debug().
		Str("region", in.Region).
		Int("months", len(history)).
		Float64("growth", growth).
		Str("trend", analysis.Trend).
		Msg("Market analyzed")

	return analysis, nil
}

// trendDirection compares the latest price with its moving average
func trendDirection(current float64, sma *float64) string {
	if sma == nil || *sma == 0 {
		return TrendInsufficient
	}
	gap := (current - *sma) / *sma
	switch {
	case gap > trendBand:
		return TrendRising
	case gap < -trendBand:
		return TrendFalling
	default:
		return TrendFlat
	}
}

func validate(in Input) error {
	if len(in.PriceHistory) == 0 {
		return ErrNoHistory
	}
	for i, p := range in.PriceHistory {
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			return fmt.Errorf("%w: price_history[%d] must be a positive number", ErrInvalidInput, i)
		}
	}
	if math.IsNaN(in.MonthlyRent) || math.IsInf(in.MonthlyRent, 0) || in.MonthlyRent < 0 {
		return fmt.Errorf("%w: monthly_rent must be a non-negative number", ErrInvalidInput)
	}
	if in.GrowthRate != nil && (math.IsNaN(*in.GrowthRate) || math.IsInf(*in.GrowthRate, 0) || *in.GrowthRate <= -100) {
		return fmt.Errorf("%w: growth_rate must be greater than -100", ErrInvalidInput)
	}
	if in.Years <= 0 || in.Years > MaxProjectionYears {
		return fmt.Errorf("%w: years must be between 1 and %d", ErrInvalidInput, MaxProjectionYears)
	}
	if in.TrendWindow < 0 {
		return fmt.Errorf("%w: trend_window must not be negative", ErrInvalidInput)
	}
	return nil
}

// IsInputError reports whether err is caused by invalid input
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNoHistory)
}

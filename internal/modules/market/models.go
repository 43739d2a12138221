// Package market analyzes a local housing market from its monthly median price
// history and projects prices forward under three growth scenarios.
package market

// Trend directions
const (
	TrendRising       = "rising"
	TrendFalling      = "falling"
	TrendFlat         = "flat"
	TrendInsufficient = "insufficient_data"
)

// Input describes one market
type Input struct {
	Region string `json:"region" yaml:"region"`
	// PriceHistory holds monthly median sale prices, oldest first
	PriceHistory []float64 `json:"price_history" yaml:"price_history"`
	// MonthlyRent is the current median monthly rent
	MonthlyRent float64 `json:"monthly_rent" yaml:"monthly_rent"`
	// GrowthRate overrides the growth derived from the history (annual %)
	GrowthRate *float64 `json:"growth_rate,omitempty" yaml:"growth_rate,omitempty"`
	Years      int      `json:"years" yaml:"years"`
	// TrendWindow is the moving-average window in months
	TrendWindow int `json:"trend_window,omitempty" yaml:"trend_window,omitempty"`
}

// ChangeStats summarizes month-over-month price changes in percent
type ChangeStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Analysis is the result of a market analysis
type Analysis struct {
	Region           string               `json:"region"`
	CurrentPrice     float64              `json:"current_price"`
	MonthlyChanges   ChangeStats          `json:"monthly_changes"`
	HistoricalGrowth *float64             `json:"historical_growth"` // annualized %, nil when undefined
	GrowthRateUsed   float64              `json:"growth_rate_used"`
	MovingAverage    *float64             `json:"moving_average"`
	ExponentialAvg   *float64             `json:"exponential_average"`
	Trend            string               `json:"trend"`
	PriceToRent      float64              `json:"price_to_rent"`
	GrossYield       float64              `json:"gross_yield"`
	Projections      map[string][]float64 `json:"projections"` // scenario -> end-of-year prices
}

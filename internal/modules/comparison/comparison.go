// Package comparison ranks several candidate properties side by side using
// the projection engine's headline metrics.
package comparison

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/modules/projection"
	"github.com/sameer10342432/realestate-tools/internal/workers"
	"gonum.org/v1/gonum/floats"
)

// MaxProperties bounds a single comparison request
const MaxProperties = 20

// Metric names used in Result.Best
const (
	MetricCapRate          = "cap_rate"
	MetricCashOnCash       = "cash_on_cash_return"
	MetricTotalReturn      = "total_return"
	MetricAnnualizedReturn = "annualized_return"
	MetricMonthlyCashFlow  = "monthly_cash_flow"
)

// Errors
var (
	ErrNoProperties      = errors.New("at least one property is required")
	ErrTooManyProperties = errors.New("too many properties to compare")
	ErrMissingLabel      = errors.New("every property needs a label")
	ErrDuplicateLabel    = errors.New("property labels must be unique")
)

// Property is one labelled candidate
type Property struct {
	Label       string                 `json:"label" yaml:"label"`
	Assumptions projection.Assumptions `json:"assumptions" yaml:"assumptions"`
}

// Metrics are the headline figures compared across properties
type Metrics struct {
	TotalInvestment  float64 `json:"total_investment"`
	CapRate          float64 `json:"cap_rate"`
	CashOnCashReturn float64 `json:"cash_on_cash_return"`
	MonthlyCashFlow  float64 `json:"monthly_cash_flow"`
	TotalReturn      float64 `json:"total_return"`
	AnnualizedReturn float64 `json:"annualized_return"`
	FinalValue       float64 `json:"final_value"`
	BreakEvenYear    *int    `json:"break_even_year"`
}

// PropertyResult is either the metrics of a property or the reason it could not be evaluated
type PropertyResult struct {
	Label   string   `json:"label"`
	Metrics *Metrics `json:"metrics,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Result is the outcome of a comparison
type Result struct {
	Properties []PropertyResult  `json:"properties"`
	Best       map[string]string `json:"best"` // metric -> label
}

// Comparer evaluates properties on the worker pool
type Comparer struct {
	engine *projection.Engine
	pool   *workers.WorkerPool
	log    zerolog.Logger
}

// NewComparer creates a comparer
func NewComparer(engine *projection.Engine, pool *workers.WorkerPool, log zerolog.Logger) *Comparer {
	if engine == nil {
		engine = projection.NewEngine(nil)
	}
	if pool == nil {
		pool = workers.NewWorkerPool(workers.DefaultWorkers)
	}
	return &Comparer{
		engine: engine,
		pool:   pool,
		log:    log.With().Str("component", "comparison").Logger(),
	}
}

// Compare evaluates every property. An invalid property is reported in its
// result and excluded from the rankings; it does not fail the comparison.
func (c *Comparer) Compare(properties []Property) (*Result, error) {
	if len(properties) == 0 {
		return nil, ErrNoProperties
	}
	if len(properties) > MaxProperties {
		return nil, ErrTooManyProperties
	}
	seen := make(map[string]bool, len(properties))
	for _, p := range properties {
		if p.Label == "" {
			return nil, ErrMissingLabel
		}
		if seen[p.Label] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, p.Label)
		}
		seen[p.Label] = true
	}

	results := workers.Map(c.pool, properties, c.evaluate)

	result := &Result{
		Properties: results,
		Best:       rank(results),
	}

	c.log.Debug().
		Int("properties", len(properties)).
		Int("ranked", countValid(results)).
		Msg("Properties compared")

	return result, nil
}

func (c *Comparer) evaluate(p Property) PropertyResult {
	a := p.Assumptions.WithDefaults()
	if err := a.Validate(); err != nil {
		return PropertyResult{Label: p.Label, Error: err.Error()}
	}

	summary := c.engine.Summarize(a)
	final := 0.0
	if moderate := summary.Scenarios[projection.ScenarioModerate]; len(moderate) > 0 {
		final = moderate[len(moderate)-1].PropertyValue
	}

	return PropertyResult{
		Label: p.Label,
		Metrics: &Metrics{
			TotalInvestment:  summary.TotalInvestment,
			CapRate:          summary.CapRate,
			CashOnCashReturn: summary.CashOnCashReturn,
			MonthlyCashFlow:  summary.MonthlyCashFlow,
			TotalReturn:      summary.TotalReturn,
			AnnualizedReturn: summary.AnnualizedReturn,
			FinalValue:       final,
			BreakEvenYear:    summary.BreakEvenYear,
		},
	}
}

// rank picks the best property per metric. Ties go to the earliest property.
func rank(results []PropertyResult) map[string]string {
	best := make(map[string]string)

	var labels []string
	columns := map[string][]float64{}
	for _, r := range results {
		if r.Metrics == nil {
			continue
		}
		labels = append(labels, r.Label)
		columns[MetricCapRate] = append(columns[MetricCapRate], r.Metrics.CapRate)
		columns[MetricCashOnCash] = append(columns[MetricCashOnCash], r.Metrics.CashOnCashReturn)
		columns[MetricTotalReturn] = append(columns[MetricTotalReturn], r.Metrics.TotalReturn)
		columns[MetricAnnualizedReturn] = append(columns[MetricAnnualizedReturn], r.Metrics.AnnualizedReturn)
		columns[MetricMonthlyCashFlow] = append(columns[MetricMonthlyCashFlow], r.Metrics.MonthlyCashFlow)
	}
	if len(labels) == 0 {
		return best
	}

	for metric, values := range columns {
		best[metric] = labels[floats.MaxIdx(values)]
	}
	return best
}

func countValid(results []PropertyResult) int {
	n := 0
	for _, r := range results {
		if r.Metrics != nil {
			n++
		}
	}
	return n
}

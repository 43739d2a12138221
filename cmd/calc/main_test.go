package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sameer10342432/realestate-tools/internal/modules/comparison"
	"github.com/sameer10342432/realestate-tools/internal/modules/projection"
	"github.com/sameer10342432/realestate-tools/internal/modules/renovation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const assumptionsYAML = `purchase_price: 300000
down_payment: 60000
closing_costs: 9000
renovation_costs: 15000
loan_amount: 240000
interest_rate: 6.5
loan_term: 30
monthly_rent: 2500
appreciation_rate: 4
holding_period: 10
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{"payment", "project", "compare", "market", "renovate", "move", "insure"} {
		assert.Contains(t, names, want)
	}
}

func TestPayment_ZeroRateTable(t *testing.T) {
	out, err := run(t, "payment", "--principal", "100000", "--rate", "0", "--term", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "Payment")
	assert.Contains(t, out, "10000.00")
	assert.Contains(t, out, "10 years (annual)")
}

func TestPayment_MonthlyScheduleJSON(t *testing.T) {
	out, err := run(t, "payment", "--principal", "200000", "--rate", "6", "--term", "30", "--monthly", "--schedule", "--json")
	require.NoError(t, err)

	var result PaymentResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, 12, result.PeriodsPerYear)
	assert.InDelta(t, 1199.10, result.Payment, 0.01)
	require.Len(t, result.Schedule, 360)
	assert.Equal(t, 0.0, result.Schedule[359].Balance)
	assert.Greater(t, result.TotalInterest, 0.0)
}

func TestPayment_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing principal", []string{"payment", "--rate", "5"}},
		{"negative principal", []string{"payment", "--principal", "-1"}},
		{"rate above 100", []string{"payment", "--principal", "1000", "--rate", "150"}},
		{"zero term", []string{"payment", "--principal", "1000", "--term", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestProject_Table(t *testing.T) {
	path := writeFile(t, "assumptions.yaml", assumptionsYAML)

	out, err := run(t, "project", "-f", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Cap rate")
	assert.Contains(t, out, "Break-even")
	for _, name := range projection.ScenarioNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "YEAR")
}

func TestProject_JSONMatchesEngine(t *testing.T) {
	path := writeFile(t, "assumptions.yaml", assumptionsYAML)

	out, err := run(t, "project", "-f", path, "--json")
	require.NoError(t, err)

	var summary projection.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))

	require.Len(t, summary.Scenarios[projection.ScenarioModerate], 10)
	assert.Equal(t, 84000.0, summary.TotalInvestment)
	assert.Len(t, summary.Outcomes, 3)
}

func TestProject_AcceptsJSONFile(t *testing.T) {
	path := writeFile(t, "assumptions.json", `{"purchase_price": 200000, "down_payment": 200000, "monthly_rent": 1500, "holding_period": 5}`)

	out, err := run(t, "project", "-f", path, "--json")
	require.NoError(t, err)

	var summary projection.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Len(t, summary.Scenarios[projection.ScenarioModerate], 5)
}

func TestProject_Errors(t *testing.T) {
	t.Run("missing file flag", func(t *testing.T) {
		_, err := run(t, "project")
		assert.Error(t, err)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := run(t, "project", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "purchase_price: [unterminated")
		_, err := run(t, "project", "-f", path)
		assert.Error(t, err)
	})

	t.Run("invalid assumptions", func(t *testing.T) {
		path := writeFile(t, "invalid.yaml", "purchase_price: -5\nholding_period: 10\n")
		_, err := run(t, "project", "-f", path)
		require.Error(t, err)
		assert.True(t, projection.IsValidationError(err))
	})
}

func TestCompare_RanksProperties(t *testing.T) {
	path := writeFile(t, "properties.yaml", `- label: cheap
  assumptions:
    purchase_price: 200000
    down_payment: 200000
    monthly_rent: 2000
    holding_period: 5
- label: pricey
  assumptions:
    purchase_price: 400000
    down_payment: 400000
    monthly_rent: 2000
    holding_period: 5
`)

	out, err := run(t, "compare", "-f", path, "--json")
	require.NoError(t, err)

	var result comparison.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Properties, 2)
	assert.Equal(t, "cheap", result.Best[comparison.MetricCapRate])

	out, err = run(t, "compare", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "cheap")
	assert.Contains(t, out, "pricey")
	assert.Contains(t, out, comparison.MetricCapRate)
}

func TestMarket_Table(t *testing.T) {
	path := writeFile(t, "market.yaml", `region: springfield
price_history: [300000, 301000, 302500, 303000, 304200, 305000, 306500]
monthly_rent: 1800
years: 3
`)

	out, err := run(t, "market", "-f", path)
	require.NoError(t, err)

	assert.Contains(t, out, "springfield")
	assert.Contains(t, out, "Gross yield")
	assert.Contains(t, out, projection.ScenarioModerate)
}

func TestRenovate_JSON(t *testing.T) {
	path := writeFile(t, "renovation.yaml", `rooms:
  - name: kitchen
    items:
      - {name: cabinets, kind: cabinets, quantity: 20}
      - {name: counters, kind: countertop, quantity: 40}
      - {name: range, kind: appliance, unit_cost: 2000, quantity: 1}
`)

	out, err := run(t, "renovate", "-f", path, "--json")
	require.NoError(t, err)

	var est renovation.Quote
	require.NoError(t, json.Unmarshal([]byte(out), &est))
	assert.InDelta(t, 10000, est.Subtotal, 1e-9)
	assert.InDelta(t, 11000, est.Total, 1e-9)
}

func TestMove_Table(t *testing.T) {
	path := writeFile(t, "moving.yaml", `distance_miles: 20
rooms:
  - name: bedroom
    items:
      - {kind: bed_queen, quantity: 1}
      - {kind: box_medium, quantity: 10}
`)

	out, err := run(t, "move", "-f", path)
	require.NoError(t, err)

	assert.Contains(t, out, "bedroom")
	assert.Contains(t, out, "Trucks")
	assert.Contains(t, out, "Total")
}

func TestInsure_Table(t *testing.T) {
	path := writeFile(t, "insurance.yaml", "square_feet: 2000\nhome_age: 10\n")

	out, err := run(t, "insure", "-f", path)
	require.NoError(t, err)

	assert.Contains(t, out, "300000.00")
	assert.Contains(t, out, "Annual premium")
}

func TestEstimators_RejectInvalidInput(t *testing.T) {
	tests := []struct {
		cmd     string
		content string
	}{
		{"renovate", "rooms: []\n"},
		{"move", "rooms: []\n"},
		{"insure", "square_feet: -10\n"},
		{"market", "price_history: [100]\nyears: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			path := writeFile(t, "input.yaml", tt.content)
			_, err := run(t, tt.cmd, "-f", path)
			assert.Error(t, err)
		})
	}
}

func TestWorkersFlag_Validated(t *testing.T) {
	_, err := run(t, "payment", "--principal", "1000", "--workers", "0")
	assert.Error(t, err)
}

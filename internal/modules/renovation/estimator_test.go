package renovation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kitchen() Room {
	return Room{
		Name: "kitchen",
		// 5000 + 3000 + 2000 at standard quality
		Items: []Item{
			{Name: "cabinets", Kind: "cabinets", Quantity: 20},
			{Name: "counters", Kind: "countertop", Quantity: 40},
			{Name: "range", Kind: "appliance", UnitCost: 2000, Quantity: 1},
		},
	}
}

func TestEstimate_StandardDefaults(t *testing.T) {
	est, err := Estimate(Input{Rooms: []Room{kitchen()}})
	require.NoError(t, err)

	assert.Equal(t, QualityStandard, est.Quality)
	assert.Equal(t, 1.0, est.RegionalMultiplier)
	require.Len(t, est.Rooms, 1)
	require.Len(t, est.Rooms[0].Items, 3)

	assert.InDelta(t, 10000, est.Subtotal, 1e-9)
	assert.InDelta(t, 4000, est.Labor, 1e-9)
	assert.InDelta(t, 6000, est.Materials, 1e-9)
	assert.InDelta(t, 1000, est.Contingency, 1e-9)
	assert.InDelta(t, 11000, est.Total, 1e-9)
	assert.Nil(t, est.CostPerSquareFoot)

	assert.Equal(t, 2000.0, est.Rooms[0].Items[2].UnitCost, "explicit unit cost wins")
}

func TestEstimate_QualityAndRegionScale(t *testing.T) {
	base, err := Estimate(Input{Rooms: []Room{kitchen()}})
	require.NoError(t, err)

	for quality, multiplier := range QualityMultipliers {
		t.Run(quality, func(t *testing.T) {
			est, err := Estimate(Input{Rooms: []Room{kitchen()}, Quality: quality, RegionalMultiplier: 1.2})
			require.NoError(t, err)
			assert.InDelta(t, base.Total*multiplier*1.2, est.Total, 1e-6)
		})
	}
}

func TestEstimate_RoomsAddUp(t *testing.T) {
	bath := Room{Name: "bath", Items: []Item{
		{Name: "vanity", Kind: "vanity", Quantity: 1},
		{Name: "toilet", Kind: "toilet", Quantity: 1},
		{Name: "tile", Kind: "tile", Quantity: 60},
	}}

	est, err := Estimate(Input{
		Rooms:           []Room{kitchen(), bath},
		LaborShare:      percent(50),
		ContingencyRate: percent(15),
		SquareFeet:      1000,
	})
	require.NoError(t, err)

	sum := 0.0
	for _, r := range est.Rooms {
		sum += r.Total
		assert.InDelta(t, r.Total, r.Labor+r.Materials, 1e-9)
	}
	assert.InDelta(t, 12250, sum, 1e-9)
	assert.InDelta(t, sum, est.Subtotal, 1e-9)
	assert.InDelta(t, sum*1.15, est.Total, 1e-9)
	assert.InDelta(t, est.Labor, est.Materials, 1e-9)

	require.NotNil(t, est.CostPerSquareFoot)
	assert.InDelta(t, est.Total/1000, *est.CostPerSquareFoot, 1e-9)
}

func TestEstimate_ExplicitZeroPercentagesKept(t *testing.T) {
	est, err := Estimate(Input{
		Rooms:           []Room{{Name: "shed", Items: []Item{{Name: "door", Kind: "door", UnitCost: 1000, Quantity: 1}}}},
		LaborShare:      percent(0),
		ContingencyRate: percent(0),
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, est.Labor)
	assert.InDelta(t, 1000, est.Materials, 1e-9)
	assert.Equal(t, 0.0, est.Contingency)
	assert.InDelta(t, 1000, est.Total, 1e-9)
}

func TestEstimate_OmittedPercentagesUseDefaults(t *testing.T) {
	est, err := Estimate(Input{
		Rooms: []Room{{Name: "shed", Items: []Item{{Name: "door", Kind: "door", UnitCost: 1000, Quantity: 1}}}},
	})
	require.NoError(t, err)

	assert.InDelta(t, 1000*DefaultLaborShare/100, est.Labor, 1e-9)
	assert.InDelta(t, 1000*DefaultContingencyRate/100, est.Contingency, 1e-9)
}

func TestEstimate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"no rooms", Input{}},
		{"unknown quality", Input{Rooms: []Room{kitchen()}, Quality: "gold"}},
		{"negative region", Input{Rooms: []Room{kitchen()}, RegionalMultiplier: -1}},
		{"labor over 100", Input{Rooms: []Room{kitchen()}, LaborShare: percent(120)}},
		{"negative contingency", Input{Rooms: []Room{kitchen()}, ContingencyRate: percent(-1)}},
		{"unknown kind", Input{Rooms: []Room{{Name: "x", Items: []Item{{Name: "pool", Kind: "pool", Quantity: 1}}}}}},
		{"negative quantity", Input{Rooms: []Room{{Name: "x", Items: []Item{{Name: "p", Kind: "paint", Quantity: -5}}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Estimate(tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func percent(v float64) *float64 {
	return &v
}

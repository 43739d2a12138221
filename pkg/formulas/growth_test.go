package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectGrowth(t *testing.T) {
	values := ProjectGrowth(100000, 4, 10)
	require.Len(t, values, 10)

	assert.InDelta(t, 104000, values[0], 1e-9)
	assert.InDelta(t, 100000*math.Pow(1.04, 10), values[9], 1e-9)
}

func TestProjectGrowth_Deterministic(t *testing.T) {
	first := ProjectGrowth(123456.78, 3.7, 25)
	second := ProjectGrowth(123456.78, 3.7, 25)
	assert.Equal(t, first, second)
}

func TestProjectGrowth_NegativeRate(t *testing.T) {
	values := ProjectGrowth(200000, -2, 3)
	require.Len(t, values, 3)
	assert.InDelta(t, 196000, values[0], 1e-9)
	assert.InDelta(t, 200000*math.Pow(0.98, 3), values[2], 1e-9)
	assert.Less(t, values[2], values[1])
}

func TestProjectGrowth_EmptyHorizon(t *testing.T) {
	assert.Empty(t, ProjectGrowth(100000, 4, 0))
	assert.Empty(t, ProjectGrowth(100000, 4, -3))
}

func TestGrownValue(t *testing.T) {
	assert.Equal(t, 30000.0, GrownValue(30000, 3, 0))
	assert.InDelta(t, 30900, GrownValue(30000, 3, 1), 1e-9)
}

func TestCAGR(t *testing.T) {
	cagr := CAGR(100000, 100000*math.Pow(1.05, 8), 8)
	require.NotNil(t, cagr)
	assert.InDelta(t, 5.0, *cagr, 1e-9)

	assert.Nil(t, CAGR(0, 100, 5))
	assert.Nil(t, CAGR(100, 200, 0))
}

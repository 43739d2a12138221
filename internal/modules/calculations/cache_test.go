package calculations

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/modules/projection"
	testingpkg "github.com/sameer10342432/realestate-tools/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *time.Time) {
	t.Helper()
	db, cleanup := testingpkg.NewTestDB(t, "cache")
	t.Cleanup(cleanup)

	clock := time.Unix(1700000000, 0)
	cache := NewCache(db.Conn(), time.Hour, zerolog.Nop())
	cache.now = func() time.Time { return clock }
	return cache, &clock
}

type payload struct {
	Name   string
	Values []float64
	Year   *int
}

func TestCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)

	year := 4
	require.NoError(t, cache.Set("k", payload{Name: "a", Values: []float64{1.5, 2.5}, Year: &year}))

	var got payload
	found, err := cache.Get("k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "a", got.Name)
	assert.Equal(t, []float64{1.5, 2.5}, got.Values)
	require.NotNil(t, got.Year)
	assert.Equal(t, 4, *got.Year)
}

func TestCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	var got payload
	found, err := cache.Get("missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Overwrite(t *testing.T) {
	cache, _ := newTestCache(t)

	require.NoError(t, cache.Set("k", payload{Name: "first"}))
	require.NoError(t, cache.Set("k", payload{Name: "second"}))

	var got payload
	found, err := cache.Get("k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "second", got.Name)

	n, err := cache.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCache_Expiry(t *testing.T) {
	cache, clock := newTestCache(t)

	require.NoError(t, cache.Set("short", payload{Name: "x"}))
	require.NoError(t, cache.SetWithExpiry("long", payload{Name: "y"}, clock.Add(3*time.Hour)))

	*clock = clock.Add(2 * time.Hour)

	var got payload
	found, err := cache.Get("short", &got)
	require.NoError(t, err)
	assert.False(t, found, "expired entries are misses")

	removed, err := cache.DeleteExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	found, err = cache.Get("long", &got)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCache_DeleteAndPrefix(t *testing.T) {
	cache, _ := newTestCache(t)

	require.NoError(t, cache.Set("projection:1", payload{}))
	require.NoError(t, cache.Set("projection:2", payload{}))
	require.NoError(t, cache.Set("market:1", payload{}))
	require.NoError(t, cache.Set("pro_x", payload{}))

	require.NoError(t, cache.Delete("market:1"))

	removed, err := cache.DeleteByPrefix("projection:")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	removed, err = cache.DeleteByPrefix("pro_")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed, "underscore is matched literally")

	n, err := cache.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCache_StoresProjectionSummaries(t *testing.T) {
	cache, _ := newTestCache(t)
	logger := zerolog.Nop()
	service := projection.NewService(nil, cache, logger)

	a := projection.Assumptions{
		PurchasePrice:    300000,
		DownPayment:      60000,
		ClosingCosts:     9000,
		RenovationCosts:  15000,
		LoanAmount:       240000,
		InterestRate:     6.5,
		LoanTerm:         30,
		MonthlyRent:      2500,
		AppreciationRate: 4,
		HoldingPeriod:    10,
	}

	first, err := service.Calculate(context.Background(), a)
	require.NoError(t, err)

	key, err := projection.CacheKey(a.WithDefaults())
	require.NoError(t, err)

	var cached projection.Summary
	found, err := cache.Get(key, &cached)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, first.TotalReturn, cached.TotalReturn)
	assert.Equal(t, first.BreakEvenYear, cached.BreakEvenYear)
	assert.Equal(t, first.Scenarios[projection.ScenarioModerate], cached.Scenarios[projection.ScenarioModerate])
}

package projection

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// ResultCache stores computed summaries keyed by a deterministic input hash
type ResultCache interface {
	Get(key string, dest interface{}) (bool, error)
	Set(key string, value interface{}) error
}

// Service validates inputs, consults the result cache and runs the engine
type Service struct {
	engine *Engine
	cache  ResultCache
	log    zerolog.Logger
}

// NewService creates a projection service. cache may be nil.
func NewService(engine *Engine, cache ResultCache, log zerolog.Logger) *Service {
	if engine == nil {
		engine = NewEngine(nil)
	}
	return &Service{
		engine: engine,
		cache:  cache,
		log:    log.With().Str("service", "projection").Logger(),
	}
}

// Calculate returns the investment summary for the assumptions
func (s *Service) Calculate(ctx context.Context, a Assumptions) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a = a.WithDefaults()
	if err := a.Validate(); err != nil {
		return nil, err
	}

	key, err := CacheKey(a)
	if err != nil {
		return nil, fmt.Errorf("failed to hash assumptions: %w", err)
	}

	if s.cache != nil {
		var cached Summary
		found, err := s.cache.Get(key, &cached)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("Failed to read cached projection")
		} else if found {
			s.log.Debug().Str("key", key).Msg("Projection served from cache")
			return &cached, nil
		}
	}

	summary := s.engine.Summarize(a)

	s.log.Debug().
		Str("key", key).
		Int("holding_period", a.HoldingPeriod).
		Float64("cap_rate", summary.CapRate).
		Float64("total_return", summary.TotalReturn).
		Msg("Projection calculated")

	if s.cache != nil {
		if err := s.cache.Set(key, summary); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("Failed to cache projection")
		}
	}

	return &summary, nil
}

// Scenarios runs caller-supplied scenarios (or the defaults when none are given)
func (s *Service) Scenarios(ctx context.Context, a Assumptions, scenarios []Scenario) (ScenarioResults, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a = a.WithDefaults()
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if len(scenarios) == 0 {
		scenarios = DefaultScenarios()
	}
	if err := ValidateScenarios(a, scenarios); err != nil {
		return nil, err
	}

	return s.engine.RunScenarios(a, scenarios), nil
}

// CacheKey hashes the canonical JSON encoding of the assumptions
func CacheKey(a Assumptions) (string, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	h := sha256.Sum256(data)
	return "projection:" + hex.EncodeToString(h[:16]), nil
}

package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/modules/comparison"
	"github.com/sameer10342432/realestate-tools/internal/modules/insurance"
	"github.com/sameer10342432/realestate-tools/internal/modules/market"
	"github.com/sameer10342432/realestate-tools/internal/modules/moving"
	"github.com/sameer10342432/realestate-tools/internal/modules/projection"
	"github.com/sameer10342432/realestate-tools/internal/modules/renovation"
	"github.com/sameer10342432/realestate-tools/internal/utils"
)

// Errors
var (
	ErrUnknownKind  = errors.New("unknown report kind")
	ErrInvalidInput = errors.New("invalid report input")
)

// MaxLabelLength bounds user supplied labels
const MaxLabelLength = 200

// Service runs a calculator and saves its input and result as a report
type Service struct {
	repo       *Repository
	projection *projection.Service
	comparer   *comparison.Comparer
	analyzer   *market.Analyzer
	log        zerolog.Logger
}

// NewService creates a report service
func NewService(
	repo *Repository,
	projectionService *projection.Service,
	comparer *comparison.Comparer,
	analyzer *market.Analyzer,
	log zerolog.Logger,
) *Service {
	return &Service{
		repo:       repo,
		projection: projectionService,
		comparer:   comparer,
		analyzer:   analyzer,
		log:        log.With().Str("service", "reports").Logger(),
	}
}

// Run computes the result for the given kind and input and saves the report
func (s *Service) Run(ctx context.Context, kind, label string, input json.RawMessage) (*Report, error) {
	defer utils.OperationTimer("report_"+kind, s.log)()

	if len(label) > MaxLabelLength {
		return nil, fmt.Errorf("%w: label is longer than %d characters", ErrInvalidInput, MaxLabelLength)
	}
	if len(input) == 0 {
		return nil, fmt.Errorf("%w: input is required", ErrInvalidInput)
	}

	result, err := s.compute(ctx, kind, input)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s result: %w", kind, err)
	}

	report := &Report{
		Kind:   kind,
		Label:  label,
		Input:  input,
		Result: encoded,
	}
	if err := s.repo.Create(report); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", report.ID).Str("kind", kind).Msg("Report created")
	return report, nil
}

func (s *Service) compute(ctx context.Context, kind string, input json.RawMessage) (interface{}, error) {
	switch kind {
	case KindProjection:
		var a projection.Assumptions
		if err := decode(input, &a); err != nil {
			return nil, err
		}
		summary, err := s.projection.Calculate(ctx, a)
		return summary, classify(err, projection.IsValidationError(err))

	case KindComparison:
		var properties []comparison.Property
		if err := decode(input, &properties); err != nil {
			return nil, err
		}
		result, err := s.comparer.Compare(properties)
		return result, classify(err, err != nil)

	case KindMarket:
		var in market.Input
		if err := decode(input, &in); err != nil {
			return nil, err
		}
		analysis, err := s.analyzer.Analyze(in)
		return analysis, classify(err, market.IsInputError(err))

	case KindRenovation:
		var in renovation.Input
		if err := decode(input, &in); err != nil {
			return nil, err
		}
		estimate, err := renovation.Estimate(in)
		return estimate, classify(err, errors.Is(err, renovation.ErrInvalidInput))

	case KindMoving:
		var in moving.Input
		if err := decode(input, &in); err != nil {
			return nil, err
		}
		estimate, err := moving.Estimate(in)
		return estimate, classify(err, errors.Is(err, moving.ErrInvalidInput))

	case KindInsurance:
		var in insurance.Input
		if err := decode(input, &in); err != nil {
			return nil, err
		}
		estimate, err := insurance.Estimate(in)
		return estimate, classify(err, errors.Is(err, insurance.ErrInvalidInput))

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Get returns a saved report
func (s *Service) Get(id string) (*Report, error) {
	return s.repo.GetByID(id)
}

// List returns saved report summaries
func (s *Service) List(kind string, limit int) ([]Summary, error) {
	if kind != "" && !isKnownKind(kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return s.repo.List(kind, limit)
}

// Delete removes a saved report
func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

func decode(input json.RawMessage, dest interface{}) error {
	if err := json.Unmarshal(input, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// classify tags calculator input errors so callers can tell them from failures
func classify(err error, isInputError bool) error {
	if err == nil {
		return nil
	}
	if isInputError {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

func isKnownKind(kind string) bool {
	for _, k := range Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

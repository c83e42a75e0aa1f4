// Package service exposes multiplication behind a narrow interface so that
// transports such as the HTTP server can be tested against a mock.
package service

//go:generate mockgen -source=multiply_service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/agbru/fftmul/internal/config"
	"github.com/agbru/fftmul/internal/multiply"
)

var (
	// ErrUnknownAlgorithm is returned when the requested multiplier is not
	// registered.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Service defines the multiplication operations offered to transports.
type Service interface {
	// Multiply computes a × b with the named algorithm.
	//
	// Parameters:
	//   - ctx: The context for cancellation.
	//   - algoName: The registered multiplier name.
	//   - a, b: Decimal operands.
	//
	// Returns:
	//   - string: The decimal product.
	//   - error: An error if validation or the multiplication fails.
	Multiply(ctx context.Context, algoName, a, b string) (string, error)

	// Algorithms returns the registered multiplier names in sorted order.
	Algorithms() []string
}

// MultiplyService resolves multipliers from a factory and runs them with the
// options derived from the application configuration.
type MultiplyService struct {
	factory multiply.MultiplierFactory
	opts    multiply.Options
}

var _ Service = (*MultiplyService)(nil)

// NewMultiplyService creates a MultiplyService. A positive maxDigits replaces
// the configured combined operand limit.
func NewMultiplyService(factory multiply.MultiplierFactory, cfg config.AppConfig, maxDigits int) *MultiplyService {
	opts := cfg.ToMultiplyOptions()
	if maxDigits > 0 {
		opts.MaxDigits = maxDigits
		opts.AllowUnsafe = false
	}
	return &MultiplyService{factory: factory, opts: opts}
}

// Multiply implements Service.
func (s *MultiplyService) Multiply(ctx context.Context, algoName, a, b string) (string, error) {
	m, err := s.factory.Get(algoName)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algoName)
	}
	return m.Multiply(ctx, a, b, s.opts)
}

// Algorithms implements Service.
func (s *MultiplyService) Algorithms() []string {
	return s.factory.List()
}

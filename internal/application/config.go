// Package application wires the search core into a runnable program:
// YAML configuration, a cached loader, a worker pool runner, and a
// rate-limited progress reporter.
package application

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SearchConfig is the YAML-driven entry point for running the engine
// outside direct library use (benchmarks, the CLI).
type SearchConfig struct {
	Version string       `yaml:"version" validate:"required,semver"`
	Game    GameConfig   `yaml:"game" validate:"required"`
	Workers WorkerConfig `yaml:"workers" validate:"required"`
}

// GameConfig names which registered fixture to search over.
type GameConfig struct {
	Name string `yaml:"name" validate:"required,oneof=tictactoe sticks"`
}

// WorkerConfig controls how many goroutines probe the tree and how long
// the search runs.
type WorkerConfig struct {
	Count       int `yaml:"count" validate:"required,min=1,max=1024"`
	VisitBudget int `yaml:"visit_budget" validate:"required,min=1"`
}

// newValidator constructs a validator.Validate with the struct tags
// above plus the semver check validator/v10 ships with "semver".
func newValidator() *validator.Validate {
	return validator.New()
}

// Validate runs struct-tag validation over cfg and wraps the first
// failure as a ConfigValidationError, additionally chaining the sentinel
// matching the failed field so callers can branch with errors.Is without
// parsing the field name themselves.
func (cfg *SearchConfig) Validate(v *validator.Validate) error {
	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	fe := verrs[0]
	verr := NewConfigValidationError(fe.Namespace(), fmt.Errorf("%s", fe.Tag()))

	switch {
	case strings.HasSuffix(fe.Namespace(), "Game.Name"):
		return fmt.Errorf("%w: %w", ErrUnknownGame, verr)
	case strings.HasSuffix(fe.Namespace(), "Workers.VisitBudget"):
		return fmt.Errorf("%w: %w", ErrVisitBudgetTooLow, verr)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidConfig, verr)
	}
}

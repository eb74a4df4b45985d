package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() SearchConfig {
	return SearchConfig{
		Version: "1.0.0",
		Game:    GameConfig{Name: "tictactoe"},
		Workers: WorkerConfig{Count: 4, VisitBudget: 1000},
	}
}

func TestSearchConfigValidateAcceptsValidConfig(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate(newValidator()))
}

func TestSearchConfigValidateRejectsUnknownGame(t *testing.T) {
	cfg := validConfig()
	cfg.Game.Name = "chess"

	err := cfg.Validate(newValidator())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownGame)

	var verr *ConfigValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Field, "Game.Name")
}

func TestSearchConfigValidateRejectsMissingVersion(t *testing.T) {
	cfg := validConfig()
	cfg.Version = ""

	err := cfg.Validate(newValidator())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestSearchConfigValidateRejectsMalformedVersion(t *testing.T) {
	cfg := validConfig()
	cfg.Version = "not-a-semver"

	err := cfg.Validate(newValidator())
	require.Error(t, err)
}

func TestSearchConfigValidateRejectsZeroWorkerCount(t *testing.T) {
	cfg := validConfig()
	cfg.Workers.Count = 0

	err := cfg.Validate(newValidator())
	require.Error(t, err)
}

func TestSearchConfigValidateRejectsTooManyWorkers(t *testing.T) {
	cfg := validConfig()
	cfg.Workers.Count = 4096

	err := cfg.Validate(newValidator())
	require.Error(t, err)
}

func TestSearchConfigValidateRejectsZeroVisitBudget(t *testing.T) {
	cfg := validConfig()
	cfg.Workers.VisitBudget = 0

	err := cfg.Validate(newValidator())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVisitBudgetTooLow))
}

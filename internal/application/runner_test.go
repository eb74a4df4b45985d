package application

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-mcts/internal/domain"
	"github.com/ahrav/go-mcts/internal/testutils/games/tictactoe"
)

func tictactoeEvaluate(
	trace *domain.Trace[*tictactoe.State, int, *tictactoe.PerChild, tictactoe.Update],
	status domain.ProbeStatus,
) (**tictactoe.State, tictactoe.Update) {
	rng := rand.New(rand.NewSource(1))
	st, up := tictactoe.Evaluate(trace, status, rng)
	if st == nil {
		return nil, up
	}
	return &st, up
}

func TestRunnerRunStopsAtVisitBudget(t *testing.T) {
	tree := tictactoe.NewTree()
	runner := &Runner[*tictactoe.State, int, *tictactoe.PerChild, tictactoe.Update]{
		RootVisits: func(root *tictactoe.State) int { return int(root.Visits()) },
	}

	cfg := WorkerConfig{Count: 4, VisitBudget: 300}
	err := runner.Run(context.Background(), tree, cfg, tictactoeEvaluate)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, int(tree.Root().Visits()), cfg.VisitBudget)
}

func TestRunnerRunHonorsContextCancellation(t *testing.T) {
	tree := tictactoe.NewTree()
	runner := &Runner[*tictactoe.State, int, *tictactoe.PerChild, tictactoe.Update]{
		RootVisits: func(root *tictactoe.State) int { return int(root.Visits()) },
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	cfg := WorkerConfig{Count: 4, VisitBudget: 1 << 30}
	err := runner.Run(ctx, tree, cfg, tictactoeEvaluate)
	require.NoError(t, err)
	assert.Less(t, int(tree.Root().Visits()), cfg.VisitBudget)
}

func TestRunnerRunRejectsNonPositiveVisitBudget(t *testing.T) {
	tree := tictactoe.NewTree()
	runner := &Runner[*tictactoe.State, int, *tictactoe.PerChild, tictactoe.Update]{
		RootVisits: func(root *tictactoe.State) int { return int(root.Visits()) },
	}

	cfg := WorkerConfig{Count: 4, VisitBudget: 0}
	err := runner.Run(context.Background(), tree, cfg, tictactoeEvaluate)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVisitBudgetTooLow))
}

func TestRunnerRunSingleWorker(t *testing.T) {
	tree := tictactoe.NewTree()
	runner := &Runner[*tictactoe.State, int, *tictactoe.PerChild, tictactoe.Update]{
		RootVisits: func(root *tictactoe.State) int { return int(root.Visits()) },
	}

	cfg := WorkerConfig{Count: 1, VisitBudget: 50}
	err := runner.Run(context.Background(), tree, cfg, tictactoeEvaluate)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int(tree.Root().Visits()), cfg.VisitBudget)
}

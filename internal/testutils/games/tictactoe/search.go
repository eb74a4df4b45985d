package tictactoe

import (
	"math/rand"

	"github.com/ahrav/go-mcts/internal/domain"
)

// Tree is a search tree specialized for tic-tac-toe.
type Tree = domain.Tree[*State, int, *PerChild, Update]

// NewTree constructs a tree rooted at the empty board with X to move.
func NewTree() *Tree {
	return domain.NewTree[*State, int, *PerChild, Update](NewProcess(), NewState())
}

// NewTreeFromBoard constructs a tree rooted at an arbitrary position.
func NewTreeFromBoard(board Board, turn int8) *Tree {
	return domain.NewTree[*State, int, *PerChild, Update](NewProcess(), newState(board, turn))
}

// RunIterations drives n probe/evaluate/update cycles against tree using
// rng for rollouts.
func RunIterations(tree *Tree, rng *rand.Rand, n int) {
	for i := 0; i < n; i++ {
		RunOnce(tree, rng)
	}
}

// expansionVisitThreshold gates when a freshly evaluated child is
// actually materialized into the tree: a parent must have accumulated at
// least this many visits before one of its rollouts gets promoted to a
// real node. Below the threshold, the rollout still happens and its
// value still backs up, but nothing is installed, keeping shallow,
// rarely-revisited lines cheap and concentrating StatusBusy contention
// on the handful of lines popular enough to matter.
const expansionVisitThreshold = 8

// Evaluate rolls out the frontier reached by trace and decides whether
// the result is worth installing as a real node. The returned state is
// nil when nothing should be installed; Tree.Update takes its address.
func Evaluate(
	trace *domain.Trace[*State, int, *PerChild, Update],
	_ domain.ProbeStatus,
	rng *rand.Rand,
) (*State, Update) {
	last, ok := trace.LastStep()
	if !ok {
		return nil, Update{}
	}

	child := NextState(last.State(), last.PerChild())
	value := child.Evaluate(rng)
	up := NewUpdate(value, child.Turn())

	parent := last.State()
	if !parent.IsTerminal() && parent.Visits() >= expansionVisitThreshold {
		return child, up
	}
	return nil, up
}

// RunOnce drives a single probe/evaluate/update cycle.
func RunOnce(tree *Tree, rng *rand.Rand) {
	trace, status := tree.Probe()
	newState, up := Evaluate(trace, status, rng)
	var install **State
	if newState != nil {
		install = &newState
	}
	tree.Update(trace, install, up)
}

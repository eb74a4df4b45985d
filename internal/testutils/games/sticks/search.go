package sticks

import (
	"math/rand"

	"github.com/ahrav/go-mcts/internal/domain"
)

// Tree is a search tree specialized for the sticks pile game.
type Tree = domain.Tree[*State, int, *PerChild, Update]

// NewTree constructs a tree rooted at a full pile of 7 with side 1 to
// move.
func NewTree() *Tree {
	return domain.NewTree[*State, int, *PerChild, Update](NewProcess(), NewState())
}

// RunIterations drives n probe/evaluate/update cycles against tree.
func RunIterations(tree *Tree, rng *rand.Rand, n int) {
	for i := 0; i < n; i++ {
		RunOnce(tree, rng)
	}
}

// expansionVisitThreshold gates when a freshly evaluated child actually
// gets installed into the tree: the parent must have strictly more than
// this many visits first. Below the threshold the rollout still runs and
// its value still backs up, but no node is materialized, so cheap,
// rarely-taken lines never pay for a node and StatusBusy contention
// concentrates on the few lines visited often enough to matter.
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

	child := last.State().Forward(last.PerChild())
	up := child.Evaluate(rng)

	if last.State().Visits() > expansionVisitThreshold {
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

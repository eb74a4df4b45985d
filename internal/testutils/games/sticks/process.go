package sticks

import (
	"math/rand"

	"github.com/ahrav/go-mcts/infrastructure/uct"
	"github.com/ahrav/go-mcts/internal/ports"
)

// Process implements ports.Process for the sticks pile game using the
// reference UCT rule, same shape as tictactoe.Process but over a move
// set of size at most 3.
type Process struct{}

// NewProcess constructs a stateless sticks search policy.
func NewProcess() Process { return Process{} }

// Best picks the most-visited move.
func (Process) Best(_ *State, edges []*PerChild) (int, bool) {
	var best *PerChild
	for _, e := range edges {
		if best == nil || e.Visits() > best.Visits() {
			best = e
		}
	}
	if best == nil {
		return 0, false
	}
	return best.Key(), true
}

// Select implements the UCT exploration rule over the (at most 3)
// legal stick counts.
func (Process) Select(state *State, edges []*PerChild) ports.SelectResult[int, *PerChild] {
	totalVisits := state.Visits()
	unexplored := state.ValidMoves()

	var best *PerChild
	var bestScore float64
	for _, e := range edges {
		unexplored = removeValue(unexplored, e.NumTaken())
		score := e.UCT(totalVisits)
		if best == nil || score > bestScore {
			best = e
			bestScore = score
		}
	}

	pickUnexplored := func() (int, bool) {
		if len(unexplored) == 0 {
			return 0, false
		}
		return unexplored[rand.Intn(len(unexplored))], true
	}

	if best == nil {
		if n, ok := pickUnexplored(); ok {
			return ports.SelectResult[int, *PerChild]{Action: ports.SelectAdd, NewPerChild: NewPerChild(n)}
		}
		return ports.SelectResult[int, *PerChild]{Action: ports.SelectNone}
	}

	if len(unexplored) == 0 || bestScore > uct.Baseline(totalVisits) {
		return ports.SelectResult[int, *PerChild]{Action: ports.SelectExisting, ExistingKey: best.Key()}
	}
	n, ok := pickUnexplored()
	if !ok {
		return ports.SelectResult[int, *PerChild]{Action: ports.SelectExisting, ExistingKey: best.Key()}
	}
	return ports.SelectResult[int, *PerChild]{Action: ports.SelectAdd, NewPerChild: NewPerChild(n)}
}

// Update folds up into both the parent state's visit count and the
// edge's accumulated value.
func (Process) Update(state *State, perChild *PerChild, up Update, _ bool) {
	state.RecordVisit()
	perChild.applyUpdate(state.Side(), up)
}

func removeValue(values []int, v int) []int {
	out := values[:0]
	for _, x := range values {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

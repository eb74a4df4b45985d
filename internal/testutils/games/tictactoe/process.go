package tictactoe

import (
	"github.com/ahrav/go-mcts/infrastructure/uct"
	"github.com/ahrav/go-mcts/internal/ports"
)

// Process implements ports.Process for tic-tac-toe using the reference
// UCT selection rule: prefer the best-scoring existing move once it
// clears the exploration baseline, otherwise try an unexplored move.
type Process struct{}

// NewProcess constructs a stateless tic-tac-toe search policy.
func NewProcess() Process { return Process{} }

// Best picks the most-visited move, used for final move reporting.
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

// Select implements the UCT exploration rule.
func (Process) Select(state *State, edges []*PerChild) ports.SelectResult[int, *PerChild] {
	totalVisits := state.Visits()

	var occupied [9]bool
	var best *PerChild
	var bestScore float64
	for _, e := range edges {
		occupied[e.Vertex()] = true
		score := e.UCT(totalVisits)
		if best == nil || score > bestScore {
			best = e
			bestScore = score
		}
	}

	firstUnexplored := func() (int, bool) {
		for i := 0; i < 9; i++ {
			if !occupied[i] && state.IsValid(i) {
				return i, true
			}
		}
		return 0, false
	}

	if best == nil {
		if vertex, ok := firstUnexplored(); ok {
			return ports.SelectResult[int, *PerChild]{Action: ports.SelectAdd, NewPerChild: NewPerChild(vertex)}
		}
		return ports.SelectResult[int, *PerChild]{Action: ports.SelectNone}
	}

	if bestScore > uct.Baseline(totalVisits) {
		return ports.SelectResult[int, *PerChild]{Action: ports.SelectExisting, ExistingKey: best.Key()}
	}
	if vertex, ok := firstUnexplored(); ok {
		return ports.SelectResult[int, *PerChild]{Action: ports.SelectAdd, NewPerChild: NewPerChild(vertex)}
	}
	return ports.SelectResult[int, *PerChild]{Action: ports.SelectExisting, ExistingKey: best.Key()}
}

// Update folds up into both the parent state's visit count and the
// edge's accumulated value.
func (Process) Update(state *State, perChild *PerChild, up Update, _ bool) {
	state.RecordVisit()
	perChild.applyUpdate(state.Turn(), up)
}

// NextState computes the child board reached by playing perChild's
// vertex from state.
func NextState(state *State, perChild *PerChild) *State {
	board := state.board.Place(perChild.Vertex(), state.Turn())
	return newState(board, -state.Turn())
}

package sticks

import (
	"math/rand"

	"github.com/ahrav/go-mcts/infrastructure/uct"
)

// State is a pile position plus which side is to move.
type State struct {
	pile pile
	side int8
	stat uct.StateStat
}

// NewState constructs the starting position: 7 sticks, side 1 to move.
func NewState() *State { return &State{pile: newPile(), side: 1} }

func newState(side int8, p pile) *State { return &State{pile: p, side: side} }

// Hash implements ports.State, combining pile and side so the two
// distinct states "side 1 to move, 4 left" and "side -1 to move, 4 left"
// never collide.
func (s *State) Hash() (uint64, bool) {
	return s.pile.hash()*31 + uint64(byte(s.side)), true
}

// Side returns the side to move.
func (s *State) Side() int8 { return s.side }

// Visits returns how many times this state has been visited.
func (s *State) Visits() uint64 { return s.stat.Visits() }

// RecordVisit increments this state's visit count.
func (s *State) RecordVisit() { s.stat.IncrementVisits() }

// ValidMoves lists the legal stick counts that can be taken from here.
func (s *State) ValidMoves() []int { return s.pile.validMoves() }

// Forward computes the state reached by taking perChild's stick count.
func (s *State) Forward(perChild *PerChild) *State {
	return newState(-s.side, s.pile.play(perChild.NumTaken()))
}

// Evaluate plays a uniform-random game to completion from this position.
// The pile game is fully deterministic once moves are chosen, so the
// rollout yields an exact win/loss, not a probability estimate: the
// returned Update records which side ends up facing an empty pile
// (the loser).
func (s *State) Evaluate(rng *rand.Rand) Update {
	p := s.pile
	side := s.side
	for !p.isOver() {
		moves := p.validMoves()
		if len(moves) == 0 {
			break
		}
		n := moves[rng.Intn(len(moves))]
		p = p.play(n)
		side = -side
	}
	return NewUpdate(side)
}

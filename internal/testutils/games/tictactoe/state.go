package tictactoe

import (
	"math/rand"

	"github.com/ahrav/go-mcts/infrastructure/uct"
)

// State is one tic-tac-toe position plus the side to move next.
type State struct {
	board Board
	turn  int8
	stat  uct.StateStat
}

// NewState constructs the starting position: an empty board with X to
// move.
func NewState() *State { return &State{board: Board{}, turn: playerX} }

func newState(board Board, turn int8) *State { return &State{board: board, turn: turn} }

// Hash implements ports.State. Every tic-tac-toe position is transposed.
func (s *State) Hash() (uint64, bool) { return s.board.Hash(), true }

// Board returns the current board.
func (s *State) Board() Board { return s.board }

// Turn returns the side to move.
func (s *State) Turn() int8 { return s.turn }

// IsTerminal reports whether the position is a finished game.
func (s *State) IsTerminal() bool { return s.board.IsOver() }

// IsValid reports whether vertex is an empty cell on this board. It does
// not check whether the game is already over.
func (s *State) IsValid(vertex int) bool { return s.board.IsValid(vertex) }

// Visits returns how many times this state has been visited.
func (s *State) Visits() uint64 { return s.stat.Visits() }

// RecordVisit increments this state's visit count.
func (s *State) RecordVisit() { s.stat.IncrementVisits() }

// Evaluate plays a uniform-random rollout from this position to
// completion and returns the outcome from the perspective of the side
// to move here: 1.0 for a win, 0.0 for a loss, 0.5 for a draw.
func (s *State) Evaluate(rng *rand.Rand) float64 {
	board := s.board
	turn := s.turn

	for !board.Won(playerX) && !board.Won(playerO) {
		var moves []int
		for i := 0; i < 9; i++ {
			if board.IsValid(i) {
				moves = append(moves, i)
			}
		}
		if len(moves) == 0 {
			return 0.5
		}
		vertex := moves[rng.Intn(len(moves))]
		board = board.Place(vertex, turn)
		turn = -turn
	}

	if board.Won(s.turn) {
		return 1.0
	}
	return 0.0
}

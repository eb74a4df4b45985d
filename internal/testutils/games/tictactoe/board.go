// Package tictactoe is a small, fully-played-out game used to exercise
// the search engine end to end: it has a known-draw opening, known
// forced wins, and known forced losses, so search quality is directly
// checkable.
package tictactoe

import "hash/fnv"

const (
	empty  int8 = 0
	playerX int8 = 1
	playerO int8 = -1
)

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board is a 3x3 grid: 0 empty, 1 for X, -1 for O.
type Board [9]int8

// Hash fingerprints the board contents.
func (b Board) Hash() uint64 {
	h := fnv.New64a()
	var buf [9]byte
	for i, v := range b {
		buf[i] = byte(v)
	}
	h.Write(buf[:])
	return h.Sum64()
}

// Won reports whether player has completed a line.
func (b Board) Won(player int8) bool {
	for _, line := range lines {
		if b[line[0]] == player && b[line[1]] == player && b[line[2]] == player {
			return true
		}
	}
	return false
}

// IsOver reports whether the game has ended, by win or by a full board.
func (b Board) IsOver() bool {
	if b.Won(playerX) || b.Won(playerO) {
		return true
	}
	for _, v := range b {
		if v == empty {
			return false
		}
	}
	return true
}

// IsValid reports whether index is an empty cell.
func (b Board) IsValid(index int) bool { return b[index] == empty }

// Place returns a new board with player at index. index must be valid.
func (b Board) Place(index int, player int8) Board {
	next := b
	next[index] = player
	return next
}

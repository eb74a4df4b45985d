// Package sticks implements the classic take-1-to-3 Nim variant: players
// alternate removing 1, 2, or 3 sticks from a shared pile of 7, and
// whoever takes the last stick wins. It is small enough to search
// exhaustively, which makes it a useful concurrent-scaling benchmark:
// any worker count should converge on the same optimal first move
// (taking 3, leaving 4).
package sticks

import "hash/maphash"

const startingPile = 7

// pile is the immutable count of sticks remaining.
type pile struct{ remaining int }

func newPile() pile { return pile{remaining: startingPile} }

func (p pile) isOver() bool { return p.remaining == 0 }

func (p pile) isValid(n int) bool { return n <= p.remaining }

func (p pile) validMoves() []int {
	var moves []int
	for n := 1; n <= 3; n++ {
		if p.isValid(n) {
			moves = append(moves, n)
		}
	}
	return moves
}

func (p pile) play(n int) pile {
	next := p.remaining - n
	if next < 0 {
		next = 0
	}
	return pile{remaining: next}
}

var hashSeed = maphash.MakeSeed()

func (p pile) hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(p.remaining))
	return h.Sum64()
}

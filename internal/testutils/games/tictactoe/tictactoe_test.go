package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyBoardConverges(t *testing.T) {
	rng := rand.New(rand.NewSource(0xcafed00d))
	tree := NewTree()

	RunIterations(tree, rng, 600)

	var bestValue float64
	for step := range tree.Path() {
		bestValue = step.PerChild().WinRate()
		break
	}
	assert.InDelta(t, 0.5, bestValue, 0.02, "optimal tic-tac-toe play from the empty board is a draw")
}

func TestImmediateWinForX(t *testing.T) {
	rng := rand.New(rand.NewSource(0xcafed00d))
	board := Board{}
	board[1] = playerO
	board[5] = playerO
	board[3] = playerX
	board[4] = playerX
	tree := NewTreeFromBoard(board, playerX)

	RunIterations(tree, rng, 400)

	var bestWinRate float64
	var bestVertex int
	for step := range tree.Path() {
		bestWinRate = step.PerChild().WinRate()
		bestVertex = step.Key()
		break
	}
	assert.GreaterOrEqual(t, bestWinRate, 0.98)
	assert.Contains(t, []int{0, 6}, bestVertex)
}

func TestImmediateWinForO(t *testing.T) {
	rng := rand.New(rand.NewSource(0xcafed00d))
	board := Board{}
	board[1] = playerO
	board[5] = playerO
	board[3] = playerX
	board[4] = playerX
	tree := NewTreeFromBoard(board, playerO)

	RunIterations(tree, rng, 400)

	var bestWinRate float64
	var bestVertex int
	for step := range tree.Path() {
		bestWinRate = step.PerChild().WinRate()
		bestVertex = step.Key()
		break
	}
	assert.GreaterOrEqual(t, bestWinRate, 0.98)
	assert.Equal(t, 2, bestVertex)
}

func TestForcedLossDetected(t *testing.T) {
	rng := rand.New(rand.NewSource(0xcafed00d))
	board := Board{}
	board[0] = playerO
	board[2] = playerO
	board[4] = playerO
	board[3] = playerX
	board[5] = playerX
	board[8] = playerX
	tree := NewTreeFromBoard(board, playerX)

	RunIterations(tree, rng, 400)

	for _, child := range tree.RootChildren() {
		assert.LessOrEqual(t, child.WinRate(), 0.02)
	}
}

func TestConcurrentProbesShareTranspositions(t *testing.T) {
	tree := NewTree()

	done := make(chan struct{})
	for w := 0; w < 8; w++ {
		go func(seed int64) {
			localRng := rand.New(rand.NewSource(seed))
			RunIterations(tree, localRng, 100)
			done <- struct{}{}
		}(int64(w) + 1)
	}
	for w := 0; w < 8; w++ {
		<-done
	}

	assert.Greater(t, tree.Len(), 1)
}

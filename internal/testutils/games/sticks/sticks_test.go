package sticks

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimalFirstMoveTakesThree(t *testing.T) {
	rng := rand.New(rand.NewSource(0xcafed00d))
	tree := NewTree()

	RunIterations(tree, rng, 10000)

	var bestKey int
	for step := range tree.Path() {
		bestKey = step.Key()
		break
	}
	assert.Equal(t, 3, bestKey, "taking 3 from 7 leaves 4, a losing position for the opponent")
}

func TestConcurrentScalingAgreesOnFirstMove(t *testing.T) {
	const workers = 4
	const iterationsPerWorker = 2500

	tree := NewTree()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			RunIterations(tree, rng, iterationsPerWorker)
		}(int64(w) + 1)
	}
	wg.Wait()

	var bestKey int
	for step := range tree.Path() {
		bestKey = step.Key()
		break
	}
	assert.Equal(t, 3, bestKey)
}

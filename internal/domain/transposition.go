package domain

import (
	"cmp"
	"sync"
	"sync/atomic"

	"github.com/ahrav/go-mcts/internal/ports"
)

// transpositionTable deduplicates nodes by state fingerprint so every
// edge reaching an equivalent state shares exactly one node. It is a thin
// wrapper over sync.Map: LoadOrStore is the single atomic operation that
// decides, for any fingerprint, which of several racing candidate nodes
// is the canonical winner.
type transpositionTable[S ports.State, K cmp.Ordered, P ports.PerChild[K], U any] struct {
	entries sync.Map // uint64 -> *node[S, K, P, U]
	count   atomic.Int64
}

func newTranspositionTable[S ports.State, K cmp.Ordered, P ports.PerChild[K], U any]() *transpositionTable[S, K, P, U] {
	return &transpositionTable[S, K, P, U]{}
}

// resolve returns the canonical node for fingerprint, storing candidate
// as the winner if no entry exists yet. Every caller racing on the same
// fingerprint receives the identical *node back, whether or not it is
// their own candidate.
func (t *transpositionTable[S, K, P, U]) resolve(fingerprint uint64, candidate *node[S, K, P, U]) *node[S, K, P, U] {
	actual, loaded := t.entries.LoadOrStore(fingerprint, candidate)
	if !loaded {
		t.count.Add(1)
	}
	return actual.(*node[S, K, P, U])
}

func (t *transpositionTable[S, K, P, U]) len() int {
	return int(t.count.Load())
}

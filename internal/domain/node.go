package domain

import (
	"cmp"
	"slices"
	"sync/atomic"

	"github.com/ahrav/go-mcts/internal/ports"
	"github.com/ahrav/go-mcts/internal/reclaim"
)

// node owns one caller State and the edge table reachable from it. The
// edge table is published as a single immutable, key-sorted slice behind
// an atomic pointer; growing it means building a new slice and swapping
// it in, never mutating the slice readers may currently hold.
type node[S ports.State, K cmp.Ordered, P ports.PerChild[K], U any] struct {
	st    S
	edges atomic.Pointer[[]*edge[S, K, P, U]]
}

func newNode[S ports.State, K cmp.Ordered, P ports.PerChild[K], U any](st S) *node[S, K, P, U] {
	n := &node[S, K, P, U]{st: st}
	empty := make([]*edge[S, K, P, U], 0)
	n.edges.Store(&empty)
	return n
}

func (n *node[S, K, P, U]) state() S { return n.st }

// snapshot returns the currently published edge table. The returned slice
// must never be mutated by the caller: it may be concurrently observed by
// other readers and is only ever replaced wholesale via tryExpand.
func (n *node[S, K, P, U]) snapshot() []*edge[S, K, P, U] {
	return *n.edges.Load()
}

func (n *node[S, K, P, U]) find(key K) (*edge[S, K, P, U], bool) {
	edges := n.snapshot()
	i, ok := slices.BinarySearchFunc(edges, key, func(e *edge[S, K, P, U], k K) int {
		return cmp.Compare(e.key, k)
	})
	if !ok {
		return nil, false
	}
	return edges[i], true
}

// tryExpand grows the edge table by one entry for perChild, unless an
// edge with the same key already exists, in which case that edge is
// returned instead. This duplicate-key check is what makes two
// concurrent proposals of the same key converge on a single edge rather
// than racing to insert two.
func (n *node[S, K, P, U]) tryExpand(perChild P, mgr *reclaim.Manager) *edge[S, K, P, U] {
	key := perChild.Key()
	for {
		oldPtr := n.edges.Load()
		old := *oldPtr
		if i, ok := slices.BinarySearchFunc(old, key, func(e *edge[S, K, P, U], k K) int {
			return cmp.Compare(e.key, k)
		}); ok {
			return old[i]
		}

		next := make([]*edge[S, K, P, U], len(old)+1)
		copy(next, old)
		next[len(old)] = newEdge[S, K, P, U](perChild)
		slices.SortFunc(next, func(a, b *edge[S, K, P, U]) int {
			return cmp.Compare(a.key, b.key)
		})

		if n.edges.CompareAndSwap(oldPtr, &next) {
			mgr.Retire(oldPtr)
			// The new edge's key is known present in next; look it back up
			// rather than assume a fixed index, since SortFunc may have
			// placed it anywhere.
			e, _ := n.find(key)
			return e
		}
		// Lost the race: reload and retry. The duplicate check above will
		// catch the winner's edge on the next iteration if keys collided.
	}
}

// selectEdge asks the process to pick the next step from this node's
// current edge snapshot.
func (n *node[S, K, P, U]) selectEdge(process ports.Process[S, K, P, U]) ports.SelectResult[K, P] {
	edges := n.snapshot()
	perChildren := make([]P, len(edges))
	for i, e := range edges {
		perChildren[i] = e.perChild
	}
	return process.Select(n.st, perChildren)
}

// bestEdge asks the process for the best child to report, independent of
// exploration. Used only by the read-only reporting path.
func (n *node[S, K, P, U]) bestEdge(process ports.Process[S, K, P, U]) (K, bool) {
	edges := n.snapshot()
	perChildren := make([]P, len(edges))
	for i, e := range edges {
		perChildren[i] = e.perChild
	}
	return process.Best(n.st, perChildren)
}

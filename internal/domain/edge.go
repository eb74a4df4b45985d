// Package domain implements the shared, concurrent search tree: the
// lock-free edge tables, the transposition table, and the probe / update
// protocol that drives Monte Carlo Tree Search over a caller-supplied
// ports.Process.
package domain

import (
	"cmp"
	"sync/atomic"

	"github.com/ahrav/go-mcts/internal/ports"
)

// edge is one outgoing connection from a node: an immutable caller-owned
// statistic plus an atomic, install-once pointer to the destination node.
type edge[S ports.State, K cmp.Ordered, P ports.PerChild[K], U any] struct {
	perChild P
	key      K
	child    atomic.Pointer[node[S, K, P, U]]
}

func newEdge[S ports.State, K cmp.Ordered, P ports.PerChild[K], U any](perChild P) *edge[S, K, P, U] {
	return &edge[S, K, P, U]{perChild: perChild, key: perChild.Key()}
}

// tryInstall atomically sets the destination node iff none is set yet. It
// reports whether this call performed the install; a loser must discard
// the node it was attempting to install.
func (e *edge[S, K, P, U]) tryInstall(n *node[S, K, P, U]) bool {
	return e.child.CompareAndSwap(nil, n)
}

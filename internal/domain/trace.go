package domain

import (
	"cmp"

	"github.com/ahrav/go-mcts/internal/ports"
	"github.com/ahrav/go-mcts/internal/reclaim"
)

// step is one recorded (node, edge key) pair visited by a probe.
type step[S ports.State, K cmp.Ordered, P ports.PerChild[K], U any] struct {
	n   *node[S, K, P, U]
	key K
}

// Trace is the ordered, root-to-frontier record produced by Tree.Probe.
// It carries the epoch guard acquired for the probe, keeping every node
// and edge table it references live until the Trace is consumed by
// Tree.Update. A Trace is single-owner: do not share it between
// goroutines or consume it twice.
type Trace[S ports.State, K cmp.Ordered, P ports.PerChild[K], U any] struct {
	steps  []step[S, K, P, U]
	guard  *reclaim.Guard
	status ProbeStatus
}

// IsEmpty reports whether the probe recorded zero steps.
func (t *Trace[S, K, P, U]) IsEmpty() bool { return len(t.steps) == 0 }

// Steps reports how many (node, key) pairs this trace recorded.
func (t *Trace[S, K, P, U]) Steps() int { return len(t.steps) }

// Status reports the ProbeStatus this trace was produced with.
func (t *Trace[S, K, P, U]) Status() ProbeStatus { return t.status }

// LastStep returns a read-only view of the final step recorded, so a
// caller can compute the simulated child state before calling
// Tree.Update. It reports false for an empty trace.
func (t *Trace[S, K, P, U]) LastStep() (Step[S, K, P, U], bool) {
	if len(t.steps) == 0 {
		var zero Step[S, K, P, U]
		return zero, false
	}
	last := t.steps[len(t.steps)-1]
	e, ok := last.n.find(last.key)
	if !ok {
		panic("mcts: trace references an edge that no longer exists")
	}
	return Step[S, K, P, U]{state: last.n.state(), perChild: e.perChild, key: last.key}, true
}

// Step is a read-only view of one trace entry, exposed to callers that
// want to inspect a path without touching internal pointers.
type Step[S ports.State, K cmp.Ordered, P ports.PerChild[K], U any] struct {
	state    S
	perChild P
	key      K
}

// Key returns the edge key selected at this step.
func (s Step[S, K, P, U]) Key() K { return s.key }

// State returns the node's state at this step.
func (s Step[S, K, P, U]) State() S { return s.state }

// PerChild returns the edge's per-child statistic at this step.
func (s Step[S, K, P, U]) PerChild() P { return s.perChild }

// Map applies f to this step's state and per-child statistic, without
// exposing the internal node or edge pointers.
func (s Step[S, K, P, U]) Map(f func(S, P) any) any { return f(s.state, s.perChild) }

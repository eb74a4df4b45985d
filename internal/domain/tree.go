package domain

import (
	"cmp"
	"iter"

	"github.com/ahrav/go-mcts/internal/ports"
	"github.com/ahrav/go-mcts/internal/reclaim"
)

// Tree is the shared, concurrent search tree. A single Tree is meant to
// be probed and updated by many goroutines at once; all synchronization
// is via atomics and the transposition table, never a tree-wide lock.
type Tree[S ports.State, K cmp.Ordered, P ports.PerChild[K], U any] struct {
	process ports.Process[S, K, P, U]
	root    *node[S, K, P, U]

	transpositions *transpositionTable[S, K, P, U]
	reclaimer      *reclaim.Manager

	// rootTransposed records whether the root itself was entered into the
	// transposition table (it is, whenever its initial state hashes).
	rootTransposed bool
}

// NewTree constructs a tree rooted at initial. process must be stateless
// and safe for concurrent use; every mutable statistic lives on S or P,
// never inside process itself.
func NewTree[S ports.State, K cmp.Ordered, P ports.PerChild[K], U any](
	process ports.Process[S, K, P, U],
	initial S,
) *Tree[S, K, P, U] {
	root := newNode[S, K, P, U](initial)
	transpositions := newTranspositionTable[S, K, P, U]()

	rootTransposed := false
	if fp, ok := initial.Hash(); ok {
		transpositions.resolve(fp, root)
		rootTransposed = true
	}

	return &Tree[S, K, P, U]{
		process:        process,
		root:           root,
		transpositions: transpositions,
		reclaimer:      reclaim.NewManager(),
		rootTransposed: rootTransposed,
	}
}

// Root returns the root state.
func (t *Tree[S, K, P, U]) Root() S { return t.root.state() }

// RootChildren returns the per-child statistic for every edge currently
// installed at the root, in key order. Useful for callers that need to
// inspect every root move rather than just the one Path would follow.
func (t *Tree[S, K, P, U]) RootChildren() []P {
	edges := t.root.snapshot()
	perChildren := make([]P, len(edges))
	for i, e := range edges {
		perChildren[i] = e.perChild
	}
	return perChildren
}

// Len reports the number of distinct entries in the transposition table.
// A root whose state opted out of transposition is not counted, nor is
// any other untransposable node. This is a deduplicated count, not a raw
// reachability walk, since every transposable node appears in the table
// exactly once.
func (t *Tree[S, K, P, U]) Len() int {
	return t.transpositions.len()
}

// Probe descends from the root, asking process to select an edge at
// every node, until it adds a new edge, finds one still being
// materialized by another goroutine, or runs out of legal actions.
// Probe never blocks.
func (t *Tree[S, K, P, U]) Probe() (*Trace[S, K, P, U], ProbeStatus) {
	guard := t.reclaimer.Enter()
	trace := &Trace[S, K, P, U]{guard: guard}

	curr := t.root
	for {
		result := curr.selectEdge(t.process)
		switch result.Action {
		case ports.SelectAdd:
			e := curr.tryExpand(result.NewPerChild, t.reclaimer)
			trace.steps = append(trace.steps, step[S, K, P, U]{n: curr, key: e.key})
			trace.status = StatusExpanded
			return trace, StatusExpanded

		case ports.SelectExisting:
			e, ok := curr.find(result.ExistingKey)
			if !ok {
				panic("mcts: process.Select named a key with no matching edge")
			}
			trace.steps = append(trace.steps, step[S, K, P, U]{n: curr, key: e.key})
			child := e.child.Load()
			if child == nil {
				trace.status = StatusBusy
				return trace, StatusBusy
			}
			curr = child

		case ports.SelectNone:
			trace.status = StatusEmpty
			return trace, StatusEmpty

		default:
			panic("mcts: process.Select returned an unrecognized SelectAction")
		}
	}
}

// Update consumes trace, optionally installing newState as the child of
// the trace's final edge, then folds up into every visited edge's
// statistics via process.Update. newState may be nil when the caller has
// no new state to contribute; a non-nil newState is installed only if the
// final edge is still unexpanded, whatever status the probe returned.
//
// Update reuses the epoch guard Probe acquired rather than pinning a
// fresh one: the trace already keeps every node and edge table it
// references live for exactly as long as it takes to walk it. Once the
// guard is released, retired edge tables that no live guard can still
// observe are dropped.
func (t *Tree[S, K, P, U]) Update(trace *Trace[S, K, P, U], newState *S, up U) {
	defer func() {
		trace.guard.Leave()
		t.reclaimer.TryReclaim()
	}()

	if newState != nil && len(trace.steps) > 0 {
		last := trace.steps[len(trace.steps)-1]
		e, ok := last.n.find(last.key)
		if !ok {
			panic("mcts: trace references an edge that no longer exists")
		}
		if e.child.Load() == nil {
			candidate := newNode[S, K, P, U](*newState)
			winner := candidate
			if fp, ok := (*newState).Hash(); ok {
				winner = t.transpositions.resolve(fp, candidate)
			}
			e.tryInstall(winner)
		}
	}

	for _, s := range trace.steps {
		e, ok := s.n.find(s.key)
		if !ok {
			panic("mcts: trace references an edge that no longer exists")
		}
		t.process.Update(s.n.state(), e.perChild, up, e.child.Load() != nil)
	}
}

// Path lazily walks the best line from the root by repeatedly asking
// process.Best, stopping when Best reports no action or the selected
// edge is not yet expanded. It runs under its own epoch pin for its
// entire iteration, released when the sequence is exhausted or the
// caller stops ranging early.
func (t *Tree[S, K, P, U]) Path() iter.Seq[Step[S, K, P, U]] {
	return func(yield func(Step[S, K, P, U]) bool) {
		guard := t.reclaimer.Enter()
		defer guard.Leave()

		curr := t.root
		for {
			key, ok := curr.bestEdge(t.process)
			if !ok {
				return
			}
			e, found := curr.find(key)
			if !found {
				panic("mcts: process.Best named a key with no matching edge")
			}
			if !yield(Step[S, K, P, U]{state: curr.state(), perChild: e.perChild, key: key}) {
				return
			}
			child := e.child.Load()
			if child == nil {
				return
			}
			curr = child
		}
	}
}

package application

import (
	"cmp"
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ahrav/go-mcts/internal/domain"
	"github.com/ahrav/go-mcts/internal/ports"
)

// EvaluateFunc simulates/evaluates the frontier reached by one probe and
// returns the state to install (nil when there is nothing new to
// install) plus the update to fold back up the trace.
type EvaluateFunc[S ports.State, K cmp.Ordered, P ports.PerChild[K], U any] func(
	trace *domain.Trace[S, K, P, U],
	status domain.ProbeStatus,
) (newState *S, up U)

// SearchObserver is the narrow contract a middleware decorator (tracing,
// metrics) implements to wrap every Probe/Update cycle Runner drives.
// Defined here, on the consumer side, so middleware implementations need
// only match the method shapes structurally; Runner never imports an
// observability package directly.
type SearchObserver interface {
	// ObserveProbe is called before Probe and returns the context to use
	// for the remainder of the cycle plus a function to call with the
	// probe's outcome once it returns.
	ObserveProbe(ctx context.Context) (context.Context, func(status domain.ProbeStatus, steps int))

	// ObserveUpdate wraps a single Update call, timing it.
	ObserveUpdate(ctx context.Context, update func())
}

// Runner drives a pool of goroutines, each repeatedly calling Probe,
// evaluating the result, and calling Update, until the tree's root
// crosses cfg.VisitBudget or ctx is done.
type Runner[S ports.State, K cmp.Ordered, P ports.PerChild[K], U any] struct {
	// RootVisits reports the current visit count used to check the
	// budget. The tree itself does not track this generically, since
	// "visits" is a State-level concept defined by the Process; callers
	// supply how to read it back off the root.
	RootVisits func(root S) int

	// Observer, when set, wraps every Probe/Update cycle in tracing spans
	// and metrics. Nil disables observation entirely.
	Observer SearchObserver
}

// Run launches cfg.Count goroutines against tree and blocks until the
// visit budget is reached or ctx is canceled.
func (r *Runner[S, K, P, U]) Run(
	ctx context.Context,
	tree *domain.Tree[S, K, P, U],
	cfg WorkerConfig,
	evaluate EvaluateFunc[S, K, P, U],
) error {
	if cfg.VisitBudget <= 0 {
		return ErrVisitBudgetTooLow
	}

	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	for i := 0; i < cfg.Count; i++ {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				default:
				}

				probeCtx := gctx
				var finishProbe func(domain.ProbeStatus, int)
				if r.Observer != nil {
					probeCtx, finishProbe = r.Observer.ObserveProbe(gctx)
				}

				trace, status := tree.Probe()
				if finishProbe != nil {
					finishProbe(status, trace.Steps())
				}

				newState, up := evaluate(trace, status)

				if r.Observer != nil {
					r.Observer.ObserveUpdate(probeCtx, func() { tree.Update(trace, newState, up) })
				} else {
					tree.Update(trace, newState, up)
				}

				if r.RootVisits(tree.Root()) >= cfg.VisitBudget {
					cancel()
					return nil
				}
			}
		})
	}

	return g.Wait()
}

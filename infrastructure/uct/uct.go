// Package uct provides the reference Upper Confidence bound applied to
// Trees (UCT) statistics used as building blocks for concrete games'
// State and PerChild types. It does not itself implement ports.Process:
// callers embed StateStat and PerChildStat into their own state and
// per-edge types and write a small Process that reads them, exactly as
// the tic-tac-toe and sticks fixtures do.
package uct

import (
	"math"
	"sync/atomic"
)

// StateStat is the per-node statistic: a visit counter used to compute
// the UCT exploration baseline.
type StateStat struct {
	visits atomic.Uint64
}

// Visits returns the current visit count.
func (s *StateStat) Visits() uint64 { return s.visits.Load() }

// IncrementVisits records one more visit to this state.
func (s *StateStat) IncrementVisits() { s.visits.Add(1) }

// Baseline returns sqrt(2*ln(n)), the UCT score an unexplored action is
// compared against. It is zero when n is zero, since ln(0) is undefined
// and an empty node has nothing to compare against yet.
func Baseline(n uint64) float64 {
	if n == 0 {
		return 0
	}
	return math.Sqrt(2 * math.Log(float64(n)))
}

// PerChildStat is the per-edge statistic: an accumulated value and visit
// count, kept in two separate atomics and updated once per observation.
type PerChildStat struct {
	visits atomic.Uint64
	value  atomic.Uint64 // IEEE-754 bit pattern of an accumulated float64
}

// Visits returns the current visit count for this edge.
func (p *PerChildStat) Visits() uint64 { return p.visits.Load() }

// Value returns the current accumulated value for this edge.
func (p *PerChildStat) Value() float64 {
	return math.Float64frombits(p.value.Load())
}

// Update folds one observed outcome v into this edge's statistics.
// Visits and Value may be briefly inconsistent with each other when read
// concurrently with a racing Update; UCT only ever reads the current
// values of each, so this is not a correctness issue for the formula.
func (p *PerChildStat) Update(v float64) {
	p.visits.Add(1)
	for {
		old := p.value.Load()
		next := math.Float64frombits(old) + v
		if p.value.CompareAndSwap(old, math.Float64bits(next)) {
			return
		}
	}
}

// UCT computes the exploration score for an edge given its parent's
// total visit count n. value/visits is treated as zero when the edge has
// never been visited.
func UCT(n uint64, p *PerChildStat) float64 {
	visits := p.Visits()
	exploitation := 0.0
	if visits > 0 {
		exploitation = p.Value() / float64(visits)
	}
	exploration := math.Sqrt(2 * math.Log(float64(n)) / float64(visits+1))
	return exploitation + exploration
}

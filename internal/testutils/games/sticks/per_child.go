package sticks

import "github.com/ahrav/go-mcts/infrastructure/uct"

// PerChild is the statistic attached to taking a given number of sticks.
type PerChild struct {
	stat     uct.PerChildStat
	numTaken int
}

// NewPerChild constructs a fresh, unvisited per-child statistic for
// taking n sticks.
func NewPerChild(n int) *PerChild { return &PerChild{numTaken: n} }

// Key implements ports.PerChild.
func (p *PerChild) Key() int { return p.numTaken }

// NumTaken returns how many sticks this edge removes.
func (p *PerChild) NumTaken() int { return p.numTaken }

// Visits returns how many times this move has been explored.
func (p *PerChild) Visits() uint64 { return p.stat.Visits() }

// UCT returns this edge's exploration score given the parent's total
// visit count.
func (p *PerChild) UCT(totalVisits uint64) float64 { return uct.UCT(totalVisits, &p.stat) }

func (p *PerChild) applyUpdate(nodeSide int8, up Update) { p.stat.Update(up.ValueFor(nodeSide)) }

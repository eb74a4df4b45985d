package tictactoe

import "github.com/ahrav/go-mcts/infrastructure/uct"

// PerChild is the statistic attached to one candidate move.
type PerChild struct {
	stat   uct.PerChildStat
	vertex int
}

// NewPerChild constructs a fresh, unvisited per-child statistic for
// vertex.
func NewPerChild(vertex int) *PerChild { return &PerChild{vertex: vertex} }

// Key implements ports.PerChild.
func (p *PerChild) Key() int { return p.vertex }

// Vertex returns the board index this edge plays.
func (p *PerChild) Vertex() int { return p.vertex }

// Visits returns how many times this move has been explored.
func (p *PerChild) Visits() uint64 { return p.stat.Visits() }

// WinRate returns the accumulated value divided by visits, or 0 when
// unvisited.
func (p *PerChild) WinRate() float64 {
	if p.stat.Visits() == 0 {
		return 0
	}
	return p.stat.Value() / float64(p.stat.Visits())
}

// UCT returns this edge's exploration score given the parent's total
// visit count.
func (p *PerChild) UCT(totalVisits uint64) float64 { return uct.UCT(totalVisits, &p.stat) }

// applyUpdate folds up, as seen from the node turn it belongs to, into
// this edge's statistics.
func (p *PerChild) applyUpdate(nodeTurn int8, up Update) { p.stat.Update(up.ValueFor(nodeTurn)) }

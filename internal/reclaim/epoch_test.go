package reclaim

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRetireReclaimsOnceUnguarded(t *testing.T) {
	m := NewManager()

	g := m.Enter()
	m.Retire([]int{1, 2, 3})
	assert.Equal(t, 1, m.PendingCount())

	reclaimed := m.TryReclaim()
	assert.Equal(t, 0, reclaimed, "value must stay pinned while the guard is live")

	g.Leave()
	// A retirement at the current epoch is only safe once the epoch has
	// advanced past it with no reader still pinned there; a later, unrelated
	// retirement is what advances the epoch here.
	m.Retire("sentinel")
	reclaimed = m.TryReclaim()
	assert.Equal(t, 1, reclaimed)
	assert.Equal(t, 1, m.PendingCount(), "the sentinel retired at the newer epoch is not yet reclaimable")
}

func TestManagerMultipleGuardsDelayReclamation(t *testing.T) {
	m := NewManager()

	g1 := m.Enter()
	g2 := m.Enter()
	m.Retire("old-table")

	g1.Leave()
	assert.Equal(t, 0, m.TryReclaim(), "g2 is still pinned at an epoch older than the retirement")

	g2.Leave()
	m.Retire("sentinel")
	assert.Equal(t, 1, m.TryReclaim(), "old-table's epoch is now older than the sentinel's")
}

func TestManagerConcurrentEnterLeave(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := m.Enter()
			m.Retire(struct{}{})
			g.Leave()
		}()
	}
	wg.Wait()

	reclaimed := m.TryReclaim()
	require.GreaterOrEqual(t, reclaimed, 0)
	assert.Equal(t, 0, m.ActiveReaderCount())
}

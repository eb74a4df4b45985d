// Package reclaim provides epoch-based memory reclamation for the search
// tree's lock-free edge tables. Readers pin the current epoch before
// walking a node's edge table; writers retire the table they replace
// instead of freeing it immediately, and it becomes eligible for garbage
// collection once every reader that could have observed it has released
// its pin.
package reclaim

import (
	"sync"
	"sync/atomic"
)

// Manager tracks active reader epochs and retired values awaiting
// collection. The zero value is not usable; construct with NewManager.
type Manager struct {
	globalEpoch uint64

	readers sync.Map // readerID -> *readerState

	retiredMu sync.Mutex
	retired   map[uint64][]any

	nextReaderID uint64
}

type readerState struct {
	epoch  uint64
	active int32
}

// NewManager constructs an empty epoch manager.
func NewManager() *Manager {
	return &Manager{
		globalEpoch: 1, // epoch 0 means "guard not held"
		retired:     make(map[uint64][]any),
	}
}

// Guard represents one pinned read session. It must be released exactly
// once with Leave.
type Guard struct {
	mgr      *Manager
	state    *readerState
	readerID uint64
}

// Enter pins the current epoch. Every edge table or retired value the
// holder observes while the guard is live stays reachable until Leave.
func (m *Manager) Enter() *Guard {
	readerID := atomic.AddUint64(&m.nextReaderID, 1)
	state := &readerState{epoch: atomic.LoadUint64(&m.globalEpoch), active: 1}
	m.readers.Store(readerID, state)
	return &Guard{mgr: m, state: state, readerID: readerID}
}

// Leave releases the pin. Safe to call on a nil Guard.
func (g *Guard) Leave() {
	if g == nil || g.state == nil {
		return
	}
	atomic.StoreInt32(&g.state.active, 0)
	g.mgr.readers.Delete(g.readerID)
}

// Epoch reports the epoch this guard pinned at.
func (g *Guard) Epoch() uint64 {
	if g == nil || g.state == nil {
		return 0
	}
	return g.state.epoch
}

// Retire hands a value replaced by a successful publish to the manager
// and advances the global epoch so future readers no longer observe it
// as current. The value itself is not freed: it remains reachable (and
// thus safe for any reader still pinned at an older epoch) until
// TryReclaim drops the manager's own reference, after which the Go
// garbage collector reclaims it like any other unreferenced value.
func (m *Manager) Retire(value any) {
	if value == nil {
		return
	}
	epoch := atomic.AddUint64(&m.globalEpoch, 1)
	m.retiredMu.Lock()
	m.retired[epoch] = append(m.retired[epoch], value)
	m.retiredMu.Unlock()
}

// TryReclaim drops the manager's references to every retired value
// older than the oldest epoch any live guard still holds, returning how
// many values were dropped. It does not free memory directly; dropping
// the reference merely makes the value collectible.
func (m *Manager) TryReclaim() int {
	minEpoch := m.findMinActiveEpoch()

	m.retiredMu.Lock()
	defer m.retiredMu.Unlock()

	reclaimed := 0
	for epoch, values := range m.retired {
		if epoch < minEpoch {
			reclaimed += len(values)
			delete(m.retired, epoch)
		}
	}
	return reclaimed
}

func (m *Manager) findMinActiveEpoch() uint64 {
	minEpoch := atomic.LoadUint64(&m.globalEpoch)
	m.readers.Range(func(_, v any) bool {
		state := v.(*readerState)
		if atomic.LoadInt32(&state.active) == 1 && state.epoch < minEpoch {
			minEpoch = state.epoch
		}
		return true
	})
	return minEpoch
}

// PendingCount reports how many retired values are still tracked.
func (m *Manager) PendingCount() int {
	m.retiredMu.Lock()
	defer m.retiredMu.Unlock()
	count := 0
	for _, values := range m.retired {
		count += len(values)
	}
	return count
}

// ActiveReaderCount reports how many guards are currently held.
func (m *Manager) ActiveReaderCount() int {
	count := 0
	m.readers.Range(func(_, v any) bool {
		state := v.(*readerState)
		if atomic.LoadInt32(&state.active) == 1 {
			count++
		}
		return true
	})
	return count
}

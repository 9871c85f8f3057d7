package risk

import "sync"

// LockedManager wraps a Manager for multi-goroutine callers. Each
// mutation holds the lock across the whole
// mutate → recompute → transition → emit unit, so a concurrent reader
// can never observe a recomputed VaR with a stale regime.
type LockedManager struct {
	mu sync.Mutex
	m  *Manager
}

func NewLockedManager(m *Manager) *LockedManager {
	return &LockedManager{m: m}
}

func (l *LockedManager) AddPosition(id string, contribution float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m.AddPosition(id, contribution)
}

func (l *LockedManager) RemovePosition(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m.RemovePosition(id)
}

func (l *LockedManager) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Snapshot()
}

func (l *LockedManager) Regime() Regime {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Regime()
}

func (l *LockedManager) CurrentVaR() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.CurrentVaR()
}

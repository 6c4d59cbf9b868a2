package plateplan

import (
	"sync"

	"github.com/printwise/plateplan/internal/domain"
)

// DefaultMon provides an in-memory, thread-safe implementation of the
// Monitoring interface, used when New is called with a nil Monitoring.
//
// It appends every planning snapshot to a guarded slice. This basic
// implementation is suitable for internal debugging, testing, and simple
// runtime analytics; production setups should supply their own Monitoring
// (see the monitoring package for a richer in-memory variant).
type DefaultMon struct {
	mu    sync.RWMutex
	plans []domain.PlanStats
}

// newDefaultMon creates and initializes a new DefaultMon instance.
func newDefaultMon() *DefaultMon {
	return &DefaultMon{}
}

// SaveMetrics stores one planning snapshot.
func (m *DefaultMon) SaveMetrics(stats domain.PlanStats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans = append(m.plans, stats)
}

// GetMetrics retrieves all stored planning snapshots in recording order.
func (m *DefaultMon) GetMetrics() []domain.PlanStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.PlanStats, len(m.plans))
	copy(out, m.plans)
	return out
}

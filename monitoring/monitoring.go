// Package monitoring provides a ready-made in-memory implementation of the
// plateplan Monitoring interface, plus an aggregate view over everything it
// has recorded.
package monitoring

import (
	"sync"

	"github.com/printwise/plateplan/internal/domain"
	"github.com/printwise/plateplan/minmax"
)

// Monitoring provides an in-memory, thread-safe implementation of the
// domain.Monitoring interface.
//
// It stores every planning snapshot in recording order. This basic
// implementation is suitable for debugging, testing, and simple runtime
// analytics; production scenarios can replace it with an implementation that
// forwards snapshots to an external system.
type Monitoring struct {
	mu    sync.RWMutex
	plans []domain.PlanStats
}

// New creates and initializes a new Monitoring instance.
//
// Returns:
//   - Pointer to an initialized Monitoring instance ready for metric storage
//     and retrieval.
func New() *Monitoring {
	return &Monitoring{}
}

// SaveMetrics stores one planning snapshot.
//
// Parameters:
//   - stats: domain.PlanStats describing the computed schedule.
func (m *Monitoring) SaveMetrics(stats domain.PlanStats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans = append(m.plans, stats)
}

// GetMetrics retrieves all stored planning snapshots in recording order.
func (m *Monitoring) GetMetrics() []domain.PlanStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.PlanStats, len(m.plans))
	copy(out, m.plans)
	return out
}

// Summary is an aggregate view over all recorded planning calls.
type Summary struct {
	// Plans is the number of recorded planning calls.
	Plans int

	// Jobs is the total number of jobs across all recorded calls.
	Jobs int

	// TotalMinutes is the summed schedule duration across all recorded calls.
	TotalMinutes int

	// ShortestTotal and LongestTotal are the extremes of per-schedule
	// duration among the recorded calls, in minutes. Both are zero when no
	// calls have been recorded.
	ShortestTotal int
	LongestTotal  int
}

// Summarize aggregates everything recorded so far. The duration extremes are
// found with the minmax range finder.
func (m *Monitoring) Summarize() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Summary{Plans: len(m.plans)}
	if len(m.plans) == 0 {
		return s
	}

	totals := make([]float64, len(m.plans))
	for i, p := range m.plans {
		s.Jobs += p.Jobs
		s.TotalMinutes += p.TotalTime
		totals[i] = float64(p.TotalTime)
	}

	lo, hi, err := minmax.Range(totals)
	if err == nil {
		s.ShortestTotal = int(lo)
		s.LongestTotal = int(hi)
	}
	return s
}

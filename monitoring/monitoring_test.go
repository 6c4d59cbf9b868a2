package monitoring

import (
	"sync"
	"testing"

	"github.com/printwise/plateplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMonitoring_SaveAndGet(t *testing.T) {
	mon := New()
	assert.Empty(t, mon.GetMetrics())

	mon.SaveMetrics(domain.PlanStats{Jobs: 3, Batches: 2, TotalTime: 270, BatchTimes: []int{120, 150}})
	mon.SaveMetrics(domain.PlanStats{Jobs: 1, Batches: 1, TotalTime: 45, BatchTimes: []int{45}})

	plans := mon.GetMetrics()
	assert.Len(t, plans, 2)
	assert.Equal(t, 270, plans[0].TotalTime)
	assert.Equal(t, 45, plans[1].TotalTime)
}

func TestMonitoring_Summarize(t *testing.T) {
	mon := New()
	assert.Equal(t, Summary{}, mon.Summarize())

	mon.SaveMetrics(domain.PlanStats{Jobs: 3, Batches: 2, TotalTime: 270})
	mon.SaveMetrics(domain.PlanStats{Jobs: 1, Batches: 1, TotalTime: 45})
	mon.SaveMetrics(domain.PlanStats{Jobs: 5, Batches: 3, TotalTime: 400})

	s := mon.Summarize()
	assert.Equal(t, 3, s.Plans)
	assert.Equal(t, 9, s.Jobs)
	assert.Equal(t, 715, s.TotalMinutes)
	assert.Equal(t, 45, s.ShortestTotal)
	assert.Equal(t, 400, s.LongestTotal)
}

func TestMonitoring_ConcurrentSaves(t *testing.T) {
	mon := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mon.SaveMetrics(domain.PlanStats{Jobs: 1, Batches: 1, TotalTime: 10})
		}()
	}
	wg.Wait()

	assert.Len(t, mon.GetMetrics(), 50)
	assert.Equal(t, 500, mon.Summarize().TotalMinutes)
}

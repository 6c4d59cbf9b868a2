package plateplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMon_RecordsEveryPlan(t *testing.T) {
	mon := newDefaultMon()
	p := New(mon)

	jobs := []Job{
		{ID: "a", Volume: 100, Priority: 1, PrintTime: 60},
		{ID: "b", Volume: 250, Priority: 2, PrintTime: 90},
	}
	c := Constraints{MaxVolume: 300, MaxItems: 2}

	_, err := p.Plan(jobs, c)
	assert.NoError(t, err)
	_, err = p.Plan(nil, c)
	assert.NoError(t, err)

	plans := mon.GetMetrics()
	assert.Len(t, plans, 2)

	assert.Equal(t, 2, plans[0].Jobs)
	assert.Equal(t, 2, plans[0].Batches)
	assert.Equal(t, 150, plans[0].TotalTime)
	assert.Equal(t, []int{60, 90}, plans[0].BatchTimes)
	assert.False(t, plans[0].PlannedAt.IsZero())

	assert.Equal(t, 0, plans[1].Jobs)
	assert.Equal(t, 0, plans[1].TotalTime)
}

func TestDefaultMon_FailedPlanNotRecorded(t *testing.T) {
	mon := newDefaultMon()
	p := New(mon)

	_, err := p.Plan([]Job{{ID: "", Volume: 1, Priority: 1, PrintTime: 1}}, Constraints{MaxVolume: 10, MaxItems: 1})
	assert.Error(t, err)
	assert.Empty(t, mon.GetMetrics())
}

package summary

import (
	"testing"

	"github.com/printwise/plateplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_FlattensAndSums(t *testing.T) {
	batches := []domain.Batch{
		{
			Jobs: []domain.Job{
				{ID: "M1", Volume: 100, Priority: 1, PrintTime: 120},
				{ID: "M2", Volume: 150, Priority: 1, PrintTime: 90},
			},
			Volume: 250,
			Time:   120,
		},
		{
			Jobs:   []domain.Job{{ID: "M3", Volume: 120, Priority: 1, PrintTime: 150}},
			Volume: 120,
			Time:   150,
		},
	}

	sched := Summarize(batches)
	assert.Equal(t, []string{"M1", "M2", "M3"}, sched.PrintOrder)
	assert.Equal(t, 270, sched.TotalTime)
	assert.Equal(t, batches, sched.Batches)
}

func TestSummarize_Empty(t *testing.T) {
	sched := Summarize(nil)
	assert.NotNil(t, sched.PrintOrder)
	assert.Empty(t, sched.PrintOrder)
	assert.Equal(t, 0, sched.TotalTime)
	assert.Empty(t, sched.Batches)
}

// Package summary flattens a packed plate sequence into the final schedule.
package summary

import "github.com/printwise/plateplan/internal/domain"

// Summarize builds the schedule from the packed batches: PrintOrder is the
// job IDs flattened in plate order (submission order within a plate), and
// TotalTime is the sum of per-plate durations. Plates run strictly one after
// another; jobs within a plate finish together, so each plate contributes
// exactly its slowest member's time.
func Summarize(batches []domain.Batch) domain.Schedule {
	jobs := 0
	for _, b := range batches {
		jobs += len(b.Jobs)
	}

	sched := domain.Schedule{
		Batches:    batches,
		PrintOrder: make([]string, 0, jobs),
	}
	for _, b := range batches {
		for _, job := range b.Jobs {
			sched.PrintOrder = append(sched.PrintOrder, job.ID)
		}
		sched.TotalTime += b.Time
	}
	return sched
}

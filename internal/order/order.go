// Package order produces the deterministic total order the packer consumes:
// jobs sorted by urgency class, with submission order breaking ties.
package order

import (
	"sort"

	"github.com/printwise/plateplan/internal/domain"
)

// Sort returns a new slice with the jobs reordered by priority ascending,
// then original position ascending. The tie-break on position is part of the
// published contract: downstream packing draws plate boundaries over this
// sequence, so two jobs sharing a priority must keep their submission order.
//
// Sorting on the explicit composite key makes the result independent of any
// sort algorithm's incidental stability. The input slice is not modified.
func Sort(jobs []domain.Job) []domain.Job {
	type tagged struct {
		pos int
		job domain.Job
	}

	seq := make([]tagged, len(jobs))
	for i, job := range jobs {
		seq[i] = tagged{pos: i, job: job}
	}

	sort.Slice(seq, func(i, j int) bool {
		if seq[i].job.Priority != seq[j].job.Priority {
			return seq[i].job.Priority < seq[j].job.Priority
		}
		return seq[i].pos < seq[j].pos
	})

	ordered := make([]domain.Job, len(jobs))
	for i, t := range seq {
		ordered[i] = t.job
	}
	return ordered
}

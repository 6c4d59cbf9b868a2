// Package pack draws plate boundaries over a priority-ordered job sequence.
//
// The packing rule is first-fit-in-order, a deliberate design choice: a
// single O(n) left-to-right pass that never reorders jobs and always yields
// the same partition for the same input. It is not bin-packing-optimal and
// must not be "improved" into best-fit - callers depend on the deterministic
// boundaries this rule produces.
package pack

import "github.com/printwise/plateplan/internal/domain"

// Build partitions the ordered jobs into non-empty batches honoring the two
// plate ceilings. Concatenating the returned batches reproduces the input
// sequence exactly; packing only decides where one plate ends and the next
// begins.
//
// Ceiling checks run only against a non-empty accumulator. A job that cannot
// share a plate with anything - its volume alone exceeds MaxVolume - is
// therefore placed alone on its own plate rather than rejected. The packer
// can fail to combine jobs, never to place them.
func Build(ordered []domain.Job, c domain.Constraints) []domain.Batch {
	var batches []domain.Batch
	var current domain.Batch

	for _, job := range ordered {
		fitsVolume := current.Volume+job.Volume <= c.MaxVolume
		fitsItems := len(current.Jobs) < c.MaxItems

		if len(current.Jobs) > 0 && (!fitsVolume || !fitsItems) {
			batches = append(batches, current)
			current = domain.Batch{}
		}

		current.Jobs = append(current.Jobs, job)
		current.Volume += job.Volume
		if job.PrintTime > current.Time {
			current.Time = job.PrintTime
		}
	}

	if len(current.Jobs) > 0 {
		batches = append(batches, current)
	}
	return batches
}

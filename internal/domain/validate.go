package domain

import (
	"fmt"

	errs "github.com/printwise/plateplan/internal/error"
)

// ValidateConstraints checks the plate ceilings before any planning work.
//
// Returns:
//   - nil if both ceilings are usable.
//   - ErrInvalidConstraints (wrapped) otherwise.
func ValidateConstraints(c Constraints) error {
	if c.MaxVolume <= 0 {
		return errs.New(errs.ErrInvalidConstraints, fmt.Sprintf("max volume must be positive, got %v", c.MaxVolume))
	}
	if c.MaxItems < 1 {
		return errs.New(errs.ErrInvalidConstraints, fmt.Sprintf("max items must be at least 1, got %d", c.MaxItems))
	}
	return nil
}

// ValidateJobs checks every job in the request before any planning work, so
// a malformed job fails the whole call instead of surfacing as a silently
// wrong schedule.
//
// Returns:
//   - nil if all jobs are well-formed.
//   - ErrEmptyID, ErrDuplicateJobID or ErrInvalidJobField (wrapped) on the
//     first offending job.
func ValidateJobs(jobs []Job) error {
	seen := make(map[string]struct{}, len(jobs))
	for i, job := range jobs {
		if job.ID == "" {
			return errs.New(errs.ErrEmptyID, fmt.Sprintf("job at index %d", i))
		}
		if _, ok := seen[job.ID]; ok {
			return errs.New(errs.ErrDuplicateJobID, job.ID)
		}
		seen[job.ID] = struct{}{}
		if job.Volume <= 0 {
			return errs.New(errs.ErrInvalidJobField, fmt.Sprintf("job %s: volume must be positive, got %v", job.ID, job.Volume))
		}
		if job.Priority <= 0 {
			return errs.New(errs.ErrInvalidJobField, fmt.Sprintf("job %s: priority must be positive, got %d", job.ID, job.Priority))
		}
		if job.PrintTime <= 0 {
			return errs.New(errs.ErrInvalidJobField, fmt.Sprintf("job %s: print time must be positive, got %d", job.ID, job.PrintTime))
		}
	}
	return nil
}

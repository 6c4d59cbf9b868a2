// Package plateplan assigns a static set of print jobs to an ordered sequence
// of bounded-capacity plates and reports the execution order and total
// completion time.
//
// Planning is a single pure pipeline: jobs are ordered by priority (lower
// value first, submission order breaking ties), packed greedily into plates
// honoring a volume ceiling and an item-count ceiling, and summarized into a
// flat print order plus a total duration. Plates run strictly sequentially;
// jobs sharing a plate finish together in the time of the slowest member.
//
// Features:
//   - Stable priority ordering: jobs with equal priority keep submission order.
//   - Greedy first-fit packing under two independent plate ceilings.
//   - An oversized job is never rejected; it prints alone on its own plate.
//   - Fail-fast validation of jobs and constraints before any packing.
//   - Pluggable monitoring of planning outcomes (in-memory by default).
//
// Each call is an independent computation over an immutable snapshot of jobs
// and constraints: no state is retained between calls and concurrent callers
// never interfere.
//
// Example usage:
//
//	p := plateplan.New(nil)
//
//	jobs := []plateplan.Job{
//		{ID: "M1", Volume: 100, Priority: 1, PrintTime: 120},
//		{ID: "M2", Volume: 150, Priority: 1, PrintTime: 90},
//	}
//
//	sched, err := p.Plan(jobs, plateplan.Constraints{MaxVolume: 300, MaxItems: 2})
//	if err != nil {
//		// handle validation failure
//	}
//	fmt.Println(sched.PrintOrder, sched.TotalTime)
package plateplan

import (
	"time"

	"github.com/printwise/plateplan/internal/domain"
	"github.com/printwise/plateplan/internal/order"
	"github.com/printwise/plateplan/internal/pack"
	"github.com/printwise/plateplan/internal/summary"
)

// Job represents a single print request.
//
// Parameters:
//   - ID: Unique identifier within one planning request. Required.
//   - Volume: Plate capacity the job consumes. Must be positive.
//   - Priority: Urgency class; lower value is scheduled earlier. Must be positive.
//   - PrintTime: Duration in minutes when run alone. Must be positive.
type Job = domain.Job

// Constraints holds the two capacity ceilings of one plate.
//
// Parameters:
//   - MaxVolume: Ceiling on summed job volume per plate. Must be positive.
//   - MaxItems: Ceiling on job count per plate. Must be at least 1.
//
// Both ceilings bind only once a plate holds more than one job; a single job
// is always admitted regardless of its volume.
type Constraints = domain.Constraints

// Batch is one plate of the schedule: its member jobs in execution order, the
// accumulated volume, and the plate duration (slowest member's PrintTime).
type Batch = domain.Batch

// Schedule is the planning result.
//
// Fields:
//   - Batches: Plates in execution order.
//   - PrintOrder: Flattened job IDs, a permutation of the input IDs.
//   - TotalTime: Sum of per-plate durations in minutes.
type Schedule = domain.Schedule

// PlanStats is the snapshot of one planning call handed to Monitoring.
type PlanStats = domain.PlanStats

// Monitoring defines an interface for collecting and retrieving metrics about
// planning calls. Pass an implementation to New to observe every schedule the
// planner produces; pass nil to use the built-in in-memory DefaultMon.
type Monitoring = domain.Monitoring

// Planner computes schedules. The zero-cost way to obtain one is New; a
// single Planner is safe for concurrent use because every Plan call operates
// only on its own inputs.
type Planner struct {
	mon domain.Monitoring
}

// New initializes a new Planner.
//
// Parameters:
//   - mon: Implementation of Monitoring for metrics collection.
//     Defaults to internal in-memory monitoring if nil.
//
// Returns:
//   - Pointer to a ready-to-use Planner instance.
func New(mon Monitoring) *Planner {
	if mon == nil {
		mon = newDefaultMon()
	}
	return &Planner{mon: mon}
}

// Plan validates the request and computes the schedule.
//
// Validation is fail-fast: a malformed job or constraint set rejects the whole
// call before any packing work, so a partial schedule is never produced. An
// empty job list is a valid request and yields an empty schedule with
// TotalTime 0.
//
// Parameters:
//   - jobs: The print requests, in submission order. Not modified.
//   - c: The plate ceilings for this request.
//
// Returns:
//   - The computed Schedule on success.
//   - ErrInvalidConstraints, ErrEmptyID, ErrDuplicateJobID or
//     ErrInvalidJobField (wrapped) on malformed input.
func (p *Planner) Plan(jobs []Job, c Constraints) (Schedule, error) {
	if err := domain.ValidateConstraints(c); err != nil {
		return Schedule{}, err
	}
	if err := domain.ValidateJobs(jobs); err != nil {
		return Schedule{}, err
	}

	ordered := order.Sort(jobs)
	batches := pack.Build(ordered, c)
	sched := summary.Summarize(batches)

	p.mon.SaveMetrics(planStats(len(jobs), sched))
	return sched, nil
}

// Plan is a package-level convenience for one-off calls without a Planner.
// Equivalent to New(nil).Plan(jobs, c).
func Plan(jobs []Job, c Constraints) (Schedule, error) {
	return New(nil).Plan(jobs, c)
}

func planStats(jobs int, sched Schedule) domain.PlanStats {
	times := make([]int, len(sched.Batches))
	for i, b := range sched.Batches {
		times[i] = b.Time
	}
	return domain.PlanStats{
		Jobs:       jobs,
		Batches:    len(sched.Batches),
		TotalTime:  sched.TotalTime,
		BatchTimes: times,
		PlannedAt:  time.Now(),
	}
}

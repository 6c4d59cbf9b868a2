package domain

// Batch is an ordered, non-empty group of jobs that print together on one
// plate. All members finish at the same wall-clock moment: the plate runs for
// the PrintTime of its slowest member.
type Batch struct {
	// Jobs are the plate members in execution order. Never empty.
	Jobs []Job `json:"jobs"`

	// Volume is the summed volume of all members. It may exceed
	// Constraints.MaxVolume only when the batch holds exactly one job.
	Volume float64 `json:"volume"`

	// Time is the plate duration in minutes: the maximum PrintTime among
	// the members.
	Time int `json:"time"`
}

// Schedule is the result of one planning call: plates run strictly one after
// another, while jobs within a plate complete concurrently.
type Schedule struct {
	// Batches are the plates in execution order.
	Batches []Batch `json:"batches"`

	// PrintOrder is the flattened job ID sequence: plate order first,
	// submission order within a plate. It is a permutation of the input IDs.
	PrintOrder []string `json:"print_order"`

	// TotalTime is the sum of per-plate durations in minutes.
	TotalTime int `json:"total_time"`
}

package domain

// Job represents a single print request queued for planning.
//
// A Job is immutable for the duration of one planning call. The planner never
// mutates, drops, or duplicates jobs; it only decides which plate each job
// lands on and in what order the plates run.
type Job struct {
	// ID is a unique identifier for the job within one planning request.
	ID string `yaml:"id" json:"id"`

	// Volume is the amount of plate capacity the job consumes.
	// Must be positive. A job whose volume alone exceeds the plate ceiling
	// is still planned - it is placed alone on its own plate.
	Volume float64 `yaml:"volume" json:"volume"`

	// Priority is the urgency class of the job. Lower values are scheduled
	// earlier. Must be positive. Jobs sharing a priority keep their
	// submission order.
	Priority int `yaml:"priority" json:"priority"`

	// PrintTime is the duration of the job in minutes when run alone.
	// A plate takes as long as its slowest job, so PrintTime only
	// contributes to the total when the job is the slowest on its plate.
	PrintTime int `yaml:"print_time" json:"print_time"`
}

// Constraints holds the two independent capacity ceilings of one plate.
//
// Both ceilings apply only once a plate holds more than one job; a single
// job is always admitted regardless of its volume.
type Constraints struct {
	// MaxVolume is the ceiling on summed job volume per plate. Must be positive.
	MaxVolume float64 `yaml:"max_volume" json:"max_volume"`

	// MaxItems is the ceiling on job count per plate. Must be at least 1.
	MaxItems int `yaml:"max_items" json:"max_items"`
}

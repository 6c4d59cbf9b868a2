package domain

import "time"

// PlanStats is a lightweight snapshot of one completed planning call,
// handed to a Monitoring implementation after the schedule is built.
type PlanStats struct {
	// Jobs is the number of jobs in the request.
	Jobs int

	// Batches is the number of plates the planner produced.
	Batches int

	// TotalTime is the schedule duration in minutes.
	TotalTime int

	// BatchTimes holds the per-plate durations in execution order.
	BatchTimes []int

	// PlannedAt records when the schedule was computed.
	PlannedAt time.Time
}

// Monitoring defines an interface for collecting and retrieving metrics about
// planning calls.
//
// Implementations of this interface can persist metrics in various ways, such as:
// - In-memory storage for simple debugging and development purposes.
// - Real-time logging for operational monitoring.
// - External systems like dashboards, time-series databases, or analytics platforms.
type Monitoring interface {
	// SaveMetrics stores the outcome of one planning call.
	//
	// Parameters:
	//   - stats: PlanStats snapshot describing the computed schedule.
	SaveMetrics(stats PlanStats)

	// GetMetrics retrieves all stored planning snapshots in the order they
	// were recorded.
	GetMetrics() []PlanStats
}

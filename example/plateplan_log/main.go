// Example: plateplan + zap structured logging integration
// Demonstrates logging planning outcomes and validation failures with a
// production-grade logger

package main

import (
	"errors"

	"github.com/printwise/plateplan"
	"go.uber.org/zap"
)

var logger *zap.Logger

func main() {
	// Initialize zap logger (development config for human-readable output)
	logger, _ = zap.NewDevelopment()
	defer logger.Sync()

	p := plateplan.New(nil)

	jobs := []plateplan.Job{
		{ID: "thesis-frame", Volume: 220, Priority: 1, PrintTime: 180},
		{ID: "lab-bracket", Volume: 90, Priority: 2, PrintTime: 45},
		{ID: "lab-housing", Volume: 140, Priority: 2, PrintTime: 120},
		{ID: "keychain", Volume: 20, Priority: 3, PrintTime: 15},
	}
	constraints := plateplan.Constraints{MaxVolume: 300, MaxItems: 3}

	sched, err := p.Plan(jobs, constraints)
	if err != nil {
		logger.Fatal("Planning failed", zap.Error(err))
	}

	logger.Info("Schedule computed",
		zap.Strings("print_order", sched.PrintOrder),
		zap.Int("total_minutes", sched.TotalTime),
		zap.Int("plates", len(sched.Batches)),
	)
	for i, b := range sched.Batches {
		logger.Info("Plate packed",
			zap.Int("plate", i+1),
			zap.Int("jobs", len(b.Jobs)),
			zap.Float64("volume", b.Volume),
			zap.Int("minutes", b.Time),
		)
	}

	// A malformed request is rejected before any packing work.
	_, err = p.Plan([]plateplan.Job{{ID: "bad", Volume: -5, Priority: 1, PrintTime: 10}}, constraints)
	if errors.Is(err, plateplan.ErrInvalidJobField) {
		logger.Warn("Rejected malformed job", zap.Error(err))
	}
}

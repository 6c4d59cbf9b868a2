// Example: minimal end-to-end planning call
// Builds a schedule for a small queue and prints the result

package main

import (
	"fmt"
	"log"

	"github.com/printwise/plateplan"
)

func main() {
	jobs := []plateplan.Job{
		{ID: "M1", Volume: 100, Priority: 2, PrintTime: 120},
		{ID: "M2", Volume: 150, Priority: 1, PrintTime: 90},
		{ID: "M3", Volume: 120, Priority: 3, PrintTime: 150},
	}

	sched, err := plateplan.Plan(jobs, plateplan.Constraints{
		MaxVolume: 300,
		MaxItems:  2,
	})
	if err != nil {
		log.Fatal(err)
	}

	for i, b := range sched.Batches {
		ids := make([]string, len(b.Jobs))
		for j, job := range b.Jobs {
			ids[j] = job.ID
		}
		fmt.Printf("plate %d: %v (volume %.0f, %d min)\n", i+1, ids, b.Volume, b.Time)
	}
	fmt.Println("print order:", sched.PrintOrder)
	fmt.Println("total time:", sched.TotalTime, "minutes")
}

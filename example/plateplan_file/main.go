// Example: planning a queue described in a YAML request file
// Reads jobs and plate constraints from disk, plans, and prints the schedule

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/printwise/plateplan"
	"gopkg.in/yaml.v3"
)

// Request is one planning snapshot as stored on disk.
type Request struct {
	Jobs        []plateplan.Job       `yaml:"jobs"`
	Constraints plateplan.Constraints `yaml:"constraints"`
}

func loadRequest(path string) (Request, error) {
	var req Request
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read request: %w", err)
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parse request: %w", err)
	}
	return req, nil
}

func main() {
	path := flag.String("request", "request.yaml", "path to the YAML planning request")
	flag.Parse()

	req, err := loadRequest(*path)
	if err != nil {
		log.Fatal(err)
	}

	sched, err := plateplan.Plan(req.Jobs, req.Constraints)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d jobs -> %d plates\n", len(req.Jobs), len(sched.Batches))
	fmt.Println("print order:", sched.PrintOrder)
	fmt.Println("total time:", sched.TotalTime, "minutes")
}

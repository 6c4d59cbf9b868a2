// Example: plateplan integration with Prometheus and Grafana
// Exposes planning metrics on /metrics endpoint via promhttp
// Run this together with Prometheus + Grafana to watch queue planning live

package main

import (
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/printwise/plateplan"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMonitoring implements plateplan.Monitoring and exposes metrics via Prometheus
type PrometheusMonitoring struct {
	plansTotal    prometheus.Counter
	scheduleTime  prometheus.Gauge
	plateCount    prometheus.Gauge
	plateDuration prometheus.Histogram
}

func NewPrometheusMonitoring() *PrometheusMonitoring {
	m := &PrometheusMonitoring{
		plansTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plateplan_plans_total",
			Help: "Total number of schedules computed",
		}),
		scheduleTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "plateplan_schedule_minutes",
			Help: "Total duration of the most recent schedule in minutes",
		}),
		plateCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "plateplan_schedule_plates",
			Help: "Number of plates in the most recent schedule",
		}),
		plateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "plateplan_plate_minutes",
			Help:    "Per-plate duration in minutes",
			Buckets: prometheus.LinearBuckets(30, 30, 10),
		}),
	}

	prometheus.MustRegister(m.plansTotal, m.scheduleTime, m.plateCount, m.plateDuration)
	return m
}

func (m *PrometheusMonitoring) SaveMetrics(stats plateplan.PlanStats) {
	m.plansTotal.Inc()
	m.scheduleTime.Set(float64(stats.TotalTime))
	m.plateCount.Set(float64(stats.Batches))
	for _, t := range stats.BatchTimes {
		m.plateDuration.Observe(float64(t))
	}
}

func (m *PrometheusMonitoring) GetMetrics() []plateplan.PlanStats {
	return nil
}

func main() {
	mon := NewPrometheusMonitoring()
	p := plateplan.New(mon)

	// Re-plan a synthetic queue periodically so the metrics move.
	go func() {
		constraints := plateplan.Constraints{MaxVolume: 300, MaxItems: 4}
		for {
			n := rand.Intn(8) + 2
			jobs := make([]plateplan.Job, n)
			for i := range jobs {
				jobs[i] = plateplan.Job{
					ID:        "job-" + strconv.Itoa(i),
					Volume:    float64(rand.Intn(250) + 20),
					Priority:  rand.Intn(3) + 1,
					PrintTime: rand.Intn(170) + 10,
				}
			}
			if _, err := p.Plan(jobs, constraints); err != nil {
				log.Println("plan failed:", err)
			}
			time.Sleep(2 * time.Second)
		}
	}()

	log.Println("[plateplan] Planner running...")

	http.Handle("/metrics", promhttp.Handler())
	log.Println("[Metrics] Exposed on http://localhost:2112/metrics")
	log.Fatal(http.ListenAndServe(":2112", nil))
}

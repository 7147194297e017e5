// Package metrics exposes session activity as Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "citysim"
	subsystem = "session"
)

// Recorder is what the game session reports to. Collector and Nop implement it.
type Recorder interface {
	RecordTick(day, budget, families, satisfaction int, elapsed time.Duration)
	RecordBuild(buildingType string, accepted bool)
	RecordEnding(reason string)
}

// Collector holds the session metrics.
type Collector struct {
	ticksTotal   prometheus.Counter
	tickDuration prometheus.Histogram
	buildsTotal  *prometheus.CounterVec
	endingsTotal *prometheus.CounterVec

	day          prometheus.Gauge
	budget       prometheus.Gauge
	families     prometheus.Gauge
	satisfaction prometheus.Gauge
}

func NewCollector() *Collector {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	return &Collector{
		ticksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ticks_total",
			Help:      "Simulated days advanced",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent computing one day",
			Buckets:   []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		buildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "builds_total",
				Help:      "Construction attempts by building type and result",
			},
			[]string{"type", "result"},
		),
		endingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "endings_total",
				Help:      "Sessions ended by reason",
			},
			[]string{"reason"},
		),
		day:          gauge("day", "Current simulated day"),
		budget:       gauge("budget", "Current city budget"),
		families:     gauge("families", "Current number of families"),
		satisfaction: gauge("satisfaction", "Current satisfaction, 0 to 100"),
	}
}

// Register adds every collector to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, m := range []prometheus.Collector{
		c.ticksTotal,
		c.tickDuration,
		c.buildsTotal,
		c.endingsTotal,
		c.day,
		c.budget,
		c.families,
		c.satisfaction,
	} {
		if err := reg.Register(m); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collector) RecordTick(day, budget, families, satisfaction int, elapsed time.Duration) {
	c.ticksTotal.Inc()
	c.tickDuration.Observe(elapsed.Seconds())
	c.day.Set(float64(day))
	c.budget.Set(float64(budget))
	c.families.Set(float64(families))
	c.satisfaction.Set(float64(satisfaction))
}

func (c *Collector) RecordBuild(buildingType string, accepted bool) {
	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	c.buildsTotal.WithLabelValues(buildingType, result).Inc()
}

func (c *Collector) RecordEnding(reason string) {
	c.endingsTotal.WithLabelValues(reason).Inc()
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordTick(int, int, int, int, time.Duration) {}
func (Nop) RecordBuild(string, bool)                     {}
func (Nop) RecordEnding(string)                          {}

// Handler serves reg in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

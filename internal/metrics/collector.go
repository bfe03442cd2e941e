// Package metrics turns roster events into prometheus metrics.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/kingrea/roster/internal/employee"
)

// Collector implements employee.Notifier on top of a private registry.
type Collector struct {
	registry   *prometheus.Registry
	headcount  prometheus.Gauge
	dismissals *prometheus.CounterVec
	releases   *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		headcount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "roster_headcount",
				Help: "Staff plus president after the last reported dismissal procedure",
			},
		),
		dismissals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roster_dismissals_total",
				Help: "Dismissals requested, by entry point",
			},
			[]string{"path"}, // "president", "company"
		),
		releases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roster_releases_total",
				Help: "Release notices emitted, by subject",
			},
			[]string{"subject"},
		),
	}
	c.registry = prometheus.NewRegistry()
	c.registry.MustRegister(c.headcount, c.dismissals, c.releases)
	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Notify records e.
func (c *Collector) Notify(e employee.Event) {
	switch e.Kind {
	case employee.EventHeadcount:
		c.headcount.Set(float64(e.Headcount))
	case employee.EventDismissed:
		c.dismissals.WithLabelValues("president").Inc()
	case employee.EventProcedureCompleted:
		c.dismissals.WithLabelValues("company").Inc()
	case employee.EventReleased:
		c.releases.WithLabelValues(e.Subject).Inc()
	}
}

// Sample is one gathered metric value.
type Sample struct {
	Key   string
	Value float64
}

// Snapshot gathers every metric and returns them sorted by key. Keys look like
// name{label="value"}.
func (c *Collector) Snapshot() ([]Sample, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}
	var samples []Sample
	for _, family := range families {
		for _, m := range family.GetMetric() {
			samples = append(samples, Sample{
				Key:   sampleKey(family.GetName(), m.GetLabel()),
				Value: sampleValue(family.GetType(), m),
			})
		}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Key < samples[j].Key })
	return samples, nil
}

func sampleKey(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
	}
	return name + "{" + strings.Join(parts, ",") + "}"
}

func sampleValue(kind dto.MetricType, m *dto.Metric) float64 {
	switch kind {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	default:
		return m.GetUntyped().GetValue()
	}
}

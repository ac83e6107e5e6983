// SPDX-License-Identifier: MIT
// Package: netgrowth/telemetry
//
// collector.go - Prometheus collector for growth runs.

package telemetry

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/netgrowth/growth"
	"github.com/katalvlaran/netgrowth/metrics"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "netgrowth"

// Collector holds all Prometheus metrics of one run.
type Collector struct {
	registry *prometheus.Registry

	// Step metrics
	Steps      *prometheus.CounterVec
	Fallbacks  *prometheus.CounterVec
	EdgesAdded prometheus.Counter
	Duplicates prometheus.Counter

	// Graph metrics, set from a metrics.Report
	Nodes            prometheus.Gauge
	Edges            prometheus.Gauge
	LargestComponent prometheus.Gauge
	Connected        prometheus.Gauge
	Diameter         prometheus.Gauge
	AveragePath      prometheus.Gauge
	Clustering       prometheus.Gauge
	DegreeNodes      *prometheus.GaugeVec
}

var _ growth.Observer = (*Collector)(nil)

// NewCollector creates a collector registered in its own registry, with
// runID as a constant label on every metric.
func NewCollector(namespace, runID string) *Collector {
	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{"run_id": runID}

	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: name, Help: help, ConstLabels: labels,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: name, Help: help, ConstLabels: labels,
		})
	}

	c := &Collector{
		registry: registry,
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "steps_total",
				Help:        "Growth steps by mechanism selected by the coin flip",
				ConstLabels: labels,
			},
			[]string{"mechanism"},
		),
		Fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "fallbacks_total",
				Help:        "Adamic-Adar steps delegated to preferential attachment, by reason",
				ConstLabels: labels,
			},
			[]string{"reason"},
		),
		EdgesAdded:       counter("edges_added_total", "Growth steps that inserted a new edge"),
		Duplicates:       counter("duplicate_edges_total", "Growth steps that hit an existing edge"),
		Nodes:            gauge("graph_nodes", "Node count"),
		Edges:            gauge("graph_edges", "Edge count"),
		LargestComponent: gauge("largest_component_nodes", "Size of the largest connected component"),
		Connected:        gauge("graph_connected", "1 if the graph is connected"),
		Diameter:         gauge("graph_diameter", "Diameter; absent when disconnected"),
		AveragePath:      gauge("graph_average_path_length", "Average shortest path length; absent when disconnected"),
		Clustering:       gauge("graph_clustering_coefficient", "Mean local clustering coefficient"),
		DegreeNodes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Name:        "degree_nodes",
				Help:        "Number of nodes per degree",
				ConstLabels: labels,
			},
			[]string{"degree"},
		),
	}

	registry.MustRegister(
		c.Steps, c.Fallbacks, c.EdgesAdded, c.Duplicates,
		c.Nodes, c.Edges, c.LargestComponent, c.Connected,
		c.Clustering, c.DegreeNodes,
	)

	return c
}

// OnAttachment counts one growth step.
func (c *Collector) OnAttachment(a growth.Attachment) {
	c.Steps.WithLabelValues(a.Mechanism.String()).Inc()
	if a.Fallback != growth.NoFallback {
		c.Fallbacks.WithLabelValues(a.Fallback.String()).Inc()
	}
	if a.Added {
		c.EdgesAdded.Inc()
	} else {
		c.Duplicates.Inc()
	}
}

// ObserveReport sets the graph gauges from r. Diameter and average path
// length are registered only when r describes a connected graph.
func (c *Collector) ObserveReport(r *metrics.Report) error {
	if r == nil {
		return fmt.Errorf("telemetry: nil report")
	}
	c.Nodes.Set(float64(r.Nodes))
	c.Edges.Set(float64(r.Edges))
	c.LargestComponent.Set(float64(len(r.Largest)))
	c.Clustering.Set(r.Clustering)
	for d, n := range r.Histogram {
		c.DegreeNodes.WithLabelValues(fmt.Sprint(d)).Set(float64(n))
	}

	if !r.Connected {
		c.Connected.Set(0)
		return nil
	}
	c.Connected.Set(1)
	c.Diameter.Set(float64(r.Diameter))
	c.AveragePath.Set(r.AveragePathLength)
	for _, col := range []prometheus.Collector{c.Diameter, c.AveragePath} {
		if err := c.registry.Register(col); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return fmt.Errorf("telemetry: register: %w", err)
			}
		}
	}

	return nil
}

// Gather returns the current metric families.
func (c *Collector) Gather() ([]*dto.MetricFamily, error) {
	return c.registry.Gather()
}

// Registry exposes the private registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// WriteTextfile writes all metrics to path in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	return nil
}

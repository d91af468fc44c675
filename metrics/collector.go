// SPDX-License-Identifier: MIT

// Package metrics exports graph size as Prometheus gauges.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Sizer is the subset of core.Graph the collector reads.
type Sizer interface {
	NodeCount() int
	EdgeCount() int
}

// GraphCollector reports the node and edge count of a graph on every scrape.
type GraphCollector struct {
	g     Sizer
	nodes *prometheus.Desc
	edges *prometheus.Desc
}

// NewGraphCollector returns a collector for g. Register it with a
// prometheus.Registerer; the graph is read at collection time.
func NewGraphCollector(namespace string, g Sizer) *GraphCollector {
	return &GraphCollector{
		g: g,
		nodes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "graph", "nodes"),
			"Number of nodes in the graph.",
			nil, nil,
		),
		edges: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "graph", "edges"),
			"Number of undirected edges in the graph, self-loops counted once.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *GraphCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodes
	ch <- c.edges
}

// Collect implements prometheus.Collector.
func (c *GraphCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(c.g.NodeCount()))
	ch <- prometheus.MustNewConstMetric(c.edges, prometheus.GaugeValue, float64(c.g.EdgeCount()))
}

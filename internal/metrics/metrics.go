// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query outcomes used as the "outcome" label.
const (
	OutcomeFound    = "found"
	OutcomeNoRoute  = "no_route"
	OutcomeError    = "error"
	OutcomeTimeout  = "timeout"
	OutcomeRejected = "rejected"
)

var latencyBuckets = []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 5000}

type Metrics struct {
	QueriesTotal    *prometheus.CounterVec
	QueryDurationMs *prometheus.HistogramVec
	NodesClosed     *prometheus.HistogramVec
	GraphNodes      prometheus.Gauge
	GraphEdges      prometheus.Gauge

	reg *prometheus.Registry
}

// New creates the collectors on a private registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roadpath_queries_total",
			Help: "Path queries by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		QueryDurationMs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roadpath_query_duration_ms",
			Help:    "Query run time in milliseconds, snapping included",
			Buckets: latencyBuckets,
		}, []string{"strategy"}),
		NodesClosed: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roadpath_nodes_closed",
			Help:    "Nodes expanded or finalised per query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"strategy"}),
		GraphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roadpath_graph_nodes",
			Help: "Nodes in the loaded graph",
		}),
		GraphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roadpath_graph_edges",
			Help: "Directed edges in the loaded graph",
		}),
		reg: prometheus.NewRegistry(),
	}
	m.reg.MustRegister(
		m.QueriesTotal, m.QueryDurationMs, m.NodesClosed, m.GraphNodes, m.GraphEdges,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// ObserveQuery records a completed search.
func (m *Metrics) ObserveQuery(strategy, outcome string, runTime time.Duration, closed int) {
	m.QueriesTotal.WithLabelValues(strategy, outcome).Inc()
	m.QueryDurationMs.WithLabelValues(strategy).Observe(float64(runTime.Microseconds()) / 1000)
	m.NodesClosed.WithLabelValues(strategy).Observe(float64(closed))
}

// CountQuery records a query that produced no search result.
func (m *Metrics) CountQuery(strategy, outcome string) {
	m.QueriesTotal.WithLabelValues(strategy, outcome).Inc()
}

// SetGraph publishes the size of the loaded graph.
func (m *Metrics) SetGraph(nodes, edges int) {
	m.GraphNodes.Set(float64(nodes))
	m.GraphEdges.Set(float64(edges))
}

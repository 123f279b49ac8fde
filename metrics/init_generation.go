package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGenerationMetrics() {
	r.GenerationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ripnet_generations_total",
			Help: "Total number of topology generations",
		},
		[]string{"status"},
	)

	r.GenerationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ripnet_generation_duration_seconds",
			Help:    "Topology generation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
	)

	r.PairsAttemptedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ripnet_pairs_attempted_total",
			Help: "Total number of node-pair iterations run",
		},
	)

	r.AddressCollisionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ripnet_address_collisions_total",
			Help: "Total number of node-pair iterations skipped because an address was already allocated",
		},
	)

	r.EdgesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ripnet_edges_total",
			Help: "Total number of edges created, by phase",
		},
		[]string{"phase"},
	)

	r.RepairSkippedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ripnet_repair_skipped_total",
			Help: "Total number of repair steps where the connection policy allowed no pairing",
		},
	)

	r.NodesAddedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ripnet_nodes_added_total",
			Help: "Total number of router nodes added by successful generations",
		},
	)

	r.TopologyNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ripnet_topology_nodes",
			Help: "Number of nodes in the topology the most recent generation wrote to, shared nodes included",
		},
	)
}

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Status label values for GenerationsTotal.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Phase label values for EdgesTotal.
const (
	PhaseInitial = "initial"
	PhaseRepair  = "repair"
)

// Registry holds all generation metrics.
type Registry struct {
	GenerationsTotal       *prometheus.CounterVec
	GenerationDuration     prometheus.Histogram
	PairsAttemptedTotal    prometheus.Counter
	AddressCollisionsTotal prometheus.Counter
	EdgesTotal             *prometheus.CounterVec
	RepairSkippedTotal     prometheus.Counter
	NodesAddedTotal        prometheus.Counter
	TopologyNodes          prometheus.Gauge

	registry *prometheus.Registry
}

// Generation is one finished run as seen by the collectors.
type Generation struct {
	PairsAttempted int
	Collisions     int
	InitialEdges   int
	RepairEdges    int
	RepairSkipped  int
	Nodes          int // added by this run
	TopologyNodes  int // whole topology afterwards, shared nodes included
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initGenerationMetrics()

	return r
}

// Gatherer returns the underlying Prometheus registry for scraping.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

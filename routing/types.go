// Package routing defines core types and configuration options for the
// reference routing tables computed over a core.Topology.
//
// A RIP simulation converges to the shortest-metric route between every pair
// of routers, where a route's metric is the sum of its link weights. Table
// computes that fixed point directly (Dijkstra from one source), so a
// simulator's converged tables can be checked against it.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |nodes|, E = |edges|
//	– Space: O(V + E)           (lazy decrease-key heap)
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the source address is empty.
//	– ErrNilTopology     if the topology pointer is nil.
//	– ErrSourceNotFound  if the source is not a member of the topology.
//	– ErrBadMaxMetric    if MaxMetric < 0 (panics in WithMaxMetric).
package routing

import (
	"errors"
	"math"
)

// Sentinel errors returned by this package.
var (
	// ErrEmptySource indicates that the source address is empty.
	ErrEmptySource = errors.New("routing: source address is empty")

	// ErrNilTopology indicates that a nil *core.Topology was passed.
	ErrNilTopology = errors.New("routing: topology is nil")

	// ErrSourceNotFound indicates that the source router is not in the topology.
	ErrSourceNotFound = errors.New("routing: source router not found")

	// ErrBadMaxMetric indicates a negative metric cap.
	ErrBadMaxMetric = errors.New("routing: MaxMetric must be non-negative")
)

// Unreachable is the metric reported for destinations with no route.
const Unreachable = math.MaxInt64

// Options configures the route computation.
//
// MaxMetric – routes whose metric would exceed this value are treated as
// unreachable, like RIP's infinity. Default math.MaxInt64 (no cap).
type Options struct {
	MaxMetric int64
}

// Option represents a functional option for configuring Table.
type Option func(*Options)

// WithMaxMetric caps route metrics. Panics on a negative value.
func WithMaxMetric(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxMetric.Error())
	}
	return func(o *Options) {
		o.MaxMetric = max
	}
}

// DefaultOptions returns Options with no metric cap.
func DefaultOptions() Options {
	return Options{MaxMetric: math.MaxInt64}
}

// Route is one entry of a router's converged table.
type Route struct {
	// Destination is the address of the target router.
	Destination string
	// NextHop is the first router on the path; empty for the source itself.
	NextHop string
	// Metric is the sum of link weights along the path.
	Metric int64
	// Hops is the number of links along the path.
	Hops int
}

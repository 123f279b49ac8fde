// SPDX-License-Identifier: MIT
// Package: ripnet/builder
//
// api.go - public entry point and accessors of the topology generator.
//
// Design contract (strict):
//   - One orchestrator: NewNetworkGraph(numNodePairs, opts...). Resolves cfg,
//     runs the pair phase (impl_pairs.go) then the repair phase (impl_stitch.go).
//   - Functional options (BuilderOption) resolve into builderConfig (no global state).
//   - Determinism: same numNodePairs, options and seed ⇒ identical topology and Render().
//   - Safety: never panic at runtime; return sentinel errors.
//
// Hints:
//   - Use WithSeed(...) to freeze a fixture; Seed() reports the seed actually used.
//   - Nodes() and Addresses() are snapshots; calling them twice without a new
//     generation yields equal content.

package builder

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/ripnet/bfs"
	"github.com/katalvlaran/ripnet/core"
	"github.com/katalvlaran/ripnet/metrics"
)

// Stats counts what happened during one generation.
type Stats struct {
	// PairsAttempted is the number of pair-phase iterations (== numNodePairs).
	PairsAttempted int
	// Collisions is the number of iterations skipped on address reuse.
	Collisions int
	// RoleDraws is the total number of role-pair draws in the pair phase.
	RoleDraws int
	// InitialEdges is the number of edges created by the pair phase.
	InitialEdges int
	// RepairEdges is the number of edges created by the repair phase.
	RepairEdges int
	// RepairSkipped is the number of repair steps where no pairing was allowed.
	RepairSkipped int
	// Nodes is the number of nodes this generator added.
	Nodes int
}

// NetworkGraph is a generated router topology together with the per-run
// state the generator keeps: the allocated-address set, the seed, the run ID
// and Stats.
//
// A NetworkGraph is not modified after NewNetworkGraph returns.
type NetworkGraph struct {
	topo      *core.Topology
	addresses map[string]struct{}

	runID  string
	seed   int64
	stats  Stats
	shared bool
}

// NewNetworkGraph generates a topology from numNodePairs pair attempts.
//
// Pair phase: each iteration draws two addresses; if either is already
// allocated the iteration is skipped silently. Otherwise two nodes with
// policy-approved roles are created and joined by one weighted edge.
// Repair phase: consecutive initial edges (in creation order) are linked by
// one extra edge between the first policy-approved endpoint pairing.
//
// numNodePairs counts attempts, not guaranteed pairs: the result has at most
// 2*numNodePairs nodes. Zero pairs yields an empty topology unless WithStrict.
//
// Errors:
//   - ErrTooFewPairs if numNodePairs < 0.
//   - ErrRolePolicyUnsatisfiable if the role draw is rejected maxRoleDraws times.
//   - ErrConstructFailed if a custom strategy produced a value core rejects.
//   - ErrEmptyTopology in strict mode when no initial edge was created.
//
// Complexity: O(numNodePairs) expected time and space.
func NewNetworkGraph(numNodePairs int, opts ...BuilderOption) (*NetworkGraph, error) {
	start := time.Now()
	cfg := newBuilderConfig(opts...)

	if numNodePairs < MinNodePairs {
		err := fmt.Errorf("%s: numNodePairs=%d < min=%d: %w", MethodNetworkGraph, numNodePairs, MinNodePairs, ErrTooFewPairs)
		recordFailure(cfg, start)
		return nil, err
	}

	ng := &NetworkGraph{
		topo:      cfg.topology,
		addresses: make(map[string]struct{}, 2*numNodePairs),
		runID:     uuid.NewString(),
		shared:    cfg.topology != nil,
	}
	if ng.topo == nil {
		ng.topo = core.NewTopology()
	}
	// No seed requested: draw one from the clock and keep it for replay.
	if cfg.rng == nil {
		cfg = withResolvedSeed(cfg, time.Now().UnixNano())
	}
	ng.seed = cfg.seed

	log := cfg.logger.With(slog.String("run_id", ng.runID))
	log.Debug("generation started", slog.Int("pairs", numNodePairs), slog.Int64("seed", ng.seed))

	g := &generator{cfg: cfg, ng: ng, log: log}
	initial, err := g.pairs(numNodePairs)
	if err == nil {
		err = g.stitch(initial)
	}
	if err != nil {
		g.rollback()
		recordFailure(cfg, start)
		return nil, err
	}

	if cfg.strict && len(initial) == 0 {
		recordFailure(cfg, start)
		return nil, fmt.Errorf("%s: %d pairs attempted, %d collided: %w",
			MethodNetworkGraph, ng.stats.PairsAttempted, ng.stats.Collisions, ErrEmptyTopology)
	}

	log.Info("generation finished",
		slog.Int("pairs", numNodePairs),
		slog.Int("nodes", ng.stats.Nodes),
		slog.Int("initial_edges", ng.stats.InitialEdges),
		slog.Int("repair_edges", ng.stats.RepairEdges),
		slog.Int("collisions", ng.stats.Collisions),
		slog.Duration("elapsed", time.Since(start)),
	)
	if cfg.metrics != nil {
		cfg.metrics.RecordGeneration(metrics.StatusSuccess, time.Since(start), metrics.Generation{
			PairsAttempted: ng.stats.PairsAttempted,
			Collisions:     ng.stats.Collisions,
			InitialEdges:   ng.stats.InitialEdges,
			RepairEdges:    ng.stats.RepairEdges,
			RepairSkipped:  ng.stats.RepairSkipped,
			Nodes:          ng.stats.Nodes,
			TopologyNodes:  ng.topo.NodeCount(),
		})
	}

	return ng, nil
}

// withResolvedSeed returns cfg with a fresh RNG seeded by seed.
func withResolvedSeed(cfg builderConfig, seed int64) builderConfig {
	WithSeed(seed)(&cfg)
	return cfg
}

// recordFailure reports an unsuccessful run to the metrics registry, if any.
func recordFailure(cfg builderConfig, start time.Time) {
	if cfg.metrics != nil {
		cfg.metrics.RecordGeneration(metrics.StatusError, time.Since(start), metrics.Generation{})
	}
}

// Topology returns the container holding the generated nodes. When the
// generator was given WithTopology, this is that shared topology and may
// contain nodes of other generators.
func (ng *NetworkGraph) Topology() *core.Topology { return ng.topo }

// Nodes returns a snapshot of the node collection in insertion order.
func (ng *NetworkGraph) Nodes() []*core.Node { return ng.topo.Nodes() }

// Addresses returns this generator's allocated addresses, sorted ascending.
// Unlike Nodes, it never includes addresses allocated by other generators
// sharing the same topology.
func (ng *NetworkGraph) Addresses() []string {
	out := make([]string, 0, len(ng.addresses))
	for a := range ng.addresses {
		out = append(out, a)
	}
	sort.Strings(out)

	return out
}

// HasAddress reports whether this generator allocated addr.
func (ng *NetworkGraph) HasAddress(addr string) bool {
	_, ok := ng.addresses[addr]
	return ok
}

// Render returns the topology text: one "\t<x> to <y> weight: <w>" line per
// node/edge incidence, so each edge appears once from each endpoint.
func (ng *NetworkGraph) Render() string { return ng.topo.Render() }

// String is Render.
func (ng *NetworkGraph) String() string { return ng.Render() }

// Stats returns the counters of this generation.
func (ng *NetworkGraph) Stats() Stats { return ng.stats }

// RunID returns the unique identifier attached to this run's log records.
func (ng *NetworkGraph) RunID() string { return ng.runID }

// Seed returns the seed the RNG was created from. It is 0 when the caller
// supplied its own *rand.Rand through WithRand.
func (ng *NetworkGraph) Seed() int64 { return ng.seed }

// Shared reports whether the nodes live in a topology passed via WithTopology.
func (ng *NetworkGraph) Shared() bool { return ng.shared }

// Components returns the connected components of the topology, see bfs.Components.
func (ng *NetworkGraph) Components() [][]string {
	comps, _ := bfs.Components(ng.topo)
	return comps
}

// Connected reports whether the topology forms a single component.
// An empty topology is not connected.
func (ng *NetworkGraph) Connected() bool {
	ok, _ := bfs.IsConnected(ng.topo)
	return ok
}

// HopsFrom returns the fewest-hop distances from the router at addr to every
// router it can reach, capped at the RIP horizon (RIPInfinity-1 hops).
func (ng *NetworkGraph) HopsFrom(addr string) (*bfs.HopTable, error) {
	return bfs.HopsFrom(ng.topo, addr, bfs.WithMaxHops(bfs.RIPInfinity-1))
}

// Diameter returns the longest fewest-hop distance inside any component.
// RIP converges on the whole topology only when it is below bfs.RIPInfinity.
func (ng *NetworkGraph) Diameter() int {
	d, _ := bfs.Diameter(ng.topo)
	return d
}

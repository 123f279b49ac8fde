// SPDX-License-Identifier: MIT
// Package: ripnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are documented; no package-level mutable state.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng          = nil               (seeded from the clock at generation time)
//   • addressFn    = DefaultAddressFn  ("a.b.c.d", each octet in [0,255))
//   • weightFn     = NonZeroWeightFn   ([1,99])
//   • roleFn       = UniformRoleFn
//   • roles        = {core, edge}
//   • policy       = AllowAll
//   • maxRoleDraws = DefaultMaxRoleDraws
//   • strict       = false             (empty topology is valid)
//   • topology     = nil               (fresh core.Topology per generator)
//   • logger       = discard
//   • metrics      = nil               (no collection)

package builder

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/ripnet/core"
	"github.com/katalvlaran/ripnet/metrics"
)

// builderConfig aggregates all knobs used by the generator.
// It is passed by VALUE into each run.
type builderConfig struct {
	// RNG for every draw; nil means "seed from the clock".
	rng *rand.Rand
	// seed recorded by WithSeed; seeded reports whether it is meaningful.
	seed   int64
	seeded bool

	addressFn AddressFn
	weightFn  WeightFn
	roleFn    RoleFn
	roles     []core.Role
	policy    ConnectionPolicy

	// Upper bound on consecutive rejected role-pair draws.
	maxRoleDraws int
	// strict turns an edgeless result into ErrEmptyTopology.
	strict bool

	// Explicitly shared node container; nil → private topology.
	topology *core.Topology

	logger  *slog.Logger
	metrics *metrics.Registry
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		addressFn:    DefaultAddressFn,
		weightFn:     NonZeroWeightFn,
		roleFn:       UniformRoleFn,
		roles:        core.DefaultRoles(),
		policy:       AllowAll,
		maxRoleDraws: DefaultMaxRoleDraws,
		logger:       discardLogger(),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// discardLogger returns a logger that drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SPDX-License-Identifier: MIT
// Package: ripnet/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.
//
// Hints:
//   • Prefer WithSeed for reproducible fixtures; NetworkGraph.Seed() reports it.
//   • WithTopology is the only way to make two generators share nodes.
//   • WithConnectionPolicy is the extension point for role compatibility rules.

package builder

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/ripnet/core"
	"github.com/katalvlaran/ripnet/metrics"
)

// BuilderOption customizes the generator by mutating a builderConfig
// instance before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
		c.seeded = false
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and simulation sweeps to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
		c.seed, c.seeded = seed, true
	}
}

// WithAddressFn overrides the address draw. Panics on nil.
func WithAddressFn(fn AddressFn) BuilderOption {
	if fn == nil {
		panic("builder: WithAddressFn(nil)")
	}
	return func(c *builderConfig) {
		c.addressFn = fn
	}
}

// WithWeightFn overrides the per-edge weight draw. The function must return
// values in [core.MinWeight, core.MaxWeight]; anything else fails generation
// with ErrConstructFailed. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithRoleFn overrides how a role is picked from the configured set.
// Panics on nil.
func WithRoleFn(fn RoleFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRoleFn(nil)")
	}
	return func(c *builderConfig) {
		c.roleFn = fn
	}
}

// WithRoles replaces the role-label set. Panics on an empty set or an empty label.
func WithRoles(roles ...core.Role) BuilderOption {
	if len(roles) == 0 {
		panic("builder: WithRoles() needs at least one role")
	}
	for _, r := range roles {
		if r == "" {
			panic("builder: WithRoles(\"\")")
		}
	}
	cp := make([]core.Role, len(roles))
	copy(cp, roles)

	return func(c *builderConfig) {
		c.roles = cp
	}
}

// WithConnectionPolicy installs the role-compatibility predicate used by both
// phases. Panics on nil.
func WithConnectionPolicy(p ConnectionPolicy) BuilderOption {
	if p == nil {
		panic("builder: WithConnectionPolicy(nil)")
	}
	return func(c *builderConfig) {
		c.policy = p
	}
}

// WithMaxRoleDraws bounds the number of role-pair draws per iteration before
// ErrRolePolicyUnsatisfiable. Panics if n < 1.
func WithMaxRoleDraws(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxRoleDraws(n<1)")
	}
	return func(c *builderConfig) {
		c.maxRoleDraws = n
	}
}

// WithStrict makes an edgeless result an error (ErrEmptyTopology) instead of
// a valid empty topology.
func WithStrict() BuilderOption {
	return func(c *builderConfig) {
		c.strict = true
	}
}

// WithTopology makes the generator add its nodes and edges to t instead of a
// private topology. Several generators given the same t share one node
// collection; each still keeps its own allocated-address set. Panics on nil.
func WithTopology(t *core.Topology) BuilderOption {
	if t == nil {
		panic("builder: WithTopology(nil)")
	}
	return func(c *builderConfig) {
		c.topology = t
	}
}

// WithLogger routes generation logs to l. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithMetrics records every generation into r. Panics on nil.
func WithMetrics(r *metrics.Registry) BuilderOption {
	if r == nil {
		panic("builder: WithMetrics(nil)")
	}
	return func(c *builderConfig) {
		c.metrics = r
	}
}

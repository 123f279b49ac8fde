// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ripnet/core"
	"github.com/katalvlaran/ripnet/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaults verifies the documented defaults of newBuilderConfig.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "no RNG until generation seeds one")
	assert.False(t, cfg.seeded)
	assert.Equal(t, core.DefaultRoles(), cfg.roles)
	assert.Equal(t, DefaultMaxRoleDraws, cfg.maxRoleDraws)
	assert.False(t, cfg.strict)
	assert.Nil(t, cfg.topology)
	assert.Nil(t, cfg.metrics)
	require.NotNil(t, cfg.logger)
	assert.True(t, cfg.policy(core.RoleEdge, core.RoleEdge))

	rng := rand.New(rand.NewSource(1))
	assert.Contains(t, cfg.roles, cfg.roleFn(rng, cfg.roles))
	w := cfg.weightFn(rng)
	assert.True(t, w >= core.MinWeight && w <= core.MaxWeight)
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. WithRand installs the exact RNG and clears the seed flag.
	exp := rand.New(rand.NewSource(123))
	cfg := newBuilderConfig(WithSeed(5), WithRand(exp))
	assert.Same(t, exp, cfg.rng)
	assert.False(t, cfg.seeded)

	// 2. WithSeed is reproducible.
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	for i := 0; i < 5; i++ {
		require.Equal(t, a.rng.Int63(), b.rng.Int63(), "draw %d", i)
	}
	assert.True(t, a.seeded)
	assert.Equal(t, int64(42), a.seed)

	// 3. Last option wins.
	c := newBuilderConfig(WithRand(exp), WithSeed(7))
	assert.NotSame(t, exp, c.rng)
	assert.Equal(t, int64(7), c.seed)
}

// TestOptionOverrides checks that each option writes its own field only.
func TestOptionOverrides(t *testing.T) {
	t.Parallel()

	topo := core.NewTopology()
	reg := metrics.NewRegistry()
	cfg := newBuilderConfig(
		WithRoles("spine", "leaf"),
		WithMaxRoleDraws(3),
		WithStrict(),
		WithTopology(topo),
		WithMetrics(reg),
		WithConstantWeight(9),
		WithAddressFn(FixedAddressFn("1.2.3.4")),
	)

	assert.Equal(t, []core.Role{"spine", "leaf"}, cfg.roles)
	assert.Equal(t, 3, cfg.maxRoleDraws)
	assert.True(t, cfg.strict)
	assert.Same(t, topo, cfg.topology)
	assert.Same(t, reg, cfg.metrics)
	assert.Equal(t, 9, cfg.weightFn(nil))
	assert.Equal(t, "1.2.3.4", cfg.addressFn(nil))
}

// TestWithRoles_CopiesInput ensures later mutation of the caller's slice has no effect.
func TestWithRoles_CopiesInput(t *testing.T) {
	t.Parallel()

	roles := []core.Role{"a", "b"}
	opt := WithRoles(roles...)
	roles[0] = "mutated"

	cfg := newBuilderConfig(opt)
	assert.Equal(t, []core.Role{"a", "b"}, cfg.roles)
}

// TestOptionPanics verifies that option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"WithRand(nil)", func() { WithRand(nil) }},
		{"WithAddressFn(nil)", func() { WithAddressFn(nil) }},
		{"WithWeightFn(nil)", func() { WithWeightFn(nil) }},
		{"WithRoleFn(nil)", func() { WithRoleFn(nil) }},
		{"WithRoles()", func() { WithRoles() }},
		{"WithRoles(\"\")", func() { WithRoles("core", "") }},
		{"WithConnectionPolicy(nil)", func() { WithConnectionPolicy(nil) }},
		{"WithMaxRoleDraws(0)", func() { WithMaxRoleDraws(0) }},
		{"WithTopology(nil)", func() { WithTopology(nil) }},
		{"WithLogger(nil)", func() { WithLogger(nil) }},
		{"WithMetrics(nil)", func() { WithMetrics(nil) }},
		{"WithPrefixAddresses(256)", func() { WithPrefixAddresses(256) }},
		{"WithUniformWeight(0,5)", func() { WithUniformWeight(0, 5) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tc.fn)
		})
	}
}

// TestBatchSeeds covers the three seed derivation modes.
func TestBatchSeeds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int64{10, 11, 12}, batchSeeds(newBuilderConfig(WithSeed(10)), 3))

	r1 := rand.New(rand.NewSource(3))
	r2 := rand.New(rand.NewSource(3))
	got := batchSeeds(newBuilderConfig(WithRand(r1)), 2)
	assert.Equal(t, []int64{r2.Int63(), r2.Int63()}, got)

	clock := batchSeeds(newBuilderConfig(), 3)
	assert.Equal(t, clock[0]+1, clock[1])
	assert.Equal(t, clock[0]+2, clock[2])
}

// Package builder_test contains unit tests for the draw strategies
// (WeightFn, AddressFn, RoleFn, ConnectionPolicy) of the builder package.
package builder_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/ripnet/builder"
	"github.com/katalvlaran/ripnet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_zero", func() builder.WeightFn { return builder.ConstantWeightFn(0) }},
		{"ConstantWeightFn_100", func() builder.WeightFn { return builder.ConstantWeightFn(100) }},
		{"UniformWeightFn_minZero", func() builder.WeightFn { return builder.UniformWeightFn(0, 5) }},
		{"UniformWeightFn_maxTooBig", func() builder.WeightFn { return builder.UniformWeightFn(1, 100) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestNonZeroWeightFn_Range draws many weights and checks the [1,99] range.
func TestNonZeroWeightFn_Range(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	seen := make(map[int]bool)
	for i := 0; i < 20000; i++ {
		w := builder.NonZeroWeightFn(rng)
		require.GreaterOrEqual(t, w, 1)
		require.LessOrEqual(t, w, 99)
		seen[w] = true
	}
	assert.False(t, seen[0])
	assert.Len(t, seen, 99, "every value of [1,99] shows up in 20000 draws")
}

// TestUniformWeightFn_Bounds checks inclusive bounds and the degenerate span.
func TestUniformWeightFn_Bounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	fn := builder.UniformWeightFn(10, 12)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		w := fn(rng)
		require.True(t, w >= 10 && w <= 12, "w=%d", w)
		seen[w] = true
	}
	assert.Len(t, seen, 3)

	assert.Equal(t, 5, builder.UniformWeightFn(5, 5)(rng))
	assert.Equal(t, 42, builder.ConstantWeightFn(42)(nil))
}

// TestDefaultAddressFn_Format checks the dotted-quad shape and octet range.
func TestDefaultAddressFn_Format(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		addr := builder.DefaultAddressFn(rng)
		parts := strings.Split(addr, builder.AddressSeparator)
		require.Len(t, parts, builder.AddressOctets, addr)
		for _, p := range parts {
			o, err := strconv.Atoi(p)
			require.NoError(t, err, addr)
			require.True(t, o >= 0 && o < builder.OctetBound, "octet %d in %s", o, addr)
		}
	}
}

// TestPrefixAddressFn keeps the fixed octets and rejects bad prefixes.
func TestPrefixAddressFn(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2))
	fn := builder.PrefixAddressFn(10, 0)
	for i := 0; i < 50; i++ {
		assert.True(t, strings.HasPrefix(fn(rng), "10.0."))
	}
	assert.Equal(t, "192.168.1.1", builder.PrefixAddressFn(192, 168, 1, 1)(rng))

	assert.Panics(t, func() { builder.PrefixAddressFn(1, 2, 3, 4, 5) })
	assert.Panics(t, func() { builder.PrefixAddressFn(-1) })
	assert.Panics(t, func() { builder.FixedAddressFn("") })
}

// TestUniformRoleFn_CoversAllRoles checks that every label gets picked.
func TestUniformRoleFn_CoversAllRoles(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	roles := []core.Role{"a", "b", "c"}
	seen := make(map[core.Role]int)
	for i := 0; i < 300; i++ {
		seen[builder.UniformRoleFn(rng, roles)]++
	}
	assert.Len(t, seen, 3)
}

// TestForbidPairs_Symmetric checks both orders of a denied pair.
func TestForbidPairs_Symmetric(t *testing.T) {
	t.Parallel()

	p := builder.ForbidPairs([2]core.Role{core.RoleCore, core.RoleEdge})
	assert.False(t, p(core.RoleCore, core.RoleEdge))
	assert.False(t, p(core.RoleEdge, core.RoleCore))
	assert.True(t, p(core.RoleCore, core.RoleCore))
	assert.True(t, p(core.RoleEdge, core.RoleEdge))

	assert.True(t, builder.AllowAll("x", "y"))
	assert.True(t, builder.ForbidPairs()(core.RoleEdge, core.RoleEdge), "empty deny-list allows all")
}

// Package builder provides the role selection strategy and the role
// compatibility policy used by both generation phases.
package builder

import (
	"math/rand"

	"github.com/katalvlaran/ripnet/core"
)

// RoleFn picks one role out of roles using rng. roles is never empty.
type RoleFn func(rng *rand.Rand, roles []core.Role) core.Role

// UniformRoleFn picks uniformly: roles[rng.Intn(len(roles))].
// Complexity: O(1).
func UniformRoleFn(rng *rand.Rand, roles []core.Role) core.Role {
	return roles[rng.Intn(len(roles))]
}

// ConnectionPolicy reports whether a node of role a may be linked to a node
// of role b. Policies must be pure; the generator may call them many times.
type ConnectionPolicy func(a, b core.Role) bool

// AllowAll accepts every pairing. It is the default: no host/router
// distinction is modelled yet, so every role may connect to every other.
func AllowAll(_, _ core.Role) bool { return true }

// ForbidPairs returns a symmetric deny-list policy: (a,b) is rejected iff
// {a,b} matches one of pairs in either order. Everything else is allowed.
// Example: ForbidPairs([2]core.Role{core.RoleEdge, core.RoleEdge}) keeps edge
// routers from linking directly to each other.
func ForbidPairs(pairs ...[2]core.Role) ConnectionPolicy {
	deny := make(map[[2]core.Role]struct{}, 2*len(pairs))
	for _, p := range pairs {
		deny[p] = struct{}{}
		deny[[2]core.Role{p[1], p[0]}] = struct{}{}
	}

	return func(a, b core.Role) bool {
		_, blocked := deny[[2]core.Role{a, b}]
		return !blocked
	}
}

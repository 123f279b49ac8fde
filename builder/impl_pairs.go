// SPDX-License-Identifier: MIT
// Package: ripnet/builder
//
// impl_pairs.go - pair phase: initial edges from independent node pairs.
//
// Contract:
//   - Runs exactly n iterations; a collided iteration produces nothing and is
//     not retried.
//   - Collision: either drawn address already allocated by this generator,
//     already present in the (possibly shared) topology, or both draws equal.
//   - Role pairs are redrawn until the policy accepts, at most maxRoleDraws times.
//   - Per successful iteration, in order: 2 address draws, ≥1 role-pair draws,
//     1 weight draw. Fixed draw order keeps runs reproducible per seed.
//   - The weight is drawn and range-checked before the nodes are committed,
//     so a rejected weight never leaves an unlinked pair behind.
//   - Returns initial edges in creation order (the repair phase depends on it).
//   - On error the caller rolls back every node this run added (rollback).
//
// Complexity:
//   - Time: O(n) expected (role draws are O(1) for a permissive policy).
//   - Space: O(n) for the initial edge slice.

package builder

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ripnet/core"
)

// generator carries the state of one NewNetworkGraph run across both phases.
type generator struct {
	cfg builderConfig
	ng  *NetworkGraph
	log *slog.Logger
}

// pairs runs the pair phase and returns the initial edges in creation order.
func (g *generator) pairs(n int) ([]*core.Edge, error) {
	initial := make([]*core.Edge, 0, n)
	rng := g.cfg.rng

	for i := 0; i < n; i++ {
		g.ng.stats.PairsAttempted++

		addr1 := g.cfg.addressFn(rng)
		addr2 := g.cfg.addressFn(rng)
		if g.collides(addr1, addr2) {
			g.skip(i, addr1, addr2)
			continue
		}

		role1, role2, err := g.drawRoles()
		if err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", MethodPairs, i, err)
		}

		w, err := g.weight(MethodPairs, addr1, addr2)
		if err != nil {
			return nil, err
		}

		x := core.NewNode(addr1, role1)
		y := core.NewNode(addr2, role2)
		if err = g.ng.topo.AddNodes(x, y); err != nil {
			// Another generator sharing the topology took one of the
			// addresses after collides() looked: same outcome as a collision.
			if errors.Is(err, core.ErrDuplicateAddress) {
				g.skip(i, addr1, addr2)
				continue
			}
			return nil, wrapf(MethodPairs, ErrConstructFailed, err, "AddNodes(%q,%q)", addr1, addr2)
		}
		g.ng.addresses[addr1] = struct{}{}
		g.ng.addresses[addr2] = struct{}{}
		g.ng.stats.Nodes += 2

		e, err := g.ng.topo.Connect(x, y, w)
		if err != nil {
			return nil, wrapf(MethodPairs, ErrConstructFailed, err, "Connect(%s—%s, w=%d)", addr1, addr2, w)
		}
		initial = append(initial, e)
		g.ng.stats.InitialEdges++
	}

	return initial, nil
}

// weight draws one link weight and rejects values core would refuse.
func (g *generator) weight(method, a, b string) (int, error) {
	w := g.cfg.weightFn(g.cfg.rng)
	if w < core.MinWeight || w > core.MaxWeight {
		return 0, wrapf(method, ErrConstructFailed, core.ErrBadWeight,
			"weight %d for %s—%s not in [%d,%d]", w, a, b, core.MinWeight, core.MaxWeight)
	}

	return w, nil
}

// rollback removes every node this run added, and with them every edge of
// the run, so a failed generation leaves a shared topology as it found it.
func (g *generator) rollback() {
	addrs := g.ng.Addresses()
	if len(addrs) == 0 {
		return
	}
	removed := g.ng.topo.RemoveNodes(addrs...)
	g.log.Debug("generation rolled back", slog.Int("nodes", removed))
}

// collides reports whether the pair (a, b) cannot be used.
func (g *generator) collides(a, b string) bool {
	if a == b {
		return true
	}
	if _, ok := g.ng.addresses[a]; ok {
		return true
	}
	if _, ok := g.ng.addresses[b]; ok {
		return true
	}
	if g.ng.shared {
		return g.ng.topo.HasNode(a) || g.ng.topo.HasNode(b)
	}

	return false
}

// skip accounts for a wasted iteration.
func (g *generator) skip(i int, a, b string) {
	g.ng.stats.Collisions++
	g.log.Debug("address collision, pair skipped",
		slog.Int("iteration", i), slog.String("addr1", a), slog.String("addr2", b))
}

// drawRoles draws role pairs until the policy accepts one.
//
// Termination: bounded by maxRoleDraws. With AllowAll the first draw is
// accepted; with a restrictive but satisfiable policy each draw succeeds with
// a fixed positive probability, so hitting the bound is unlikely but possible,
// and an unsatisfiable policy always hits it.
func (g *generator) drawRoles() (core.Role, core.Role, error) {
	rng, roles := g.cfg.rng, g.cfg.roles
	for draw := 0; draw < g.cfg.maxRoleDraws; draw++ {
		g.ng.stats.RoleDraws++
		r1 := g.cfg.roleFn(rng, roles)
		r2 := g.cfg.roleFn(rng, roles)
		if g.cfg.policy(r1, r2) {
			return r1, r2, nil
		}
	}

	return "", "", fmt.Errorf("%d draws over roles %v: %w", g.cfg.maxRoleDraws, roles, ErrRolePolicyUnsatisfiable)
}

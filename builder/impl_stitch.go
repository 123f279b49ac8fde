// SPDX-License-Identifier: MIT
// Package: ripnet/builder
//
// impl_stitch.go - repair phase: link consecutive initial edges.
//
// Canonical model:
//   - Walk the initial edges in creation order as a sliding pair (cur, next):
//     N edges ⇒ N-1 steps; N ≤ 1 ⇒ no step.
//   - Per step try, in this order, (curX,nextX), (curX,nextY), (curY,nextX),
//     (curY,nextY); connect the first pairing the policy allows with a fresh
//     weight. No allowed pairing ⇒ no edge, silently.
//
// This is a best-effort heuristic. With a permissive policy and a private
// topology it yields a single component (each step joins two adjacent
// initial edges); a restrictive policy can leave the result fragmented.
//
// Complexity:
//   - Time: O(N) steps, each O(1).
//   - Space: O(1) extra.

package builder

import (
	"log/slog"

	"github.com/katalvlaran/ripnet/core"
)

// stitch runs the repair phase over initial.
func (g *generator) stitch(initial []*core.Edge) error {
	if len(initial) < 2 {
		return nil
	}

	cur := initial[0]
	for _, next := range initial[1:] {
		u, v, ok := g.firstAllowed(cur, next)
		if !ok {
			g.ng.stats.RepairSkipped++
			g.log.Debug("no allowed pairing, repair step skipped",
				slog.String("cur", cur.ID()), slog.String("next", next.ID()))
			cur = next
			continue
		}

		w, err := g.weight(MethodStitch, u.Address(), v.Address())
		if err != nil {
			return err
		}
		if _, err = g.ng.topo.Connect(u, v, w); err != nil {
			return wrapf(MethodStitch, ErrConstructFailed, err, "Connect(%s—%s, w=%d)", u.Address(), v.Address(), w)
		}
		g.ng.stats.RepairEdges++
		cur = next
	}

	return nil
}

// firstAllowed returns the first endpoint pairing between cur and next that
// the policy accepts, in the fixed priority order XX, XY, YX, YY.
func (g *generator) firstAllowed(cur, next *core.Edge) (*core.Node, *core.Node, bool) {
	candidates := [4][2]*core.Node{
		{cur.X(), next.X()},
		{cur.X(), next.Y()},
		{cur.Y(), next.X()},
		{cur.Y(), next.Y()},
	}
	for _, c := range candidates {
		if g.cfg.policy(c[0].Role(), c[1].Role()) {
			return c[0], c[1], true
		}
	}

	return nil, nil, false
}

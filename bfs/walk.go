package bfs

import (
	"fmt"

	"github.com/katalvlaran/ripnet/core"
)

// HopsFrom walks t breadth-first from source and returns its HopTable.
//
// Neighbors are expanded in link creation order, so Order and every Path are
// reproducible for a given topology. Parallel links count once.
//
// Errors: ErrTopologyNil, ErrSourceNotFound, or ctx.Err() from WithContext.
// Complexity: O(V + E).
func HopsFrom(t *core.Topology, source string, opts ...Option) (*HopTable, error) {
	if t == nil {
		return nil, ErrTopologyNil
	}
	if !t.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	return walk(t, source, newWalkConfig(opts))
}

// walk is HopsFrom without argument checks.
func walk(t *core.Topology, source string, cfg walkConfig) (*HopTable, error) {
	h := &HopTable{
		Source: source,
		Order:  []string{source},
		hops:   map[string]int{source: 0},
		parent: map[string]string{},
	}

	// Order doubles as the FIFO queue: items [head:] are still to expand.
	for head := 0; head < len(h.Order); head++ {
		if err := cfg.ctx.Err(); err != nil {
			return nil, err
		}
		u := h.Order[head]
		next := h.hops[u] + 1
		if cfg.maxHops > 0 && next > cfg.maxHops {
			continue
		}
		nbrs, err := t.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", u, err)
		}
		for _, v := range nbrs {
			if _, seen := h.hops[v]; seen {
				continue
			}
			h.hops[v] = next
			h.parent[v] = u
			h.Order = append(h.Order, v)
		}
	}

	return h, nil
}

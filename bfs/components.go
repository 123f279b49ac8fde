package bfs

import (
	"github.com/katalvlaran/ripnet/core"
)

// Components partitions the nodes of t into connected components.
//
// Components appear in the insertion order of their first node; each lists
// its addresses in visit order from that node. An empty topology has no
// components. WithMaxHops is ignored here; WithContext is honoured.
// Complexity: O(V+E).
func Components(t *core.Topology, opts ...Option) ([][]string, error) {
	if t == nil {
		return nil, ErrTopologyNil
	}
	cfg := newWalkConfig(opts)
	cfg.maxHops = 0

	seen := make(map[string]bool, t.NodeCount())
	var comps [][]string
	for _, n := range t.Nodes() {
		if seen[n.Address()] {
			continue
		}
		h, err := walk(t, n.Address(), cfg)
		if err != nil {
			return nil, err
		}
		for _, addr := range h.Order {
			seen[addr] = true
		}
		comps = append(comps, h.Order)
	}

	return comps, nil
}

// IsConnected reports whether t forms exactly one component.
// An empty topology is not connected.
func IsConnected(t *core.Topology, opts ...Option) (bool, error) {
	comps, err := Components(t, opts...)
	if err != nil {
		return false, err
	}

	return len(comps) == 1, nil
}

// Diameter returns the largest fewest-hop distance between any two routers
// of the same component. A RIP domain needs Diameter < RIPInfinity for every
// router to learn every route. Empty and edgeless topologies have diameter 0.
// Complexity: O(V·(V+E)).
func Diameter(t *core.Topology, opts ...Option) (int, error) {
	if t == nil {
		return 0, ErrTopologyNil
	}
	cfg := newWalkConfig(opts)
	cfg.maxHops = 0

	best := 0
	for _, n := range t.Nodes() {
		h, err := walk(t, n.Address(), cfg)
		if err != nil {
			return 0, err
		}
		if e := h.Eccentricity(); e > best {
			best = e
		}
	}

	return best, nil
}

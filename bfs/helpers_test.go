package bfs_test

import (
	"strconv"

	"github.com/katalvlaran/ripnet/core"
)

// link is an undirected router link used to build fixtures.
type link struct{ a, b string }

// newTopology builds a topology from isolated addresses and links; nodes are
// created on first mention, in order. Weights are 1.
func newTopology(isolated []string, links ...link) *core.Topology {
	topo := core.NewTopology()
	get := func(addr string) *core.Node {
		if n, err := topo.Node(addr); err == nil {
			return n
		}
		n := core.NewNode(addr, core.RoleCore)
		if err := topo.AddNode(n); err != nil {
			panic(err)
		}
		return n
	}
	for _, addr := range isolated {
		get(addr)
	}
	for _, l := range links {
		if _, err := topo.Connect(get(l.a), get(l.b), 1); err != nil {
			panic(err)
		}
	}

	return topo
}

// chainLinks returns links v0—v1—…—v<n>.
func chainLinks(prefix string, n int) []link {
	out := make([]link, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, link{prefix + strconv.Itoa(i), prefix + strconv.Itoa(i+1)})
	}
	return out
}

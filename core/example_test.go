package core_test

import (
	"fmt"

	"github.com/katalvlaran/ripnet/core"
)

// ExampleTopology demonstrates building a three-router chain by hand and
// listing its edges.
func ExampleTopology() {
	topo := core.NewTopology()

	// 1) Three routers with fixed addresses:
	r1 := core.NewNode("10.0.0.1", core.RoleCore)
	r2 := core.NewNode("10.0.0.2", core.RoleEdge)
	r3 := core.NewNode("10.0.0.3", core.RoleEdge)
	for _, n := range []*core.Node{r1, r2, r3} {
		_ = topo.AddNode(n)
	}

	// 2) Weighted links:
	_, _ = topo.Connect(r1, r2, 4)
	_, _ = topo.Connect(r2, r3, 9)

	// 3) Inspect:
	fmt.Println("nodes:", topo.NodeCount(), "edges:", topo.EdgeCount())
	for _, e := range topo.Edges() {
		fmt.Println(e.ID(), e)
	}

	// Output:
	// nodes: 3 edges: 2
	// e1 10.0.0.1 to 10.0.0.2 weight: 4
	// e2 10.0.0.2 to 10.0.0.3 weight: 9
}

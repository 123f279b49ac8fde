package routing_test

import (
	"fmt"

	"github.com/katalvlaran/ripnet/core"
	"github.com/katalvlaran/ripnet/routing"
)

// ExampleTable prints the converged table of one router in a triangle where
// the direct link is more expensive than the detour.
func ExampleTable() {
	topo := core.NewTopology()
	r1 := core.NewNode("10.0.0.1", core.RoleCore)
	r2 := core.NewNode("10.0.0.2", core.RoleEdge)
	r3 := core.NewNode("10.0.0.3", core.RoleEdge)
	_ = topo.AddNodes(r1, r2, r3)
	_, _ = topo.Connect(r1, r2, 2)
	_, _ = topo.Connect(r2, r3, 2)
	_, _ = topo.Connect(r1, r3, 7)

	routes, _ := routing.Table(topo, "10.0.0.1")
	for _, r := range routes {
		fmt.Printf("%s via %q metric %d hops %d\n", r.Destination, r.NextHop, r.Metric, r.Hops)
	}
	// Output:
	// 10.0.0.1 via "" metric 0 hops 0
	// 10.0.0.2 via "10.0.0.2" metric 2 hops 1
	// 10.0.0.3 via "10.0.0.2" metric 4 hops 2
}

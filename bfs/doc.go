// Package bfs measures a generated router network in hops, the distance RIP
// itself counts, ignoring link weights.
//
//	h, err := bfs.HopsFrom(topo, "10.0.0.1", bfs.WithMaxHops(bfs.RIPInfinity-1))
//	n, ok := h.Hops("10.0.0.9")   // fewest hops, reached?
//	path := h.Path("10.0.0.9")    // [10.0.0.1 ... 10.0.0.9]
//
//	comps, _ := bfs.Components(topo) // islands, insertion order
//	d, _ := bfs.Diameter(topo)       // longest shortest hop count
//
// The topology generator does not promise a connected result, and RIP only
// converges inside a domain whose diameter stays below RIPInfinity; these are
// the two checks a simulation driver runs before it starts.
//
// Determinism: core.Topology.Neighbors returns addresses in link creation
// order and Components starts from nodes in insertion order, so every result
// is reproducible for a given topology.
//
// Complexity: HopsFrom, Components and IsConnected are O(V+E); Diameter is
// O(V·(V+E)).
package bfs

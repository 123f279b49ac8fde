// Package ripnet generates randomized router topologies for RIP routing
// simulations: unique dotted-quad addresses, role-labelled routers, and
// weighted links (metric 1..99), built in two phases and rendered as text.
//
// 🚀 What is ripnet?
//
//	A small, thread-safe library that brings together:
//		• Core primitives: routers (Node), links (Edge) and a locked Topology
//		• Generation: random router pairs plus a stitching pass between them
//		• Policies: pluggable address, weight and role draws, role compatibility
//		• Batches: many independent topologies on a worker pool
//		• Analysis: BFS hop counts, connected components, converged RIP tables
//		• Config & metrics: YAML/TOML job files, Prometheus collectors
//
// Under the hood, everything is organized under these subpackages:
//
//	core/     — Node, Edge, Role & the thread-safe Topology container, text rendering
//	builder/  — NewNetworkGraph / GenerateBatch and every generation option
//	bfs/      — hop tables (RIP horizon), Components, IsConnected, Diameter
//	routing/  — converged distance-vector tables: Table, Metric, WithMaxMetric
//	config/   — Load(path) for .yaml/.yml/.toml, validation, mapping to options
//	metrics/  — Prometheus registry fed by builder.WithMetrics
//
// Quick example:
//
//	ng, err := builder.NewNetworkGraph(3, builder.WithSeed(7))
//	if err != nil { ... }
//	fmt.Println(ng.Render())
//
//	    10.0.0.1───10.0.0.2        pair phase:   1 link per pair
//	        │                      repair phase: 1 link per consecutive pair
//	    10.0.0.3───10.0.0.4
//
//	go get github.com/katalvlaran/ripnet
package ripnet

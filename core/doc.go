// Package core provides a thread-safe in-memory router Topology with a
// minimal API surface: nodes identified by address, carrying a Role, joined
// by undirected weighted edges.
//
// The Topology T = (V,E):
//
//   - Nodes are unique by address (AddNode rejects duplicates with ErrDuplicateAddress).
//   - Edges are undirected and weighted, weights in [MinWeight, MaxWeight] = [1, 99].
//   - Self-loops are rejected (ErrLoopNotAllowed); parallel edges are permitted.
//   - Every edge is referenced by both endpoints' incidence lists and by the
//     topology's edge catalog; both endpoints are always members.
//   - Edge IDs are generated per topology ("e1", "e2", ...).
//
// Why use core.Topology?
//
//   - Deterministic iteration: Nodes() is insertion ordered, Edges() is creation
//     ordered, Node.Edges() is connection ordered. Same inputs give the same text.
//   - Explicit ownership: there is no package-level node set. Sharing a
//     topology between producers means passing the same *Topology around.
//   - Safe sharing: a single sync.RWMutex guards nodes, edges and incidence lists.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n *Node) error                 // O(1)
//	AddNodes(ns ...*Node) error            // all or nothing
//	RemoveNodes(addresses ...string) int   // O(V+E), drops incident edges
//	HasNode(address string) bool           // O(1)
//	Node(address string) (*Node, error)    // O(1)
//
//	// Edge lifecycle
//	Connect(x, y *Node, weight int) (*Edge, error) // O(1)
//
//	// Query
//	Nodes() []*Node                        // O(V), insertion order
//	Edges() []*Edge                        // O(E), creation order
//	Neighbors(address string) ([]string, error)
//	Degree(address string) (int, error)
//	Addresses() []string                   // O(V log V), sorted
//	NodeCount(), EdgeCount()               // O(1)
//
//	// Text views
//	Render() string                        // every edge once per endpoint
//	RenderUnique() string                  // every edge once
//
// Render output format (one line per node/edge incidence, no trailing newline):
//
//	\t10.0.0.1 to 10.0.0.2 weight: 17
//
// See: types.go, methods_nodes.go, methods_edges.go, view.go.
package core

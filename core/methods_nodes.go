// File: methods_nodes.go
// Role: Node lifecycle & queries on Topology, plus Node accessors.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
//   - Node.Edges() returns incident edges in the order they were connected.
//
// Concurrency:
//   - Node catalog and incidence lists are protected by Topology.mu.
package core

import (
	"fmt"
	"sort"
)

// Address returns the node's unique address.
func (n *Node) Address() string { return n.address }

// Role returns the node's role label.
func (n *Node) Role() Role { return n.role }

// Edges returns a copy of the incident edges in connection order.
//
// The incidence list is only appended to while its Topology holds the write
// lock; callers reading a topology that is still being generated should go
// through Topology.Neighbors instead.
func (n *Node) Edges() []*Edge {
	out := make([]*Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// Degree returns the number of incident edges.
func (n *Node) Degree() int { return len(n.edges) }

// Equal reports whether n and other have the same address, the same role
// and the same set of incident edges. Edges are compared by identity, so
// nodes of different topologies are never equal once either has a link.
// Complexity: O(d) where d is the degree.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.address != other.address || n.role != other.role || len(n.edges) != len(other.edges) {
		return false
	}
	set := make(map[*Edge]struct{}, len(n.edges))
	for _, e := range n.edges {
		set[e] = struct{}{}
	}
	for _, e := range other.edges {
		if _, ok := set[e]; !ok {
			return false
		}
	}

	return true
}

// String renders the node as "<address> (<role>)".
func (n *Node) String() string {
	return fmt.Sprintf("%s (%s)", n.address, n.role)
}

// AddNode inserts n into the topology.
//
// Steps:
//  1. Reject nil nodes and empty addresses.
//  2. Under write lock, reject an address that is already present.
//  3. Append to the insertion-ordered list and index by address.
//
// A node already attached to another topology must not be added again.
// Complexity: O(1) amortized.
func (t *Topology) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.address == "" {
		return ErrEmptyAddress
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.index[n.address]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAddress, n.address)
	}
	t.nodes = append(t.nodes, n)
	t.index[n.address] = n

	return nil
}

// AddNodes inserts all of ns or none of them. It fails with the same
// sentinels as AddNode, and also with ErrDuplicateAddress when two of ns
// share an address.
// Complexity: O(len(ns)).
func (t *Topology) AddNodes(ns ...*Node) error {
	batch := make(map[string]struct{}, len(ns))
	for _, n := range ns {
		if n == nil {
			return ErrNilNode
		}
		if n.address == "" {
			return ErrEmptyAddress
		}
		if _, dup := batch[n.address]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateAddress, n.address)
		}
		batch[n.address] = struct{}{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, n := range ns {
		if _, ok := t.index[n.address]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateAddress, n.address)
		}
	}
	for _, n := range ns {
		t.nodes = append(t.nodes, n)
		t.index[n.address] = n
	}

	return nil
}

// HasNode reports whether a node with the given address is a member.
// Complexity: O(1).
func (t *Topology) HasNode(address string) bool {
	if address == "" {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.index[address]

	return ok
}

// Node returns the member with the given address or ErrNodeNotFound.
// Complexity: O(1).
func (t *Topology) Node(address string) (*Node, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.index[address]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, address)
	}

	return n, nil
}

// Nodes returns a snapshot of all nodes in insertion order.
// Complexity: O(V).
func (t *Topology) Nodes() []*Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*Node, len(t.nodes))
	copy(out, t.nodes)

	return out
}

// Addresses returns all member addresses sorted ascending.
// Complexity: O(V log V).
func (t *Topology) Addresses() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.nodes))
	for _, n := range t.nodes {
		out = append(out, n.address)
	}
	sort.Strings(out)

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (t *Topology) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.nodes)
}

// RemoveNodes deletes the nodes at the given addresses together with every
// edge incident to them, and returns how many nodes were removed. Unknown
// addresses are ignored. Edge IDs of removed edges are not reused.
//
// Removed nodes are detached: their incidence lists are cleared.
// Complexity: O(V + E).
func (t *Topology) RemoveNodes(addresses ...string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	gone := make(map[*Node]struct{}, len(addresses))
	for _, a := range addresses {
		if n, ok := t.index[a]; ok {
			gone[n] = struct{}{}
			delete(t.index, a)
		}
	}
	if len(gone) == 0 {
		return 0
	}

	kept := t.nodes[:0]
	for _, n := range t.nodes {
		if _, ok := gone[n]; !ok {
			kept = append(kept, n)
		}
	}
	clear(t.nodes[len(kept):])
	t.nodes = kept

	edges := t.edges[:0]
	for _, e := range t.edges {
		_, xGone := gone[e.x]
		_, yGone := gone[e.y]
		switch {
		case !xGone && !yGone:
			edges = append(edges, e)
		case !xGone:
			e.x.edges = dropEdge(e.x.edges, e)
		case !yGone:
			e.y.edges = dropEdge(e.y.edges, e)
		}
	}
	clear(t.edges[len(edges):])
	t.edges = edges

	for n := range gone {
		n.edges = nil
	}

	return len(gone)
}

// dropEdge removes e from es, keeping order.
func dropEdge(es []*Edge, e *Edge) []*Edge {
	for i, cur := range es {
		if cur == e {
			return append(es[:i], es[i+1:]...)
		}
	}

	return es
}

// Degree returns the number of edges incident to the node at address.
// Complexity: O(1).
func (t *Topology) Degree(address string) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.index[address]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNodeNotFound, address)
	}

	return len(n.edges), nil
}

// Neighbors returns the addresses adjacent to address, in edge order,
// without duplicates.
// Complexity: O(d).
func (t *Topology) Neighbors(address string) ([]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.index[address]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, address)
	}
	seen := make(map[string]struct{}, len(n.edges))
	out := make([]string, 0, len(n.edges))
	for _, e := range n.edges {
		other := e.Other(n).address
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}

	return out, nil
}

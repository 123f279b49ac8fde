// File: methods_edges.go
// Role: Edge lifecycle & queries: Connect/Edges/EdgeCount, Edge accessors,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order, which is also Edge.ID order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Connect runs under the Topology write lock.
//   - Read queries under the Topology read lock.

package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// ID returns the topology-unique edge identifier.
func (e *Edge) ID() string { return e.id }

// X returns the first endpoint.
func (e *Edge) X() *Node { return e.x }

// Y returns the second endpoint.
func (e *Edge) Y() *Node { return e.y }

// Weight returns the edge cost in [MinWeight, MaxWeight].
func (e *Edge) Weight() int { return e.weight }

// Other returns the endpoint opposite to n, or nil if n is not an endpoint.
func (e *Edge) Other(n *Node) *Node {
	switch n {
	case e.x:
		return e.y
	case e.y:
		return e.x
	default:
		return nil
	}
}

// String renders the edge as "<addrX> to <addrY> weight: <w>".
func (e *Edge) String() string {
	return e.x.address + " to " + e.y.address + " weight: " + strconv.Itoa(e.weight)
}

// Connect creates an undirected edge x—y with the given weight and registers
// it on both endpoints' incidence lists.
//
// Steps:
//  1. Validate endpoints (non-nil, distinct) and weight range.
//  2. Under write lock, require both endpoints to be members of t.
//  3. Allocate the next edge ID, append to the catalog and to both nodes.
//
// Parallel edges between the same pair are permitted.
//
// Complexity: O(1) amortized.
func (t *Topology) Connect(x, y *Node, weight int) (*Edge, error) {
	if x == nil || y == nil {
		return nil, ErrNilNode
	}
	if x == y || x.address == y.address {
		return nil, fmt.Errorf("%w: %s", ErrLoopNotAllowed, x.address)
	}
	if weight < MinWeight || weight > MaxWeight {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrBadWeight, weight, MinWeight, MaxWeight)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.index[x.address] != x {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, x.address)
	}
	if t.index[y.address] != y {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, y.address)
	}

	e := &Edge{id: nextEdgeID(t), x: x, y: y, weight: weight}
	t.edges = append(t.edges, e)
	x.edges = append(x.edges, e)
	y.edges = append(y.edges, e)

	return e, nil
}

// Edges returns all edges in creation order.
// Complexity: O(E).
func (t *Topology) Edges() []*Edge {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*Edge, len(t.edges))
	copy(out, t.edges)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (t *Topology) EdgeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.edges)
}

// nextEdgeID returns the next edge identifier. Caller holds t.mu.
func nextEdgeID(t *Topology) string {
	t.nextEdgeID++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, t.nextEdgeID, 10)

	return string(buf)
}

// Package core defines the central Topology, Node, and Edge types,
// and provides thread-safe primitives for building and querying router topologies.
//
// Topology guards its node catalog and its edge catalog with a single
// sync.RWMutex, so a Topology handed to several generators can be mutated
// from different goroutines.
//
// This file declares Role, Node, Edge, Topology, sentinel errors,
// and the NewTopology constructor.
//
// Errors:
//
//	ErrNilNode          - node pointer is nil.
//	ErrEmptyAddress     - node address is the empty string.
//	ErrDuplicateAddress - a node with the same address is already present.
//	ErrNodeNotFound     - requested node does not exist in this topology.
//	ErrLoopNotAllowed   - both endpoints of an edge are the same node.
//	ErrBadWeight        - edge weight outside [MinWeight, MaxWeight].
//	ErrUnknownRole      - role label outside the known role set.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core topology operations.
var (
	// ErrNilNode indicates a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("core: node is nil")

	// ErrEmptyAddress indicates that the provided Node has an empty address.
	ErrEmptyAddress = errors.New("core: node address is empty")

	// ErrDuplicateAddress indicates a second node with an already used address.
	ErrDuplicateAddress = errors.New("core: duplicate node address")

	// ErrNodeNotFound indicates an operation referenced a node that is not a member.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates an edge from a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates an edge weight outside [MinWeight, MaxWeight].
	ErrBadWeight = errors.New("core: edge weight out of range")

	// ErrUnknownRole indicates a role label that is not part of the known set.
	ErrUnknownRole = errors.New("core: unknown role")
)

// Edge weight bounds. Weights are drawn from [0,100) with zero rejected.
const (
	MinWeight = 1
	MaxWeight = 99
)

// Role is a coarse category label on a Node.
type Role string

// Known router roles.
const (
	RoleCore Role = "core"
	RoleEdge Role = "edge"
)

// DefaultRoles returns the fixed role-label set {core, edge} in a fresh slice.
func DefaultRoles() []Role {
	return []Role{RoleCore, RoleEdge}
}

// ParseRole converts a label into a known Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCore, RoleEdge:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// Node is a router in the topology.
//
// Address uniquely identifies the Node within its Topology. The incident edge
// list is only appended to by Topology.Connect, so a Node is effectively
// immutable once generation is over.
type Node struct {
	address string
	role    Role

	// incident edges in insertion order; guarded by the owning Topology's lock.
	edges []*Edge
}

// NewNode returns a detached Node with the given address and role.
// It becomes part of a topology through Topology.AddNode.
func NewNode(address string, role Role) *Node {
	return &Node{address: address, role: role}
}

// Edge is an undirected, weighted connection between two nodes.
//
// Each Edge has a topology-unique ID ("e1", "e2", ...), endpoints X and Y,
// and an integer Weight in [MinWeight, MaxWeight]. Edges are never mutated
// after construction.
type Edge struct {
	id     string
	x, y   *Node
	weight int
}

// Topology is the in-memory router graph: an insertion-ordered node
// collection indexed by address, plus the catalog of every edge created
// through Connect.
//
// mu protects nodes, index, edges and every Node.edges slice reachable from them.
type Topology struct {
	mu sync.RWMutex

	nextEdgeID uint64           // edge ID generator, bumped under mu
	nodes      []*Node          // insertion order
	index      map[string]*Node // address → Node
	edges      []*Edge          // creation order (== ID order)
}

// NewTopology creates an empty Topology.
// Complexity: O(1)
func NewTopology() *Topology {
	return &Topology{
		index: make(map[string]*Node),
	}
}

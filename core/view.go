// File: view.go
// Role: Non-mutating text views of a Topology.
// Determinism:
//   - Node insertion order, then per-node edge connection order.
// Concurrency:
//   - Read lock on the topology for the whole rendering.

package core

import "strings"

// renderIndent prefixes every rendered edge line.
const renderIndent = "\t"

// Render emits one line per (node, incident edge) pair:
//
//	"\t<addrX> to <addrY> weight: <w>"
//
// Nodes are visited in insertion order and each node's edges in connection
// order, so every edge is printed twice, once from each endpoint. Lines are
// joined by "\n" with no trailing newline. An empty topology renders "".
// Complexity: O(V + E).
func (t *Topology) Render() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var sb strings.Builder
	for _, n := range t.nodes {
		for _, e := range n.edges {
			writeEdgeLine(&sb, e)
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// RenderUnique is Render without the per-endpoint duplication: every edge is
// printed exactly once, in edge-ID order.
// Complexity: O(E).
func (t *Topology) RenderUnique() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var sb strings.Builder
	for _, e := range t.edges {
		writeEdgeLine(&sb, e)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// String is Render.
func (t *Topology) String() string { return t.Render() }

func writeEdgeLine(sb *strings.Builder, e *Edge) {
	sb.WriteString(renderIndent)
	sb.WriteString(e.String())
	sb.WriteByte('\n')
}

package core_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/ripnet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildLine returns a topology a—b—c with weights 3 and 7.
func buildLine(t *testing.T) (*core.Topology, *core.Node, *core.Node, *core.Node) {
	t.Helper()
	topo := core.NewTopology()
	a := core.NewNode("10.0.0.1", core.RoleCore)
	b := core.NewNode("10.0.0.2", core.RoleEdge)
	c := core.NewNode("10.0.0.3", core.RoleCore)
	for _, n := range []*core.Node{a, b, c} {
		require.NoError(t, topo.AddNode(n))
	}
	_, err := topo.Connect(a, b, 3)
	require.NoError(t, err)
	_, err = topo.Connect(b, c, 7)
	require.NoError(t, err)

	return topo, a, b, c
}

func TestTopology_AddNode_Errors(t *testing.T) {
	t.Parallel()

	topo := core.NewTopology()
	require.ErrorIs(t, topo.AddNode(nil), core.ErrNilNode)
	require.ErrorIs(t, topo.AddNode(core.NewNode("", core.RoleCore)), core.ErrEmptyAddress)

	require.NoError(t, topo.AddNode(core.NewNode("1.1.1.1", core.RoleCore)))
	err := topo.AddNode(core.NewNode("1.1.1.1", core.RoleEdge))
	require.ErrorIs(t, err, core.ErrDuplicateAddress)
	assert.Equal(t, 1, topo.NodeCount())
}

func TestTopology_Connect_Errors(t *testing.T) {
	t.Parallel()

	topo := core.NewTopology()
	a := core.NewNode("1.1.1.1", core.RoleCore)
	b := core.NewNode("2.2.2.2", core.RoleEdge)
	stranger := core.NewNode("3.3.3.3", core.RoleEdge)
	require.NoError(t, topo.AddNode(a))
	require.NoError(t, topo.AddNode(b))

	tests := []struct {
		name   string
		x, y   *core.Node
		weight int
		want   error
	}{
		{"nil endpoint", a, nil, 5, core.ErrNilNode},
		{"self loop", a, a, 5, core.ErrLoopNotAllowed},
		{"zero weight", a, b, 0, core.ErrBadWeight},
		{"weight too big", a, b, core.MaxWeight + 1, core.ErrBadWeight},
		{"foreign node", a, stranger, 5, core.ErrNodeNotFound},
		{"same address, other pointer", core.NewNode("1.1.1.1", core.RoleCore), b, 5, core.ErrNodeNotFound},
	}
	for _, tc := range tests {
		_, err := topo.Connect(tc.x, tc.y, tc.weight)
		require.ErrorIs(t, err, tc.want, tc.name)
	}
	assert.Zero(t, topo.EdgeCount(), "failed Connect calls leave no edge behind")
	assert.Zero(t, a.Degree())
}

func TestTopology_Connect_RegistersBothEndpoints(t *testing.T) {
	t.Parallel()

	topo, a, b, c := buildLine(t)

	require.Equal(t, 3, topo.NodeCount())
	require.Equal(t, 2, topo.EdgeCount())

	edges := topo.Edges()
	assert.Equal(t, "e1", edges[0].ID())
	assert.Equal(t, "e2", edges[1].ID())
	assert.Same(t, a, edges[0].X())
	assert.Same(t, b, edges[0].Y())
	assert.Same(t, b, edges[0].Other(a))
	assert.Same(t, a, edges[0].Other(b))
	assert.Nil(t, edges[0].Other(c))

	assert.Equal(t, 1, a.Degree())
	assert.Equal(t, 2, b.Degree())
	assert.Equal(t, 1, c.Degree())

	deg, err := topo.Degree("10.0.0.2")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
	_, err = topo.Degree("9.9.9.9")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestTopology_Queries(t *testing.T) {
	t.Parallel()

	topo, a, _, _ := buildLine(t)

	assert.True(t, topo.HasNode("10.0.0.1"))
	assert.False(t, topo.HasNode(""))
	assert.False(t, topo.HasNode("10.0.0.4"))

	got, err := topo.Node("10.0.0.1")
	require.NoError(t, err)
	assert.Same(t, a, got)
	_, err = topo.Node("nope")
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	nbrs, err := topo.Neighbors("10.0.0.2")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"10.0.0.1", "10.0.0.3"}, nbrs); diff != "" {
		t.Errorf("Neighbors mismatch (-want +got):\n%s", diff)
	}

	var order []string
	for _, n := range topo.Nodes() {
		order = append(order, n.Address())
	}
	if diff := cmp.Diff([]string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}, order); diff != "" {
		t.Errorf("Nodes order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}, topo.Addresses())
}

func TestTopology_Neighbors_ParallelEdges(t *testing.T) {
	t.Parallel()

	topo := core.NewTopology()
	a := core.NewNode("1.0.0.1", core.RoleCore)
	b := core.NewNode("1.0.0.2", core.RoleCore)
	require.NoError(t, topo.AddNode(a))
	require.NoError(t, topo.AddNode(b))
	_, err := topo.Connect(a, b, 1)
	require.NoError(t, err)
	_, err = topo.Connect(b, a, 2)
	require.NoError(t, err)

	nbrs, err := topo.Neighbors("1.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.0.0.2"}, nbrs, "neighbors are unique")
	assert.Equal(t, 2, a.Degree(), "degree counts parallel edges")
}

func TestTopology_Render(t *testing.T) {
	t.Parallel()

	topo, _, _, _ := buildLine(t)

	want := strings.Join([]string{
		"\t10.0.0.1 to 10.0.0.2 weight: 3", // from 10.0.0.1
		"\t10.0.0.1 to 10.0.0.2 weight: 3", // from 10.0.0.2
		"\t10.0.0.2 to 10.0.0.3 weight: 7", // from 10.0.0.2
		"\t10.0.0.2 to 10.0.0.3 weight: 7", // from 10.0.0.3
	}, "\n")
	if diff := cmp.Diff(want, topo.Render()); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, topo.Render(), topo.String())

	wantUnique := "\t10.0.0.1 to 10.0.0.2 weight: 3\n\t10.0.0.2 to 10.0.0.3 weight: 7"
	assert.Equal(t, wantUnique, topo.RenderUnique())
}

func TestTopology_Render_Empty(t *testing.T) {
	t.Parallel()

	topo := core.NewTopology()
	assert.Empty(t, topo.Render())
	assert.Empty(t, topo.RenderUnique())

	require.NoError(t, topo.AddNode(core.NewNode("1.2.3.4", core.RoleCore)))
	assert.Empty(t, topo.Render(), "isolated nodes emit no lines")
}

func TestNode_EdgesReturnsCopy(t *testing.T) {
	t.Parallel()

	_, a, _, _ := buildLine(t)
	es := a.Edges()
	es[0] = nil
	assert.NotNil(t, a.Edges()[0])
}

func TestTopology_AddNodes_AllOrNothing(t *testing.T) {
	t.Parallel()

	topo := core.NewTopology()
	require.NoError(t, topo.AddNode(core.NewNode("10.0.0.1", core.RoleCore)))

	err := topo.AddNodes(core.NewNode("10.0.0.2", core.RoleCore), core.NewNode("10.0.0.1", core.RoleEdge))
	require.ErrorIs(t, err, core.ErrDuplicateAddress)
	assert.False(t, topo.HasNode("10.0.0.2"), "first node of a rejected batch must not be added")

	err = topo.AddNodes(core.NewNode("10.0.0.3", core.RoleCore), core.NewNode("10.0.0.3", core.RoleEdge))
	require.ErrorIs(t, err, core.ErrDuplicateAddress, "duplicates inside the batch")

	require.ErrorIs(t, topo.AddNodes(core.NewNode("10.0.0.4", core.RoleCore), nil), core.ErrNilNode)
	require.ErrorIs(t, topo.AddNodes(core.NewNode("", core.RoleCore)), core.ErrEmptyAddress)

	require.NoError(t, topo.AddNodes(core.NewNode("10.0.0.5", core.RoleCore), core.NewNode("10.0.0.6", core.RoleEdge)))
	assert.Equal(t, 3, topo.NodeCount())
}

func TestTopology_RemoveNodes(t *testing.T) {
	t.Parallel()

	topo, a, b, c := buildLine(t)
	d := core.NewNode("10.0.0.4", core.RoleEdge)
	require.NoError(t, topo.AddNode(d))
	_, err := topo.Connect(c, d, 2)
	require.NoError(t, err)

	// b sits in the middle: both a—b and b—c go with it.
	assert.Equal(t, 1, topo.RemoveNodes("10.0.0.2", "10.0.0.99"))
	assert.False(t, topo.HasNode("10.0.0.2"))
	assert.Equal(t, 3, topo.NodeCount())
	assert.Equal(t, 1, topo.EdgeCount())
	assert.Zero(t, a.Degree())
	assert.Equal(t, 1, c.Degree())
	assert.Zero(t, b.Degree(), "removed node is detached")

	if diff := cmp.Diff([]string{"e3"}, edgeIDList(topo.Edges())); diff != "" {
		t.Errorf("remaining edges mismatch (-want +got):\n%s", diff)
	}
	nbrs, err := topo.Neighbors("10.0.0.3")
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.4"}, nbrs)

	// IDs keep counting after removal.
	e, err := topo.Connect(a, c, 4)
	require.NoError(t, err)
	assert.Equal(t, "e4", e.ID())

	assert.Zero(t, topo.RemoveNodes())
	assert.Zero(t, topo.RemoveNodes("10.0.0.2"))
}

// edgeIDList maps edges to their IDs, keeping order.
func edgeIDList(es []*core.Edge) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID()
	}

	return out
}

package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddNode_DuplicateIDIgnored(t *testing.T) {
	t.Parallel()

	g := New()
	g.AddNode(&Node{ID: "a", Label: "first", Kind: KindStep})
	g.AddNode(&Node{ID: "a", Label: "second", Kind: KindCompensation})

	nodes := g.Nodes()
	require.Len(t, nodes, 1)
	require.Equal(t, "first", nodes[0].Label, "first insertion must stay authoritative")
	require.Equal(t, KindStep, nodes[0].Kind)
}

func TestAddEdge_EndpointChecks(t *testing.T) {
	t.Parallel()

	g := New()
	g.AddNode(&Node{ID: "a", Kind: KindStep})
	g.AddNode(&Node{ID: "b", Kind: KindStep})

	require.NoError(t, g.AddEdge(&Edge{From: "a", To: "b", Kind: EdgeDependency}))
	require.Error(t, g.AddEdge(&Edge{From: "a", To: "missing", Kind: EdgeDependency}))
	require.Error(t, g.AddEdge(&Edge{From: "missing", To: "b", Kind: EdgeDependency}))
	require.Error(t, g.AddEdge(&Edge{From: "a", To: "a", Kind: EdgeDependency}), "self-referential edge must be rejected")

	require.Len(t, g.Edges(), 1)
}

func TestAddEdge_ParallelEdgesAllowed(t *testing.T) {
	t.Parallel()

	g := New()
	g.AddNode(&Node{ID: "a", Kind: KindStep})
	g.AddNode(&Node{ID: "b", Kind: KindCompensation})

	require.NoError(t, g.AddEdge(&Edge{From: "a", To: "b", Kind: EdgeDependency}))
	require.NoError(t, g.AddEdge(&Edge{From: "a", To: "b", Kind: EdgeCompensation}))

	edges := g.Edges()
	require.Len(t, edges, 2)
	require.Equal(t, EdgeDependency, edges[0].Kind)
	require.Equal(t, EdgeCompensation, edges[1].Kind)
}

func TestNodes_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	g := New()
	for _, id := range []string{"z", "m", "a", "q"} {
		g.AddNode(&Node{ID: id, Kind: KindStep})
	}

	var got []string
	for _, n := range g.Nodes() {
		got = append(got, n.ID)
	}
	require.Equal(t, []string{"z", "m", "a", "q"}, got)
}

func TestClear(t *testing.T) {
	t.Parallel()

	g := New()
	g.AddNode(&Node{ID: "a", Kind: KindStep})
	g.AddNode(&Node{ID: "b", Kind: KindStep})
	require.NoError(t, g.AddEdge(&Edge{From: "a", To: "b", Kind: EdgeFlow}))
	require.False(t, g.Empty())

	g.Clear()

	require.True(t, g.Empty())
	_, ok := g.Node("a")
	require.False(t, ok)
}

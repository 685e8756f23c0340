package spanning_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparsegraph/sparsegraph/core"
	"github.com/sparsegraph/sparsegraph/spanning"
)

// triangle is the three-node reference graph: 0-1:2, 0-2:5, 1-2:1.
func triangle() core.Graph {
	g := core.NewGraph(3)
	g.AddEdge(0, 1, 2.0)
	g.AddEdge(0, 2, 5.0)
	g.AddEdge(1, 2, 1.0)
	return g
}

func TestTree_Triangle(t *testing.T) {
	tree, err := spanning.Tree(triangle(), 0)
	require.NoError(t, err)

	require.Equal(t, 0, tree.Root)
	require.Equal(t, []float64{0.0, 2.0, 3.0}, tree.Distances)
	require.Equal(t, []int{spanning.NoPredecessor, 0, 1}, tree.Predecessors)
}

func TestTree_RootInvariants(t *testing.T) {
	g := triangle()
	for root := 0; root < g.Order(); root++ {
		tree, err := spanning.Tree(g, root)
		require.NoError(t, err)
		require.Zero(t, tree.Distances[root])
		require.Equal(t, spanning.NoPredecessor, tree.Predecessors[root])
	}
}

func TestTree_InvalidRoot(t *testing.T) {
	g := triangle()
	for _, root := range []int{-1, 3, 42} {
		_, err := spanning.Tree(g, root)
		require.ErrorIs(t, err, core.ErrNodeOutOfRange, "root %d", root)
	}
}

func TestTree_UnreachableNodesAreNotAnError(t *testing.T) {
	g := core.NewGraph(4)
	g.AddEdge(0, 1, 1.5)
	// nodes 2 and 3 form an island
	g.AddEdge(2, 3, 1.0)

	tree, err := spanning.Tree(g, 0)
	require.NoError(t, err)
	require.Equal(t, 1.5, tree.Distances[1])
	require.True(t, math.IsInf(tree.Distances[2], 1))
	require.True(t, math.IsInf(tree.Distances[3], 1))
	require.Equal(t, spanning.NoPredecessor, tree.Predecessors[2])
	require.False(t, tree.Reaches(2))
	require.True(t, tree.Reaches(1))
}

func TestTree_SingleIsolatedNode(t *testing.T) {
	tree, err := spanning.Tree(core.NewGraph(1), 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0.0}, tree.Distances)
	require.Equal(t, []int{spanning.NoPredecessor}, tree.Predecessors)
}

func TestTree_TriangleInequality(t *testing.T) {
	// For every arc (u,v) with u reachable: dist[v] <= dist[u] + w(u,v).
	g := core.NewGraph(6)
	g.AddEdge(0, 1, 311)
	g.AddEdge(1, 2, 878)
	g.AddEdge(1, 3, 1439)
	g.AddEdge(1, 4, 1053)
	g.AddEdge(2, 3, 1181)
	g.AddEdge(4, 5, 623)

	tree, err := spanning.Tree(g, 0)
	require.NoError(t, err)

	for u := 0; u < g.Order(); u++ {
		if math.IsInf(tree.Distances[u], 1) {
			continue
		}
		for v, w := range g.Neighbors(u) {
			require.LessOrEqual(t, tree.Distances[v], tree.Distances[u]+w,
				"arc %d→%d violates the triangle inequality", u, v)
		}
	}
}

func TestTree_Idempotent(t *testing.T) {
	g := triangle()
	snapshot := g.Clone()

	first, err := spanning.Tree(g, 1)
	require.NoError(t, err)
	second, err := spanning.Tree(g, 1)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, snapshot, g, "query mutated the input graph")
}

func TestPath_FromRoot(t *testing.T) {
	tree, err := spanning.Tree(triangle(), 0)
	require.NoError(t, err)

	path, length, err := tree.Path(0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)
	require.Equal(t, 3.0, length)
}

func TestPath_ToRoot(t *testing.T) {
	tree, err := spanning.Tree(triangle(), 0)
	require.NoError(t, err)

	path, length, err := tree.Path(2, 0)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, path)
	require.Equal(t, 3.0, length)
}

func TestPath_ThroughRoot(t *testing.T) {
	// Between two non-root endpoints the route passes through the root.
	tree, err := spanning.Tree(triangle(), 0)
	require.NoError(t, err)

	path, length, err := tree.Path(1, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 1, 2}, path)
	require.Equal(t, 5.0, length)
}

func TestPath_RootToItself(t *testing.T) {
	tree, err := spanning.Tree(triangle(), 0)
	require.NoError(t, err)

	path, length, err := tree.Path(0, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, path)
	require.Zero(t, length)
}

func TestPath_Failures(t *testing.T) {
	g := core.NewGraph(3)
	g.AddEdge(0, 1, 1.0) // node 2 unreachable
	tree, err := spanning.Tree(g, 0)
	require.NoError(t, err)

	_, _, err = tree.Path(0, 2)
	require.ErrorIs(t, err, spanning.ErrNotInTree)
	_, _, err = tree.Path(2, 1)
	require.ErrorIs(t, err, spanning.ErrNotInTree)
	_, _, err = tree.Path(0, 7)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, _, err = tree.Path(-1, 1)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

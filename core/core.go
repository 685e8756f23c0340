package core

import "fmt"

// Graph is an ordered arena of nodes. Entry i holds the outgoing edges of
// node i as a map from neighbor index to edge weight. A nil entry means the
// node has no outgoing edges.
//
// Neighbor indices must lie in [0, Order()); weights must be non-negative.
// AddArc enforces both at build time. Graphs assembled by hand can be
// checked after the fact with Validate.
type Graph []map[int]float64

// NewGraph returns an empty graph with n nodes and no edges.
// Adjacency maps are allocated lazily by AddArc.
func NewGraph(n int) Graph {
	return make(Graph, n)
}

// Order returns the number of nodes in the graph.
func (g Graph) Order() int { return len(g) }

// HasNode reports whether id addresses a node of the graph.
func (g Graph) HasNode(id int) bool { return 0 <= id && id < len(g) }

// Neighbors returns the outgoing edges of node id as a neighbor→weight map.
// The returned map is the graph's own storage, not a copy: callers must
// treat it as read-only. Iterating a nil map is a no-op, so callers need
// not special-case edgeless nodes.
func (g Graph) Neighbors(id int) map[int]float64 { return g[id] }

// AddArc inserts the directed edge from→to with the given weight,
// overwriting any previous weight on that arc.
//
// AddArc panics if either endpoint is out of range or the weight is
// negative. Like the rest of the builder surface, malformed input is a
// bug in the calling code rather than a recoverable condition.
func (g Graph) AddArc(from, to int, weight float64) {
	if !g.HasNode(from) || !g.HasNode(to) {
		panic(fmt.Sprintf("core: arc %d→%d outside node range [0,%d)", from, to, len(g)))
	}
	if weight < 0 {
		panic(fmt.Sprintf("core: arc %d→%d has negative weight %v", from, to, weight))
	}
	if g[from] == nil {
		g[from] = make(map[int]float64)
	}
	g[from][to] = weight
}

// AddEdge inserts the symmetric pair of arcs u→v and v→u, both with the
// given weight. Same panics as AddArc.
func (g Graph) AddEdge(u, v int, weight float64) {
	g.AddArc(u, v, weight)
	g.AddArc(v, u, weight)
}

// Clone returns a deep copy of the graph. Mutating the copy never touches
// the original.
func (g Graph) Clone() Graph {
	out := make(Graph, len(g))
	for i, edges := range g {
		if edges == nil {
			continue
		}
		out[i] = make(map[int]float64, len(edges))
		for to, w := range edges {
			out[i][to] = w
		}
	}
	return out
}

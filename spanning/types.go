package spanning

import "errors"

// NoPredecessor marks a node with no predecessor in a TreeResult: the root
// itself, or any node the root cannot reach.
const NoPredecessor = -1

// ErrNotInTree indicates a TreeResult.Path endpoint that the tree's root
// does not reach.
var ErrNotInTree = errors.New("spanning: node is not reachable from the tree root")

// TreeResult is a shortest-path tree rooted at Root. Constructed once,
// immutable afterwards, owned by the caller.
//
// Invariants: Distances[Root] == 0 and Predecessors[Root] == NoPredecessor.
type TreeResult struct {
	// Root is the origin node the tree was grown from.
	Root int

	// Predecessors[i] is the node preceding i on the shortest path from
	// Root to i, or NoPredecessor for the root and unreached nodes.
	Predecessors []int

	// Distances[i] is the shortest distance from Root to i, or +Inf for
	// unreached nodes.
	Distances []float64
}

// Reaches reports whether the tree connects its root to node id.
func (t TreeResult) Reaches(id int) bool {
	return 0 <= id && id < len(t.Predecessors) &&
		(id == t.Root || t.Predecessors[id] != NoPredecessor)
}

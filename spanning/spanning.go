package spanning

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/sparsegraph/sparsegraph/core"
)

// Tree grows the shortest-path tree of g rooted at root.
//
// The loop is heap-based Dijkstra with lazy stale-entry pruning, run to
// exhaustion: there is no destination and therefore no early exit.
// Unreachable nodes are left at +Inf / NoPredecessor and never cause an
// error; the only failure mode is an out-of-range root, reported wrapping
// core.ErrNodeOutOfRange.
//
// Complexity: O((V + E) log V) time, O(V + E) extra space.
func Tree(g core.Graph, root int) (TreeResult, error) {
	if !g.HasNode(root) {
		return TreeResult{}, fmt.Errorf("%w: root %d (order %d)",
			core.ErrNodeOutOfRange, root, g.Order())
	}

	n := g.Order()
	inf := math.Inf(1)

	distances := make([]float64, n)
	predecessors := make([]int, n)
	for i := 0; i < n; i++ {
		distances[i] = inf
		predecessors[i] = NoPredecessor
	}
	distances[root] = 0

	open := &treeHeap{{node: root, dist: 0}}
	heap.Init(open)

	for open.Len() > 0 {
		entry := heap.Pop(open).(treeEntry)
		current := entry.node
		if entry.dist > distances[current] {
			continue // superseded by a later, shorter push
		}

		for next, weight := range g.Neighbors(current) {
			candidate := entry.dist + weight
			if candidate < distances[next] {
				distances[next] = candidate
				predecessors[next] = current
				heap.Push(open, treeEntry{node: next, dist: candidate})
			}
		}
	}

	return TreeResult{
		Root:         root,
		Predecessors: predecessors,
		Distances:    distances,
	}, nil
}

// treeEntry is one (distance, node) pair on the heap; duplicates per node
// are pruned lazily against the recorded distances.
type treeEntry struct {
	node int
	dist float64
}

type treeHeap []treeEntry

func (h treeHeap) Len() int            { return len(h) }
func (h treeHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h treeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *treeHeap) Push(x interface{}) { *h = append(*h, x.(treeEntry)) }

func (h *treeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]

	return entry
}

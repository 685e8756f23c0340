package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/sparsegraph/sparsegraph/core"
)

// ShortestPathHeap computes the shortest path from origin to destination
// using a binary min-heap of (distance, node) entries.
//
// The search pops the closest open node each round and stops the moment
// the destination itself is popped; on sparse graphs this early exit
// usually leaves most of the arena untouched. Improving a node's distance
// pushes a duplicate heap entry rather than reordering the old one; a
// popped entry whose distance exceeds the recorded best is stale and
// skipped. See the package documentation for why this lazy scheme is kept
// over a decrease-key heap.
//
// Returns ErrNoPath (wrapped) when the heap drains before reaching the
// destination, core.ErrNodeOutOfRange (wrapped) on invalid indices.
//
// Complexity: O((V + E) log V) time, O(V + E) extra space.
func ShortestPathHeap(g core.Graph, origin, destination int) (PathResult, error) {
	if err := checkEndpoints(g, origin, destination); err != nil {
		return PathResult{}, err
	}

	n := g.Order()
	inf := math.Inf(1)

	dist := make([]float64, n)
	predecessor := make([]int, n)
	for i := 0; i < n; i++ {
		dist[i] = inf
		predecessor[i] = -1
	}
	dist[origin] = 0

	open := &openHeap{{node: origin, dist: 0}}
	heap.Init(open)

	for open.Len() > 0 {
		entry := heap.Pop(open).(openEntry)
		current := entry.node

		if current == destination {
			break
		}
		// A better distance was recorded after this entry was pushed.
		if entry.dist > dist[current] {
			continue
		}

		for next, weight := range g.Neighbors(current) {
			candidate := entry.dist + weight
			if candidate < dist[next] {
				dist[next] = candidate
				predecessor[next] = current
				heap.Push(open, openEntry{node: next, dist: candidate})
			}
		}
	}

	if dist[destination] == inf {
		return PathResult{}, fmt.Errorf("%w: %d→%d", ErrNoPath, origin, destination)
	}

	return PathResult{
		Path:   reconstructPath(destination, predecessor),
		Length: dist[destination],
	}, nil
}

// openEntry is one (distance, node) pair on the heap. The same node may
// appear multiple times with decreasing distances; only the freshest entry
// survives the staleness check above.
type openEntry struct {
	node int
	dist float64
}

// openHeap is a min-heap of openEntry ordered by dist.
type openHeap []openEntry

func (h openHeap) Len() int            { return len(h) }
func (h openHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h openHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(openEntry)) }

func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]

	return entry
}

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/sparsegraph/sparsegraph/core"
)

// AStar computes the shortest path from origin to destination, steering
// the heap search with h: entries are prioritized by tentative distance
// plus h's estimate of the distance still to cover. Edges leading away
// from the destination sink in the heap, so a good estimate visits far
// fewer nodes than plain Dijkstra.
//
// The reported Length is exact as long as h never overestimates the true
// remaining distance (an admissible heuristic). An inadmissible h trades
// optimality for speed: the query still terminates and returns some
// path. A nil h delegates to ShortestPathHeap.
//
// Same failure modes as ShortestPathHeap.
func AStar(g core.Graph, origin, destination int, h Heuristic) (PathResult, error) {
	if h == nil {
		return ShortestPathHeap(g, origin, destination)
	}
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

	// Heap priorities carry the heuristic component, so the recorded
	// distance array is the source of truth during relaxation.
	open := &openHeap{{node: origin, dist: 0}}
	heap.Init(open)

	for open.Len() > 0 {
		current := heap.Pop(open).(openEntry).node
		if current == destination {
			break
		}

		currentDist := dist[current]
		for next, weight := range g.Neighbors(current) {
			candidate := currentDist + weight
			if candidate < dist[next] {
				dist[next] = candidate
				predecessor[next] = current
				heap.Push(open, openEntry{
					node: next,
					dist: candidate + h(next, destination),
				})
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

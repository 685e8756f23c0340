package dijkstra

import (
	"fmt"
	"math"

	"github.com/sparsegraph/sparsegraph/core"
)

// ShortestPathLinear computes the shortest path from origin to destination
// using a linear minimum scan instead of a priority queue.
//
// Two parallel arrays drive the search: dist holds the best known distance
// from the origin to every node, frontier holds the same values but only
// for nodes that are still candidates for settling. Each round scans
// frontier for its minimum, settles that node by resetting its frontier
// slot to +Inf, and relaxes its outgoing edges. A round whose minimum is
// +Inf means the reachable region is exhausted without meeting the
// destination.
//
// Each round settles exactly one node, so the loop runs at most N times.
//
// Returns ErrNoPath (wrapped) when origin and destination are not
// connected, core.ErrNodeOutOfRange (wrapped) on invalid indices.
//
// Complexity: O(N² + E) time, O(N) extra space.
func ShortestPathLinear(g core.Graph, origin, destination int) (PathResult, error) {
	if err := checkEndpoints(g, origin, destination); err != nil {
		return PathResult{}, err
	}

	n := g.Order()
	inf := math.Inf(1)

	dist := make([]float64, n)
	frontier := make([]float64, n)
	predecessor := make([]int, n)
	for i := 0; i < n; i++ {
		dist[i] = inf
		frontier[i] = inf
		predecessor[i] = -1
	}
	dist[origin] = 0
	frontier[origin] = 0

	for {
		// Pick the unsettled node with the smallest tentative distance.
		currentDist := inf
		current := -1
		for i, d := range frontier {
			if d < currentDist {
				currentDist = d
				current = i
			}
		}
		if current == -1 {
			return PathResult{}, fmt.Errorf("%w: %d→%d", ErrNoPath, origin, destination)
		}

		// Settle it: the slot never wins another scan.
		frontier[current] = inf
		if current == destination {
			break
		}

		for next, weight := range g.Neighbors(current) {
			candidate := currentDist + weight
			if candidate < dist[next] {
				dist[next] = candidate
				frontier[next] = candidate
				predecessor[next] = current
			}
		}
	}

	return PathResult{
		Path:   reconstructPath(destination, predecessor),
		Length: dist[destination],
	}, nil
}

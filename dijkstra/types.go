package dijkstra

import (
	"errors"
	"fmt"

	"github.com/sparsegraph/sparsegraph/core"
)

// ErrNoPath indicates that no sequence of arcs connects the origin to the
// destination. It applies only to point-to-point queries; a spanning tree
// simply reports unreachable nodes with an infinite distance.
var ErrNoPath = errors.New("dijkstra: no path between origin and destination")

// PathResult is the outcome of a successful point-to-point query.
// It is constructed once, never mutated afterwards, and owned by the caller.
type PathResult struct {
	// Path lists node indices from origin to destination inclusive.
	// When origin == destination it is the single-element path.
	Path []int

	// Length is the total weight accumulated along Path.
	Length float64
}

// Heuristic estimates the remaining distance from node to destination.
// AStar calls it once per relaxed edge. Estimates must never exceed the
// true remaining distance if optimal paths are required.
type Heuristic func(node, destination int) float64

// checkEndpoints verifies that origin and destination address nodes of g.
func checkEndpoints(g core.Graph, origin, destination int) error {
	if !g.HasNode(origin) {
		return fmt.Errorf("%w: origin %d (order %d)", core.ErrNodeOutOfRange, origin, g.Order())
	}
	if !g.HasNode(destination) {
		return fmt.Errorf("%w: destination %d (order %d)", core.ErrNodeOutOfRange, destination, g.Order())
	}

	return nil
}

// reconstructPath walks predecessor links backward from destination until
// the -1 sentinel marks the origin, then reverses the collected indices.
func reconstructPath(destination int, predecessor []int) []int {
	path := []int{destination}
	for current := destination; predecessor[current] != -1; {
		current = predecessor[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

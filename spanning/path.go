package spanning

import (
	"fmt"

	"github.com/sparsegraph/sparsegraph/core"
)

// Path derives the route between origin and destination from the tree
// alone: walk origin up to the root, then the destination's walk reversed
// back down. The returned length is the sum of both endpoint distances,
// rounded to 4 decimal places to absorb float accumulation noise.
//
// The result is only guaranteed optimal when origin or destination is the
// tree's root and the underlying graph is symmetric; for arbitrary
// endpoint pairs it is a valid route through the root, not necessarily the
// shortest one.
//
// Fails wrapping core.ErrNodeOutOfRange on bad indices and ErrNotInTree
// when either endpoint is unreached.
func (t TreeResult) Path(origin, destination int) ([]int, float64, error) {
	n := len(t.Predecessors)
	if origin < 0 || origin >= n {
		return nil, 0, fmt.Errorf("%w: origin %d (order %d)", core.ErrNodeOutOfRange, origin, n)
	}
	if destination < 0 || destination >= n {
		return nil, 0, fmt.Errorf("%w: destination %d (order %d)", core.ErrNodeOutOfRange, destination, n)
	}
	if !t.Reaches(origin) {
		return nil, 0, fmt.Errorf("%w: origin %d", ErrNotInTree, origin)
	}
	if !t.Reaches(destination) {
		return nil, 0, fmt.Errorf("%w: destination %d", ErrNotInTree, destination)
	}

	// Climb from the origin to the root.
	path := []int{}
	for current := origin; current != t.Root; current = t.Predecessors[current] {
		path = append(path, current)
	}
	path = append(path, t.Root)

	// Climb from the destination, then splice that walk in reverse.
	down := []int{}
	for current := destination; current != t.Root; current = t.Predecessors[current] {
		down = append(down, current)
	}
	for i := len(down) - 1; i >= 0; i-- {
		path = append(path, down[i])
	}

	length := hardRound(4, t.Distances[origin]+t.Distances[destination])

	return path, length, nil
}

// hardRound rounds a to the given number of decimal places, away from zero
// on exact halves.
func hardRound(places int, a float64) float64 {
	scale := 1.0
	for i := 0; i < places; i++ {
		scale *= 10
	}
	half := 0.5
	if a < 0 {
		half = -0.5
	}

	return float64(int64(a*scale+half)) / scale
}

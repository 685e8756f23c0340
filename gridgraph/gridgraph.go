package gridgraph

import (
	"fmt"

	"github.com/sparsegraph/sparsegraph/core"
)

// GridGraph is an immutable W×H grid together with the core.Graph built
// from it. Node indices follow idx = x + y*Width.
type GridGraph struct {
	Width, Height int

	// Graph holds one node per cell; blocked cells have no arcs.
	Graph core.Graph

	blocked []bool
}

// New builds a GridGraph.
//
// Returns ErrBadDimensions for non-positive sizes and ErrCellOutOfBounds
// (wrapped, with the offending cell) when a blocked cell lies outside the
// grid. Complexity: O(W×H×|moves|).
func New(width, height int, opts ...Option) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}

	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Moves == nil {
		cfg.Moves = DiagonalMoves()
	}

	gg := &GridGraph{
		Width:   width,
		Height:  height,
		blocked: make([]bool, width*height),
	}

	for _, c := range cfg.Blocked {
		if !gg.InBounds(c.X, c.Y) {
			return nil, fmt.Errorf("%w: blocked cell (%d,%d)", ErrCellOutOfBounds, c.X, c.Y)
		}
		gg.blocked[c.X+c.Y*width] = true
	}
	if cfg.ExteriorWalls {
		for x := 0; x < width; x++ {
			gg.blocked[x] = true
			gg.blocked[x+(height-1)*width] = true
		}
		for y := 0; y < height; y++ {
			gg.blocked[y*width] = true
			gg.blocked[width-1+y*width] = true
		}
	}

	gg.Graph = core.NewGraph(width * height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			from := x + y*width
			if gg.blocked[from] {
				continue
			}
			for _, m := range cfg.Moves {
				tx, ty := x+m.DX, y+m.DY
				if !gg.InBounds(tx, ty) {
					continue
				}
				to := tx + ty*width
				if gg.blocked[to] {
					continue
				}
				gg.Graph.AddArc(from, to, m.Cost)
			}
		}
	}

	return gg, nil
}

// InBounds reports whether (x, y) lies within the grid.
func (gg *GridGraph) InBounds(x, y int) bool {
	return 0 <= x && x < gg.Width && 0 <= y && y < gg.Height
}

// Index maps grid coordinates to the node index used by the Graph.
func (gg *GridGraph) Index(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrCellOutOfBounds, x, y)
	}

	return x + y*gg.Width, nil
}

// Coords maps a node index back to its grid coordinates.
func (gg *GridGraph) Coords(id int) (x, y int, err error) {
	if id < 0 || id >= gg.Width*gg.Height {
		return 0, 0, fmt.Errorf("%w: index %d", ErrCellOutOfBounds, id)
	}

	return id % gg.Width, id / gg.Width, nil
}

// Blocked reports whether the cell at (x, y) is impassable.
// Out-of-bounds cells count as blocked.
func (gg *GridGraph) Blocked(x, y int) bool {
	if !gg.InBounds(x, y) {
		return true
	}

	return gg.blocked[x+y*gg.Width]
}

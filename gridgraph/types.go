// Package gridgraph turns a W×H cell grid with blocked cells into a
// core.Graph ready for the shortest-path packages.
//
// Every cell becomes a node at index x + y*Width, blocked or not, so
// coordinates round-trip losslessly through Index and Coords. Blocked
// cells simply receive no arcs in either direction, which leaves them
// unreachable without any special-casing in the algorithms.
//
// Movement is described by a set of Moves (coordinate offsets with a
// cost). The default is eight-directional: the four cardinals at cost 1
// and the four diagonals at cost 1.4142.
package gridgraph

import "errors"

// Sentinel errors for grid construction and coordinate lookups.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("gridgraph: width and height must be positive")
	// ErrCellOutOfBounds indicates a coordinate or index outside the grid.
	ErrCellOutOfBounds = errors.New("gridgraph: cell outside grid bounds")
)

// Cell addresses one grid cell by its x (column) and y (row) coordinates.
type Cell struct {
	X, Y int
}

// Move is one allowed displacement: from any cell (x, y) to
// (x+DX, y+DY) at the given cost.
type Move struct {
	DX, DY int
	Cost   float64
}

// diagonalCost is the four-decimal truncation of √2, not math.Sqrt2, so
// grid route lengths stay stable when serialized and compared.
const diagonalCost = 1.4142

// CardinalMoves is the four-directional move set: N, E, S, W at cost 1.
func CardinalMoves() []Move {
	return []Move{
		{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1},
	}
}

// DiagonalMoves is the eight-directional move set: cardinals at cost 1,
// diagonals at diagonalCost. This is the default.
func DiagonalMoves() []Move {
	return []Move{
		{-1, -1, diagonalCost},
		{-1, 0, 1},
		{-1, 1, diagonalCost},
		{0, -1, 1},
		{0, 1, 1},
		{1, -1, diagonalCost},
		{1, 0, 1},
		{1, 1, diagonalCost},
	}
}

// Options collects the grid construction parameters.
type Options struct {
	// Blocked lists impassable cells.
	Blocked []Cell
	// ExteriorWalls additionally blocks every border cell.
	ExteriorWalls bool
	// Moves is the allowed move set; nil means DiagonalMoves().
	Moves []Move
}

// Option mutates Options in the functional-options style.
type Option func(*Options)

// WithBlocked marks the given cells impassable.
func WithBlocked(cells ...Cell) Option {
	return func(o *Options) { o.Blocked = append(o.Blocked, cells...) }
}

// WithExteriorWalls blocks the entire border of the grid.
func WithExteriorWalls() Option {
	return func(o *Options) { o.ExteriorWalls = true }
}

// WithMoves replaces the default move set.
func WithMoves(moves []Move) Option {
	return func(o *Options) { o.Moves = moves }
}

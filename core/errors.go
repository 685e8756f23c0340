package core

import "errors"

// Sentinel errors shared across the sparsegraph packages.
var (
	// ErrNodeOutOfRange indicates a query referenced a node index outside
	// [0, Order()). Every query operation in the algorithm packages wraps
	// this sentinel when an origin, destination or root index is invalid.
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrNeighborOutOfRange indicates an adjacency map references a
	// neighbor index outside [0, Order()).
	ErrNeighborOutOfRange = errors.New("core: neighbor index out of range")

	// ErrNegativeWeight indicates an edge carries a negative weight.
	// The shortest-path algorithms assume non-negative weights and do not
	// scan for violations themselves; Validate is the opt-in gate.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrAsymmetric indicates a symmetry check found an arc u→v whose
	// mirror v→u is missing or carries a different weight.
	ErrAsymmetric = errors.New("core: graph is not symmetric")

	// ErrDisconnected indicates a connectivity check found a node that is
	// unreachable from node 0.
	ErrDisconnected = errors.New("core: graph is not fully connected")
)

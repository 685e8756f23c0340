package core

import "fmt"

// ValidateOptions configures which structural checks Validate performs.
// Neighbor bounds and weight signs are always checked; symmetry and
// connectivity are opt-in because they cost O(E) and O(V+E) respectively
// and only make sense for undirected-style graphs.
type ValidateOptions struct {
	// Symmetry requires every arc u→v to have a mirror v→u with the same
	// weight. Forced on when Connectivity is set, since the reachability
	// sweep below only proves full connectivity on symmetric graphs.
	Symmetry bool

	// Connectivity requires every node to be reachable from node 0.
	Connectivity bool
}

// ValidateOption mutates ValidateOptions in the functional-options style.
type ValidateOption func(*ValidateOptions)

// WithSymmetryCheck enables the arc-mirror check.
func WithSymmetryCheck() ValidateOption {
	return func(o *ValidateOptions) { o.Symmetry = true }
}

// WithConnectivityCheck enables the full-connectivity check (and with it,
// the symmetry check it depends on).
func WithConnectivityCheck() ValidateOption {
	return func(o *ValidateOptions) { o.Connectivity = true }
}

// Validate checks the structural invariants of g.
//
// Always verified, in O(E):
//   - every neighbor index lies in [0, Order())  → ErrNeighborOutOfRange
//   - every weight is non-negative               → ErrNegativeWeight
//
// With WithSymmetryCheck: every arc has an equal-weight mirror → ErrAsymmetric.
// With WithConnectivityCheck: every node reachable from node 0 → ErrDisconnected.
//
// All failures wrap the corresponding sentinel with the offending indices.
func Validate(g Graph, opts ...ValidateOption) error {
	var cfg ValidateOptions
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Symmetry = cfg.Symmetry || cfg.Connectivity

	n := len(g)
	for from, edges := range g {
		for to, w := range edges {
			if to < 0 || to >= n {
				return fmt.Errorf("%w: node %d references neighbor %d (order %d)",
					ErrNeighborOutOfRange, from, to, n)
			}
			if w < 0 {
				return fmt.Errorf("%w: arc %d→%d weight=%v", ErrNegativeWeight, from, to, w)
			}
			if cfg.Symmetry {
				mirror, ok := g[to][from]
				if !ok || mirror != w {
					return fmt.Errorf("%w: arc %d→%d weight=%v has no equal mirror",
						ErrAsymmetric, from, to, w)
				}
			}
		}
	}

	if cfg.Connectivity && n > 0 && !Connected(g, 0) {
		return fmt.Errorf("%w: not every node is reachable from node 0", ErrDisconnected)
	}

	return nil
}

// Connected reports whether every node of g is reachable from origin by
// following arcs. On symmetric graphs this is full connectivity; on
// directed graphs it only proves reachability from origin.
//
// Complexity: O(V + E) via an explicit stack, no recursion.
func Connected(g Graph, origin int) bool {
	if !g.HasNode(origin) {
		return false
	}

	visited := make([]bool, len(g))
	stack := []int{origin}
	visited[origin] = true
	seen := 1

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range g[current] {
			if !visited[next] {
				visited[next] = true
				seen++
				stack = append(stack, next)
			}
		}
	}

	return seen == len(g)
}

// Package cache answers repeated point-to-point shortest-path queries out
// of memoized spanning trees.
//
// Many routing workloads query the same origin (or destination) over and
// over: a depot, a port, a home node. Growing one spanning tree for that
// node costs a single full Dijkstra run and then answers every query
// touching it with two predecessor walks. Because a tree rooted at either
// endpoint yields an exact shortest path only on symmetric graphs, New
// validates symmetry up front and refuses asymmetric input.
//
// Cache trees deliberately: each one holds O(N) state, so memoize only
// nodes that keep coming back.
package cache

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sparsegraph/sparsegraph/core"
	"github.com/sparsegraph/sparsegraph/dijkstra"
	"github.com/sparsegraph/sparsegraph/spanning"
)

// Cache wraps a symmetric graph and the spanning trees grown on it so far.
// Safe for concurrent use; readers share cached trees under an RLock.
type Cache struct {
	graph core.Graph

	mu    sync.RWMutex
	trees map[int]spanning.TreeResult
}

// New validates that g is symmetric and wraps it in an empty Cache.
// The graph must not be mutated for the lifetime of the Cache.
func New(g core.Graph) (*Cache, error) {
	if err := core.Validate(g, core.WithSymmetryCheck()); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}

	return &Cache{
		graph: g,
		trees: make(map[int]spanning.TreeResult),
	}, nil
}

// Options configures a single ShortestPath call.
type Options struct {
	// Store controls whether a missing tree is computed and memoized.
	// When false the query falls through to dijkstra.AStar (which is
	// plain heap Dijkstra under a nil heuristic), cheaper for one-off
	// queries since it can stop at the destination.
	Store bool

	// ForDestination keys a newly grown tree by the destination instead
	// of the origin.
	ForDestination bool

	// Heuristic steers the fallback A* search when Store is false.
	Heuristic dijkstra.Heuristic
}

// Option mutates Options in the functional-options style.
type Option func(*Options)

// WithoutCaching answers the query without growing or storing a tree.
func WithoutCaching() Option {
	return func(o *Options) { o.Store = false }
}

// CacheForDestination memoizes the tree under the destination node.
func CacheForDestination() Option {
	return func(o *Options) { o.ForDestination = true }
}

// WithHeuristic sets the A* heuristic used by uncached fallback queries.
func WithHeuristic(h dijkstra.Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// ShortestPath returns the shortest path between origin and destination.
//
// Resolution order: a cached tree rooted at origin, then one rooted at
// destination, then (unless WithoutCaching) a freshly grown (and stored)
// tree, then the A*/Dijkstra fallback.
//
// Fails wrapping core.ErrNodeOutOfRange on bad indices and
// dijkstra.ErrNoPath when the endpoints are not connected.
func (c *Cache) ShortestPath(origin, destination int, opts ...Option) (dijkstra.PathResult, error) {
	cfg := Options{Store: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !c.graph.HasNode(origin) {
		return dijkstra.PathResult{}, fmt.Errorf("%w: origin %d (order %d)",
			core.ErrNodeOutOfRange, origin, c.graph.Order())
	}
	if !c.graph.HasNode(destination) {
		return dijkstra.PathResult{}, fmt.Errorf("%w: destination %d (order %d)",
			core.ErrNodeOutOfRange, destination, c.graph.Order())
	}

	c.mu.RLock()
	tree, ok := c.trees[origin]
	if !ok {
		tree, ok = c.trees[destination]
	}
	c.mu.RUnlock()

	if !ok && cfg.Store {
		root := origin
		if cfg.ForDestination {
			root = destination
		}
		grown, err := spanning.Tree(c.graph, root)
		if err != nil {
			return dijkstra.PathResult{}, err
		}
		c.mu.Lock()
		c.trees[root] = grown
		c.mu.Unlock()
		tree, ok = grown, true
	}

	if ok {
		path, length, err := tree.Path(origin, destination)
		if err != nil {
			if errors.Is(err, spanning.ErrNotInTree) {
				return dijkstra.PathResult{}, fmt.Errorf("%w: %d→%d", dijkstra.ErrNoPath, origin, destination)
			}
			return dijkstra.PathResult{}, err
		}
		return dijkstra.PathResult{Path: path, Length: length}, nil
	}

	return dijkstra.AStar(c.graph, origin, destination, cfg.Heuristic)
}

// Size returns the number of memoized trees.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.trees)
}

// Reset drops every memoized tree.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trees = make(map[int]spanning.TreeResult)
}

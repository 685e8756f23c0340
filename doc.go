// Package sparsegraph is a small toolkit for exact shortest-path queries
// on sparse, index-addressed weighted graphs.
//
// A graph here is nothing more than an ordered arena of nodes, each owning
// a map from neighbor index to a non-negative edge weight. That flat shape
// keeps construction trivial, avoids any pointer/ownership bookkeeping, and
// is exactly what the routing algorithms want to consume.
//
// What you get:
//
//	core/       - the Graph arena, builders and optional validation
//	dijkstra/   - point-to-point shortest paths: a linear-scan reference
//	              implementation, a lazy-heap implementation, and A*
//	spanning/   - full shortest-path trees from a single root
//	cache/      - memoized spanning trees for repeated point queries
//	gridgraph/  - W×H grids with blocked cells, turned into core graphs
//	geo/        - haversine & cheap-ruler distances, units, GeoJSON output
//	render/     - DOT / SVG rendering of graphs and their spanning trees
//
// The cmd/sparsegraph binary wraps all of the above behind a small CLI that
// loads graphs from JSON adjacency files or TOML edge manifests.
//
// All query operations are synchronous, allocate only private working
// state, and treat the input graph as read-only; sharing one Graph across
// goroutines is safe as long as nobody mutates it.
package sparsegraph

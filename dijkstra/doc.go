// Package dijkstra computes point-to-point shortest paths on core.Graph
// arenas with non-negative edge weights.
//
// Two interchangeable implementations are provided:
//
//   - ShortestPathLinear is the textbook O(N²+E) formulation. Each round
//     scans a frontier array of tentative distances for the minimum,
//     settles that node, and relaxes its outgoing edges. Deliberately
//     simple; useful as a reference and competitive on small dense graphs.
//   - ShortestPathHeap is the O((V+E) log V) formulation. A binary min-heap
//     orders nodes by tentative distance and the search stops as soon as
//     the destination is popped, which on large sparse graphs usually
//     means exploring only a fraction of the arena.
//
// Both return the same Length for any query; when several shortest paths
// tie, the reported Path depends on discovery order and may differ between
// the two.
//
// The heap variant uses lazy stale-entry pruning instead of decrease-key:
// improving a node's distance pushes a fresh heap entry and the superseded
// one is skipped when popped (its priority exceeds the recorded distance).
// This keeps the heap a plain container/heap slice and
// makes the exploration order easy to reason about and reproduce.
//
// AStar layers a heuristic on top of the heap variant: the pushed priority
// becomes tentative distance plus the heuristic's estimate to the
// destination. With an admissible heuristic (never overestimating), the
// result is still optimal; a nil heuristic falls back to ShortestPathHeap.
//
// Negative edge weights are the caller's responsibility: the algorithms do
// not scan for them (that would change their complexity) and silently
// produce wrong distances if they are present. Run core.Validate on
// untrusted input first.
//
// Errors: queries with an out-of-range origin or destination fail wrapping
// core.ErrNodeOutOfRange; queries with no connecting path fail wrapping
// ErrNoPath. There are no partial results.
package dijkstra

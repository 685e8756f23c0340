// Package spanning builds single-root shortest-path trees over core.Graph
// arenas.
//
// Tree runs the same lazy-heap Dijkstra loop as
// dijkstra.ShortestPathHeap, minus the early destination exit: the heap
// is drained completely so every reachable node ends up with a finalized
// distance and predecessor. Unreachable nodes are a normal outcome, not an
// error; they keep a +Inf distance and the NoPredecessor sentinel.
//
// A TreeResult answers "how far, and through whom" for every node at
// once, which makes it the natural unit to precompute when many queries
// share an endpoint (see the cache package). TreeResult.Path joins the
// two predecessor walks through the root to answer point-to-point queries
// from a single tree; that shortcut is exact only when one endpoint is the
// root itself and the graph is symmetric.
package spanning

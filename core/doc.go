// Package core defines the Graph arena shared by every algorithm in
// sparsegraph, together with builders and optional structural validation.
//
// A Graph is an ordered sequence of N nodes addressed by index 0..N-1.
// Each node owns a map from neighbor index to a non-negative edge weight.
// There are no vertex objects, no edge objects and no identifiers beyond
// the index itself: the arena shape sidesteps ownership and lifetime
// questions entirely and gives algorithms O(1) access to a node's
// adjacency and O(deg) iteration over its edges.
//
// Construction is the caller's business. AddArc and AddEdge are thin
// builders that panic on out-of-range indices or negative weights:
// malformed topology is a programming error at build time, not a runtime
// condition to recover from. Query-side index checks, in contrast, are
// reported as errors (see ErrNodeOutOfRange) by the algorithm packages.
//
// Validate offers opt-in structural checks for graphs that arrive from
// external sources: neighbor bounds and weight signs are always checked,
// symmetry and full connectivity on request.
//
// The Graph itself carries no locks. Concurrent queries over one Graph are
// safe exactly when no goroutine mutates it; read-only sharing needs no
// synchronization because each algorithm keeps its working state private.
package core

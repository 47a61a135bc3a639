// Package graph is the host-graph data model the grammar engine rewrites.
//
// A Graph is a pair (V, E): integer node identifiers plus a set of edges,
// each optionally carrying a string tag. Graphs are either directed or
// undirected for their entire lifetime, are simple (no parallel edges),
// and compare tags by equality only — an absent tag is its own distinct
// value, never a wildcard.
//
// This type is not safe for concurrent mutation: the engine is
// single-threaded by design (see the grammar package), so no internal
// locking is paid for here.
package graph

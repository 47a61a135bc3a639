// Package builder assembles synthetic tagged graph.Graph start graphs:
// stars, cycles, paths, wheels, complete and complete-bipartite graphs,
// grids, and sparse random graphs. Each topology is a Constructor that
// BuildGraph composes in order, the way a caller might stack several
// shapes into one disjoint fixture.
//
// Nodes receive no tag unless an IDFn option says otherwise, with fixed
// exceptions: the Star and Wheel hub is always tagged "center",
// CompleteBipartite tags each side with its partition prefix, and Grid
// tags every cell with its "r,c" coordinates. Otherwise the topology
// alone carries the graph's shape, and an optional ID scheme
// (WithSymbolIDs, WithHexIDs, ...) can label nodes for readability when
// a generated graph is inspected or rendered.
package builder

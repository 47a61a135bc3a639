// Package matrix caches the adjacency of a compacted graph.Graph as a
// dense boolean matrix, trading O(V^2) memory for O(1) edge lookups and
// O(V) neighbor enumeration.
//
// match builds one Adjacency per search, over the same compacted host
// graph.Graph it already holds, and consults it instead of re-scanning
// the edge map on every Neighbors/OutNeighbors/InNeighbors/HasSelfLoop
// call a backtracking search makes.
package matrix

// Package render draws a graph.Graph as a standalone SVG document: a
// deliberately small circular-layout renderer, kept external to the
// matching/rewriting core per its role as a client of that core.
package render

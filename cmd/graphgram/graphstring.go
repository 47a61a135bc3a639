package main

import (
	"fmt"
	"strings"

	"github.com/halvard/graphgram/graph"
)

// encodeGraphString renders g as a graph-string literal accepted by
// gramtext.ParseGraph: one element per node (carrying its tag, if any),
// then one element per edge (carrying its tag and direction). Used by
// the generate subcommand to print a synthetic start graph a grammar
// author can paste into a grammar file's start: key.
func encodeGraphString(g *graph.Graph) string {
	elems := make([]string, 0, g.NumNodes()+len(g.Edges()))
	for _, id := range g.Nodes() {
		tag, _ := g.NodeTag(id)
		elems = append(elems, vertexName(id)+encodeTag(tag))
	}

	op := "--"
	if g.Directed() {
		op = "->"
	}
	for _, e := range g.Edges() {
		elems = append(elems, fmt.Sprintf("%s%s%s%s", vertexName(e.From), op, vertexName(e.To), encodeTag(e.Tag)))
	}

	return strings.Join(elems, "; ") + ";"
}

func vertexName(id int) string {
	return fmt.Sprintf("n%d", id)
}

func encodeTag(tag *string) string {
	if tag == nil {
		return ""
	}
	escaped := strings.NewReplacer(`\`, `\\`, `]`, `\]`).Replace(*tag)
	return "[" + escaped + "]"
}

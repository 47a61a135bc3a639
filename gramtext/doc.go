// Package gramtext implements the two textual formats a grammar author
// writes by hand: the graph-string grammar embedded in rule keys and the
// start graph, and the grammar-file document that ties a set of rules to
// a start graph. It depends on graph and rule to produce their values;
// nothing in graph, rule, csp, match, apply, or grammar imports it back,
// keeping the core parser-agnostic.
package gramtext

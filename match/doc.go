// Package match finds injective, tag-preserving morphisms from a rule's
// left-hand pattern into a host graph, subject to the dangling-edge and
// identification conditions a sound rewrite requires. It translates
// (host, L, rule) into a package csp Problem and interprets the Problem's
// solutions as graph morphisms.
package match

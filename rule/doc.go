// Package rule defines the grammar production type: a left-hand pattern,
// a right-hand replacement, and the rename/join maps describing which
// L-nodes survive into R and which L-nodes are merged together.
//
// A ChoiceRule pairs one left-hand pattern with several right-hand
// alternatives, one of which is chosen uniformly at random when the rule
// fires.
package rule

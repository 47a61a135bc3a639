package csp

// Stats records search effort, surfaced by package match through
// --profile (SPEC_FULL.md §4.3).
type Stats struct {
	NodesExplored    int
	BacktrackCount   int
	ConstraintChecks int
	Solutions        int
}

// Package apply builds the rewritten host graph from a match: delete the
// edges and nodes a rule's left side removes, merge the L-nodes a rule's
// rename groups together, then add and retag whatever the rule's right
// side introduces. The six sub-steps run in a fixed order; later steps
// depend on the incidence state earlier steps leave behind.
package apply

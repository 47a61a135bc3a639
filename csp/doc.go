// Package csp is a generic finite-domain constraint-satisfaction solver:
// integer-valued variables, domains with a hide/restore stack for
// allocation-free backtracking, MRV variable ordering, and
// forward-checking propagation. Its Domain/Constraint split mirrors the
// classic python-constraint library's discipline (see DESIGN.md).
//
// The solver knows nothing about graphs; package match builds a Problem
// out of (G, L, R) and interprets its solutions as graph morphisms.
package csp

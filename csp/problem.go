package csp

// Constraint restricts the values one or more variables (its scope) may
// take. Check must treat a variable absent from assignment as
// unassigned; when forwardCheck is true it may additionally prune other
// scope variables' domains via Domain.HideValue, and must return false if
// that pruning empties a domain.
type Constraint interface {
	Check(scope []Var, domains map[Var]*Domain, assignment map[Var]int, forwardCheck bool) bool
}

// PreProcessor is an optional one-shot pruning hook run once per
// constraint at the start of each Solutions call, before search starts
// (the "preprocessing" constraint kind). A constraint that fully resolves itself during preprocessing
// reports remove=true so the solver can skip checking it during search;
// infeasible=true short-circuits the whole problem to "no solutions."
type PreProcessor interface {
	PreProcess(scope []Var, domains map[Var]*Domain) (remove bool, infeasible bool)
}

type constraintEntry struct {
	c     Constraint
	scope []Var
}

// Problem is a finite-domain CSP instance: variables with domains, plus
// constraints over subsets of them.
type Problem struct {
	order       []Var
	domains     map[Var]*Domain
	constraints []constraintEntry
}

// NewProblem returns an empty Problem.
func NewProblem() *Problem {
	return &Problem{domains: make(map[Var]*Domain)}
}

// AddVariable introduces a variable with the given candidate values.
// Re-adding an existing variable replaces its domain.
func (p *Problem) AddVariable(v Var, values []int) {
	if _, exists := p.domains[v]; !exists {
		p.order = append(p.order, v)
	}
	p.domains[v] = NewDomain(values)
}

// AddConstraint attaches c over scope. Scope must only reference
// variables already added via AddVariable.
func (p *Problem) AddConstraint(c Constraint, scope []Var) {
	p.constraints = append(p.constraints, constraintEntry{c: c, scope: append([]Var(nil), scope...)})
}

// NumVariables reports how many variables the problem has.
func (p *Problem) NumVariables() int { return len(p.order) }

// Variables returns the problem's variables in insertion order.
func (p *Problem) Variables() []Var { return append([]Var(nil), p.order...) }

// DomainOf returns v's current domain, or nil if v is unknown. Intended
// for debug/profile dumps, not for mutating search state.
func (p *Problem) DomainOf(v Var) *Domain { return p.domains[v] }

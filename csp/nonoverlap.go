package csp

// NonoverlappingSets requires that the values assigned to scope never
// collide with a fixed, pre-existing "used" set. Used by package match
// to keep new match variables off the dangling-node image computed from
// a partial match.
type NonoverlappingSets struct {
	used map[int]struct{}
}

// NewNonoverlappingSets builds the constraint against a fixed set of
// already-used values.
func NewNonoverlappingSets(used []int) *NonoverlappingSets {
	s := &NonoverlappingSets{used: make(map[int]struct{}, len(used))}
	for _, u := range used {
		s.used[u] = struct{}{}
	}
	return s
}

// Check implements Constraint.
func (c *NonoverlappingSets) Check(scope []Var, domains map[Var]*Domain, assignment map[Var]int, forwardCheck bool) bool {
	for _, v := range scope {
		val, ok := assignment[v]
		if !ok {
			continue
		}
		if _, clash := c.used[val]; clash {
			return false
		}
	}
	if !forwardCheck {
		return true
	}
	for _, v := range scope {
		if _, assigned := assignment[v]; assigned {
			continue
		}
		d := domains[v]
		for u := range c.used {
			d.HideValue(u)
		}
		if d.Len() == 0 {
			return false
		}
	}
	return true
}

// PreProcess implements PreProcessor: an empty used set can never
// reject anything, so the constraint removes itself.
func (c *NonoverlappingSets) PreProcess(scope []Var, domains map[Var]*Domain) (remove bool, infeasible bool) {
	return len(c.used) == 0, false
}

// NonoverlappingUnorderedPairs requires that the unordered pair formed
// by two variables never collide, as an unordered pair, with a fixed
// set of already-used unordered pairs. Used by package match to keep a
// newly matched edge's endpoint pair distinct from edges already
// claimed by earlier parts of the match.
type NonoverlappingUnorderedPairs struct {
	used map[[2]int]struct{}
}

// NewNonoverlappingUnorderedPairs builds the constraint against a fixed
// set of already-used unordered pairs; each pair is canonicalized
// (min, max) internally.
func NewNonoverlappingUnorderedPairs(used [][2]int) *NonoverlappingUnorderedPairs {
	c := &NonoverlappingUnorderedPairs{used: make(map[[2]int]struct{}, len(used))}
	for _, p := range used {
		c.used[canonPair(p[0], p[1])] = struct{}{}
	}
	return c
}

func canonPair(a, b int) [2]int {
	if a <= b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// Check implements Constraint. scope must have exactly 2 entries.
func (c *NonoverlappingUnorderedPairs) Check(scope []Var, domains map[Var]*Domain, assignment map[Var]int, forwardCheck bool) bool {
	a, aOK := assignment[scope[0]]
	b, bOK := assignment[scope[1]]
	if aOK && bOK {
		if _, clash := c.used[canonPair(a, b)]; clash {
			return false
		}
	}
	if !forwardCheck {
		return true
	}
	if aOK && !bOK {
		return c.pruneAgainst(domains[scope[1]], a)
	}
	if bOK && !aOK {
		return c.pruneAgainst(domains[scope[0]], b)
	}
	return true
}

func (c *NonoverlappingUnorderedPairs) pruneAgainst(d *Domain, fixed int) bool {
	for _, val := range append([]int(nil), d.Values()...) {
		if _, clash := c.used[canonPair(fixed, val)]; clash {
			d.HideValue(val)
		}
	}
	return d.Len() > 0
}

// PreProcess implements PreProcessor.
func (c *NonoverlappingUnorderedPairs) PreProcess(scope []Var, domains map[Var]*Domain) (remove bool, infeasible bool) {
	return len(c.used) == 0, false
}

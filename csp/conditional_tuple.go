package csp

// ConditionalTuple encodes "if v0 = a then (v1, ..., vk-1) is one of the
// suffixes registered for a; if a has no registered suffixes, the
// constraint imposes nothing." Makes the dangling/identification encoding
// in package match tractable without one constraint per (deleted-node,
// candidate) pair.
type ConditionalTuple struct {
	byFirst map[int][][]int // first value -> set of suffixes
}

// NewConditionalTuple builds a ConditionalTuple from full tuples
// (first, rest...); tuples sharing the same first value are folded
// together.
func NewConditionalTuple(tuples [][]int) *ConditionalTuple {
	ct := &ConditionalTuple{byFirst: make(map[int][][]int)}
	seen := make(map[int]map[string]struct{})
	for _, t := range tuples {
		first := t[0]
		rest := append([]int(nil), t[1:]...)
		if seen[first] == nil {
			seen[first] = make(map[string]struct{})
		}
		key := encodeTuple(rest)
		if _, dup := seen[first][key]; dup {
			continue
		}
		seen[first][key] = struct{}{}
		ct.byFirst[first] = append(ct.byFirst[first], rest)
	}
	return ct
}

func compatible(current, allowed []int) bool {
	for i := range current {
		if i >= len(allowed) {
			break
		}
		if current[i] >= 0 && current[i] != allowed[i] {
			// current[i] encodes "unassigned" as -1 sentinel at call sites
			return false
		}
	}
	return true
}

// Check implements Constraint. scope[0] is the discriminator variable.
func (ct *ConditionalTuple) Check(scope []Var, domains map[Var]*Domain, assignment map[Var]int, forwardCheck bool) bool {
	rest := scope[1:]
	currentRest := make([]int, len(rest))
	for i, v := range rest {
		if val, ok := assignment[v]; ok {
			currentRest[i] = val
		} else {
			currentRest[i] = -1
		}
	}

	first, firstOK := assignment[scope[0]]
	if !firstOK {
		if !forwardCheck {
			return true
		}
		d := domains[scope[0]]
		for _, cand := range append([]int(nil), d.Values()...) {
			if !ct.possibleFirst(cand, currentRest) {
				d.HideValue(cand)
			}
		}
		return d.Len() > 0
	}

	allowedTuples, known := ct.byFirst[first]
	if !known {
		return true
	}

	complete := true
	for _, c := range currentRest {
		if c < 0 {
			complete = false
			break
		}
	}
	if complete {
		for _, allowed := range allowedTuples {
			if intsEqual(currentRest, allowed) {
				return true
			}
		}
		return false
	}

	var compatibleTuples [][]int
	for _, allowed := range allowedTuples {
		if compatible(currentRest, allowed) {
			compatibleTuples = append(compatibleTuples, allowed)
		}
	}
	if len(compatibleTuples) == 0 {
		return false
	}
	if !forwardCheck {
		return true
	}

	for i, v := range rest {
		if _, assigned := assignment[v]; assigned {
			continue
		}
		ith := make(map[int]struct{}, len(compatibleTuples))
		for _, tup := range compatibleTuples {
			ith[tup[i]] = struct{}{}
		}
		d := domains[v]
		for _, val := range append([]int(nil), d.Values()...) {
			if _, ok := ith[val]; !ok {
				d.HideValue(val)
			}
		}
		if d.Len() == 0 {
			return false
		}
	}
	return true
}

func (ct *ConditionalTuple) possibleFirst(first int, currentRest []int) bool {
	allowedTuples, known := ct.byFirst[first]
	if !known {
		return true
	}
	for _, allowed := range allowedTuples {
		if compatible(currentRest, allowed) {
			return true
		}
	}
	return false
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

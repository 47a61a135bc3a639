package csp

// SurjectiveMappings enumerates every function from a k-element domain
// onto values such that every element of values is hit at least once
// (the "neighborhood surjectivity" half of the dangling/identification
// condition). Each returned tuple has length k; tuple[i] is the value
// assigned to domain element i.
//
// If k < len(values) no surjection exists and the result is empty. If
// k == 1 a surjection exists only when len(values) == 1, in which case
// the single tuple maps the lone domain element to the lone value.
func SurjectiveMappings(k int, values []int) [][]int {
	if k < len(values) {
		return nil
	}
	if len(values) == 0 {
		return nil
	}
	if k == 1 {
		if len(values) == 1 {
			return [][]int{{values[0]}}
		}
		return nil
	}

	var out [][]int
	prefix := make([]int, 0, k)
	var rec func(remaining int, mustUse map[int]struct{})
	rec = func(remaining int, mustUse map[int]struct{}) {
		if remaining == 0 {
			if len(mustUse) == 0 {
				out = append(out, append([]int(nil), prefix...))
			}
			return
		}
		// if every remaining slot is needed to cover what's left of
		// mustUse, pin the next slot to one of those values rather than
		// trying every value in values (keeps the branching factor sane
		// once remaining == len(mustUse)).
		if remaining == len(mustUse) {
			for v := range mustUse {
				next := make(map[int]struct{}, len(mustUse)-1)
				for u := range mustUse {
					if u != v {
						next[u] = struct{}{}
					}
				}
				prefix = append(prefix, v)
				rec(remaining-1, next)
				prefix = prefix[:len(prefix)-1]
			}
			return
		}
		for _, v := range values {
			next := mustUse
			if _, need := mustUse[v]; need {
				next = make(map[int]struct{}, len(mustUse)-1)
				for u := range mustUse {
					if u != v {
						next[u] = struct{}{}
					}
				}
			}
			prefix = append(prefix, v)
			rec(remaining-1, next)
			prefix = prefix[:len(prefix)-1]
		}
	}

	mustUse := make(map[int]struct{}, len(values))
	for _, v := range values {
		mustUse[v] = struct{}{}
	}
	rec(k, mustUse)
	return out
}
